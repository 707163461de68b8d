package allocation

import (
	"sort"

	"debatab/repository"
)

// ParticipantClashes lists the ids a participant must not be matched with,
// one list per kind.
type ParticipantClashes struct {
	Team        []int `json:"team"`
	Adjudicator []int `json:"adjudicator"`
	Institution []int `json:"institution"`
}

func newParticipantClashes() *ParticipantClashes {
	return &ParticipantClashes{
		Team:        []int{},
		Adjudicator: []int{},
		Institution: []int{},
	}
}

// ConflictsInfo loads the four conflict tables restricted to the given
// participants and serializes them per participant.
type ConflictsInfo struct {
	conflicts    *repository.ConflictRepository
	teams        []*repository.Team
	adjudicators []*repository.Adjudicator
}

func NewConflictsInfo(conflicts *repository.ConflictRepository, teams []*repository.Team, adjudicators []*repository.Adjudicator) *ConflictsInfo {
	return &ConflictsInfo{conflicts: conflicts, teams: teams, adjudicators: adjudicators}
}

// SerializedByParticipant returns the clash tables keyed by team id and by
// adjudicator id. A participant's own institution counts as an institutional
// clash.
func (c *ConflictsInfo) SerializedByParticipant() (map[int]*ParticipantClashes, map[int]*ParticipantClashes, error) {
	teamIds := make([]int, 0, len(c.teams))
	for _, team := range c.teams {
		teamIds = append(teamIds, team.Id)
	}
	adjudicatorIds := make([]int, 0, len(c.adjudicators))
	for _, adjudicator := range c.adjudicators {
		adjudicatorIds = append(adjudicatorIds, adjudicator.Id)
	}

	adjTeam, err := c.conflicts.GetAdjudicatorTeamConflictsForParticipants(adjudicatorIds, teamIds)
	if err != nil {
		return nil, nil, err
	}
	adjAdj, err := c.conflicts.GetAdjudicatorAdjudicatorConflictsForParticipants(adjudicatorIds)
	if err != nil {
		return nil, nil, err
	}
	adjInst, err := c.conflicts.GetAdjudicatorInstitutionConflictsForAdjudicators(adjudicatorIds)
	if err != nil {
		return nil, nil, err
	}
	teamInst, err := c.conflicts.GetTeamInstitutionConflictsForTeams(teamIds)
	if err != nil {
		return nil, nil, err
	}
	teamClashes, adjudicatorClashes := buildClashes(c.teams, c.adjudicators, adjTeam, adjAdj, adjInst, teamInst)
	return teamClashes, adjudicatorClashes, nil
}

func buildClashes(
	teams []*repository.Team,
	adjudicators []*repository.Adjudicator,
	adjTeam []*repository.AdjudicatorTeamConflict,
	adjAdj []*repository.AdjudicatorAdjudicatorConflict,
	adjInst []*repository.AdjudicatorInstitutionConflict,
	teamInst []*repository.TeamInstitutionConflict,
) (map[int]*ParticipantClashes, map[int]*ParticipantClashes) {
	teamClashes := make(map[int]*ParticipantClashes, len(teams))
	for _, team := range teams {
		clashes := newParticipantClashes()
		if team.InstitutionId != nil {
			clashes.Institution = append(clashes.Institution, *team.InstitutionId)
		}
		teamClashes[team.Id] = clashes
	}
	adjudicatorClashes := make(map[int]*ParticipantClashes, len(adjudicators))
	for _, adjudicator := range adjudicators {
		clashes := newParticipantClashes()
		if adjudicator.InstitutionId != nil {
			clashes.Institution = append(clashes.Institution, *adjudicator.InstitutionId)
		}
		adjudicatorClashes[adjudicator.Id] = clashes
	}

	for _, conflict := range adjTeam {
		if clashes, ok := adjudicatorClashes[conflict.AdjudicatorId]; ok {
			clashes.Team = append(clashes.Team, conflict.TeamId)
		}
		if clashes, ok := teamClashes[conflict.TeamId]; ok {
			clashes.Adjudicator = append(clashes.Adjudicator, conflict.AdjudicatorId)
		}
	}
	for _, conflict := range adjAdj {
		if clashes, ok := adjudicatorClashes[conflict.Adjudicator1Id]; ok {
			clashes.Adjudicator = append(clashes.Adjudicator, conflict.Adjudicator2Id)
		}
		if clashes, ok := adjudicatorClashes[conflict.Adjudicator2Id]; ok {
			clashes.Adjudicator = append(clashes.Adjudicator, conflict.Adjudicator1Id)
		}
	}
	for _, conflict := range adjInst {
		if clashes, ok := adjudicatorClashes[conflict.AdjudicatorId]; ok {
			clashes.Institution = appendUnique(clashes.Institution, conflict.InstitutionId)
		}
	}
	for _, conflict := range teamInst {
		if clashes, ok := teamClashes[conflict.TeamId]; ok {
			clashes.Institution = appendUnique(clashes.Institution, conflict.InstitutionId)
		}
	}

	for _, clashes := range teamClashes {
		sortClashes(clashes)
	}
	for _, clashes := range adjudicatorClashes {
		sortClashes(clashes)
	}
	return teamClashes, adjudicatorClashes
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func sortClashes(clashes *ParticipantClashes) {
	sort.Ints(clashes.Team)
	sort.Ints(clashes.Adjudicator)
	sort.Ints(clashes.Institution)
}
