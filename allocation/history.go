package allocation

import (
	"sort"

	"debatab/repository"
)

// HistoryItem marks a past meeting: ago counts rounds back from the round
// being edited.
type HistoryItem struct {
	Id  int `json:"id"`
	Ago int `json:"ago"`
}

type ParticipantHistory struct {
	Team        []HistoryItem `json:"team"`
	Adjudicator []HistoryItem `json:"adjudicator"`
}

func newParticipantHistory() *ParticipantHistory {
	return &ParticipantHistory{
		Team:        []HistoryItem{},
		Adjudicator: []HistoryItem{},
	}
}

// HistoryInfo collects who sat with whom in the rounds before the given one.
type HistoryInfo struct {
	debates *repository.DebateRepository
	round   *repository.Round
}

func NewHistoryInfo(debates *repository.DebateRepository, round *repository.Round) *HistoryInfo {
	return &HistoryInfo{debates: debates, round: round}
}

// SerializedByParticipant returns the history tables keyed by team id and by
// adjudicator id. A pair that met several times gets one item per meeting.
func (h *HistoryInfo) SerializedByParticipant() (map[int]*ParticipantHistory, map[int]*ParticipantHistory, error) {
	adjTeam, err := h.debates.GetAdjudicatorTeamPairingsBefore(h.round.TournamentId, h.round.Seq)
	if err != nil {
		return nil, nil, err
	}
	adjAdj, err := h.debates.GetAdjudicatorAdjudicatorPairingsBefore(h.round.TournamentId, h.round.Seq)
	if err != nil {
		return nil, nil, err
	}
	teamHistories, adjudicatorHistories := buildHistories(adjTeam, adjAdj, h.round.Seq)
	return teamHistories, adjudicatorHistories, nil
}

func buildHistories(adjTeam []*repository.AdjudicatorPairing, adjAdj []*repository.AdjudicatorPairing, seq int) (map[int]*ParticipantHistory, map[int]*ParticipantHistory) {
	teamHistories := make(map[int]*ParticipantHistory)
	adjudicatorHistories := make(map[int]*ParticipantHistory)

	teamHistory := func(id int) *ParticipantHistory {
		if history, ok := teamHistories[id]; ok {
			return history
		}
		history := newParticipantHistory()
		teamHistories[id] = history
		return history
	}
	adjudicatorHistory := func(id int) *ParticipantHistory {
		if history, ok := adjudicatorHistories[id]; ok {
			return history
		}
		history := newParticipantHistory()
		adjudicatorHistories[id] = history
		return history
	}

	for _, pairing := range adjTeam {
		ago := seq - pairing.Seq
		adjudicatorHistory(pairing.AdjudicatorId).Team = append(
			adjudicatorHistory(pairing.AdjudicatorId).Team, HistoryItem{Id: pairing.OtherId, Ago: ago})
		teamHistory(pairing.OtherId).Adjudicator = append(
			teamHistory(pairing.OtherId).Adjudicator, HistoryItem{Id: pairing.AdjudicatorId, Ago: ago})
	}
	for _, pairing := range adjAdj {
		ago := seq - pairing.Seq
		adjudicatorHistory(pairing.AdjudicatorId).Adjudicator = append(
			adjudicatorHistory(pairing.AdjudicatorId).Adjudicator, HistoryItem{Id: pairing.OtherId, Ago: ago})
		adjudicatorHistory(pairing.OtherId).Adjudicator = append(
			adjudicatorHistory(pairing.OtherId).Adjudicator, HistoryItem{Id: pairing.AdjudicatorId, Ago: ago})
	}

	for _, histories := range []map[int]*ParticipantHistory{teamHistories, adjudicatorHistories} {
		for _, history := range histories {
			sortHistory(history.Team)
			sortHistory(history.Adjudicator)
		}
	}
	return teamHistories, adjudicatorHistories
}

func sortHistory(items []HistoryItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Ago != items[j].Ago {
			return items[i].Ago < items[j].Ago
		}
		return items[i].Id < items[j].Id
	})
}
