package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type AdjudicatorPosition string

const (
	PositionChair     AdjudicatorPosition = "C"
	PositionPanellist AdjudicatorPosition = "P"
	PositionTrainee   AdjudicatorPosition = "T"
)

type Debate struct {
	Id         int     `gorm:"primaryKey"`
	RoundId    int     `gorm:"not null;index"`
	Bracket    float64 `gorm:"not null;default:0"`
	RoomRank   int     `gorm:"not null;default:0"`
	Importance int     `gorm:"not null;default:0"`

	DebateTeams        []*DebateTeam        `gorm:"foreignKey:DebateId;constraint:OnDelete:CASCADE"`
	DebateAdjudicators []*DebateAdjudicator `gorm:"foreignKey:DebateId;constraint:OnDelete:CASCADE"`
}

type DebateTeam struct {
	Id       int    `gorm:"primaryKey"`
	DebateId int    `gorm:"not null;uniqueIndex:idx_debate_teams_debate_side"`
	Side     string `gorm:"not null;uniqueIndex:idx_debate_teams_debate_side"`
	TeamId   int    `gorm:"not null"`
	Team     *Team  `gorm:"foreignKey:TeamId"`
}

type DebateAdjudicator struct {
	Id            int                 `gorm:"primaryKey"`
	DebateId      int                 `gorm:"not null;uniqueIndex:idx_debate_adjudicators_pair"`
	AdjudicatorId int                 `gorm:"not null;uniqueIndex:idx_debate_adjudicators_pair"`
	Type          AdjudicatorPosition `gorm:"not null;type:debatab.adjudicator_position"`
	Adjudicator   *Adjudicator        `gorm:"foreignKey:AdjudicatorId"`
}

// AdjudicatorPairing is one co-occurrence row for the history tables: an
// adjudicator met a team or another adjudicator in the debate of some past
// round.
type AdjudicatorPairing struct {
	AdjudicatorId int
	OtherId       int
	Seq           int
}

type DebateRepository struct {
	DB *gorm.DB
}

func NewDebateRepository(db *gorm.DB) *DebateRepository {
	return &DebateRepository{DB: db}
}

func (r *DebateRepository) GetDebatesForRound(roundId int) ([]*Debate, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetDebatesForRound"))
	defer timer.ObserveDuration()
	var debates []*Debate
	result := r.DB.
		Preload("DebateTeams.Team").
		Preload("DebateTeams.Team.Institution").
		Preload("DebateAdjudicators.Adjudicator").
		Where("round_id = ?", roundId).
		Order("room_rank, id").
		Find(&debates)
	if result.Error != nil {
		return nil, result.Error
	}
	return debates, nil
}

// ReplaceDebateAdjudicators swaps the adjudicator assignments of the given
// debates for the provided rows, in one transaction. Debates not present in
// debateIds keep their assignments.
func (r *DebateRepository) ReplaceDebateAdjudicators(debateIds []int, assignments []*DebateAdjudicator) error {
	if len(debateIds) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&DebateAdjudicator{}, "debate_id IN ?", debateIds).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

// GetAdjudicatorTeamPairingsBefore collects every (adjudicator, team) pair
// that shared a debate in a round before beforeSeq.
func (r *DebateRepository) GetAdjudicatorTeamPairingsBefore(tournamentId int, beforeSeq int) ([]*AdjudicatorPairing, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAdjudicatorTeamPairingsBefore"))
	defer timer.ObserveDuration()
	pairings := make([]*AdjudicatorPairing, 0)
	query := `
		SELECT da.adjudicator_id AS adjudicator_id, dt.team_id AS other_id, r.seq AS seq
		FROM debatab.debate_adjudicators da
		JOIN debatab.debates d ON da.debate_id = d.id
		JOIN debatab.debate_teams dt ON dt.debate_id = d.id
		JOIN debatab.rounds r ON d.round_id = r.id
		WHERE r.tournament_id = ? AND r.seq < ?
	`
	result := r.DB.Raw(query, tournamentId, beforeSeq).Scan(&pairings)
	if result.Error != nil {
		return nil, result.Error
	}
	return pairings, nil
}

// GetAdjudicatorAdjudicatorPairingsBefore collects every pair of
// adjudicators that sat on the same debate in a round before beforeSeq.
// Each unordered pair comes back once, lower id first.
func (r *DebateRepository) GetAdjudicatorAdjudicatorPairingsBefore(tournamentId int, beforeSeq int) ([]*AdjudicatorPairing, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAdjudicatorAdjudicatorPairingsBefore"))
	defer timer.ObserveDuration()
	pairings := make([]*AdjudicatorPairing, 0)
	query := `
		SELECT da1.adjudicator_id AS adjudicator_id, da2.adjudicator_id AS other_id, r.seq AS seq
		FROM debatab.debate_adjudicators da1
		JOIN debatab.debate_adjudicators da2
			ON da1.debate_id = da2.debate_id AND da1.adjudicator_id < da2.adjudicator_id
		JOIN debatab.debates d ON da1.debate_id = d.id
		JOIN debatab.rounds r ON d.round_id = r.id
		WHERE r.tournament_id = ? AND r.seq < ?
	`
	result := r.DB.Raw(query, tournamentId, beforeSeq).Scan(&pairings)
	if result.Error != nil {
		return nil, result.Error
	}
	return pairings, nil
}
