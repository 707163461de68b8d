package repository

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeamCodeNames string

const (
	CodeNamesOff               TeamCodeNames = "off"
	CodeNamesAllTooltips       TeamCodeNames = "all-tooltips"
	CodeNamesAdminTooltipsCode TeamCodeNames = "admin-tooltips-code"
	CodeNamesAdminTooltipsReal TeamCodeNames = "admin-tooltips-real"
	CodeNamesEverywhere        TeamCodeNames = "everywhere"
)

// UseCodeNamesForAdmin reports whether administrative pages label teams by
// code name under the given policy.
func UseCodeNamesForAdmin(policy TeamCodeNames) bool {
	return policy == CodeNamesAdminTooltipsCode || policy == CodeNamesEverywhere
}

type Tournament struct {
	Id        int            `gorm:"primaryKey"`
	Name      string         `gorm:"not null"`
	ShortName string         `gorm:"null"`
	Slug      string         `gorm:"not null;uniqueIndex"`
	Sides     pq.StringArray `gorm:"not null;type:text[];default:'{aff,neg}'"`

	CurrentRoundId *int `gorm:"null"`

	// Allocation preferences
	AdjMinScore                   float64       `gorm:"not null;default:0"`
	AdjMaxScore                   float64       `gorm:"not null;default:5"`
	AdjMinVotingScore             float64       `gorm:"not null;default:1.5"`
	AdjConflictPenalty            int           `gorm:"not null;default:1000000"`
	AdjHistoryPenalty             int           `gorm:"not null;default:10000"`
	PreformedPanelMismatchPenalty int           `gorm:"not null;default:10000000"`
	NoTraineePosition             bool          `gorm:"not null;default:false"`
	NoPanellistPosition           bool          `gorm:"not null;default:false"`
	TeamCodeNames                 TeamCodeNames `gorm:"not null;type:debatab.team_code_names;default:'off'"`

	Rounds []*Round `gorm:"foreignKey:TournamentId;constraint:OnDelete:CASCADE"`
}

type Round struct {
	Id             int     `gorm:"primaryKey"`
	TournamentId   int     `gorm:"not null;uniqueIndex:idx_rounds_tournament_seq"`
	Seq            int     `gorm:"not null;uniqueIndex:idx_rounds_tournament_seq"`
	Name           string  `gorm:"not null"`
	Abbreviation   string  `gorm:"null"`
	Stage          string  `gorm:"not null;default:'P'"`
	DrawStatus     string  `gorm:"not null;default:'N'"`
	FeedbackWeight float64 `gorm:"not null;default:0"`
	Completed      bool    `gorm:"not null;default:false"`
}

type TournamentRepository struct {
	DB *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{DB: db}
}

func (r *TournamentRepository) GetTournamentBySlug(slug string) (*Tournament, error) {
	var tournament Tournament
	result := r.DB.First(&tournament, "slug = ?", slug)
	if result.Error != nil {
		return nil, fmt.Errorf("tournament %s not found", slug)
	}
	return &tournament, nil
}

func (r *TournamentRepository) FindAll() ([]*Tournament, error) {
	var tournaments []*Tournament
	result := r.DB.Order("id").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}
	return tournaments, nil
}

func (r *TournamentRepository) Save(tournament *Tournament) (*Tournament, error) {
	result := r.DB.Save(tournament)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save tournament: %v", result.Error)
	}
	return tournament, nil
}

func (r *TournamentRepository) GetRound(tournamentId int, seq int) (*Round, error) {
	var round Round
	result := r.DB.First(&round, "tournament_id = ? AND seq = ?", tournamentId, seq)
	if result.Error != nil {
		return nil, fmt.Errorf("round %d not found for tournament %d", seq, tournamentId)
	}
	return &round, nil
}

func (r *TournamentRepository) GetRounds(tournamentId int) ([]*Round, error) {
	var rounds []*Round
	result := r.DB.Where("tournament_id = ?", tournamentId).Order("seq").Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *TournamentRepository) GetRoundById(roundId int) (*Round, error) {
	var round Round
	result := r.DB.First(&round, roundId)
	if result.Error != nil {
		return nil, fmt.Errorf("round with id %d not found", roundId)
	}
	return &round, nil
}

// GetCurrentRound resolves the tournament's current round, falling back to
// the lowest incomplete round when none is pinned.
func (r *TournamentRepository) GetCurrentRound(tournament *Tournament) (*Round, error) {
	if tournament.CurrentRoundId != nil {
		return r.GetRoundById(*tournament.CurrentRoundId)
	}
	var round Round
	result := r.DB.Where("tournament_id = ? AND completed = ?", tournament.Id, false).
		Order("seq").First(&round)
	if result.Error != nil {
		return nil, fmt.Errorf("tournament %s has no current round", tournament.Slug)
	}
	return &round, nil
}

func (r *TournamentRepository) SaveRound(round *Round) (*Round, error) {
	result := r.DB.Save(round)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save round: %v", result.Error)
	}
	return round, nil
}
