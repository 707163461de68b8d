package repository

import (
	"time"

	"gorm.io/gorm"
)

type ActionType string

const (
	ActionConflictsAdjTeamEdit           ActionType = "conflicts_adj_team_edit"
	ActionConflictsAdjAdjEdit            ActionType = "conflicts_adj_adj_edit"
	ActionConflictsAdjInstEdit           ActionType = "conflicts_adj_inst_edit"
	ActionConflictsTeamInstEdit          ActionType = "conflicts_team_inst_edit"
	ActionAdjudicatorsSave               ActionType = "adjudicators_save"
	ActionPreformedPanelsCreate          ActionType = "preformed_panels_create"
	ActionPreformedPanelsAdjudicatorEdit ActionType = "preformed_panels_adjudicator_edit"
)

type ActionLogEntry struct {
	Id           int        `gorm:"primaryKey"`
	Type         ActionType `gorm:"not null;type:debatab.action_type"`
	UserId       int        `gorm:"not null"`
	TournamentId int        `gorm:"not null;index"`
	RoundId      *int       `gorm:"null"`
	Timestamp    time.Time  `gorm:"not null;autoCreateTime"`
	Detail       string     `gorm:"not null;type:jsonb;default:'{}'"`
}

type ActionLogRepository struct {
	DB *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{DB: db}
}

func (r *ActionLogRepository) Create(entry *ActionLogEntry) (*ActionLogEntry, error) {
	result := r.DB.Create(entry)
	if result.Error != nil {
		return nil, result.Error
	}
	return entry, nil
}

func (r *ActionLogRepository) GetEntriesForTournament(tournamentId int, limit int) ([]*ActionLogEntry, error) {
	var entries []*ActionLogEntry
	result := r.DB.Where("tournament_id = ?", tournamentId).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
