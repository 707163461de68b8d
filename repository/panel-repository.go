package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// A preformed panel is a group of adjudicators assembled before the draw of
// a round exists, to be attached to debates later.
type PreformedPanel struct {
	Id         int     `gorm:"primaryKey"`
	RoundId    int     `gorm:"not null;index"`
	Importance int     `gorm:"not null;default:0"`
	BracketMin float64 `gorm:"not null;default:0"`
	BracketMax float64 `gorm:"not null;default:0"`
	RoomRank   int     `gorm:"not null;default:0"`
	Liveness   int     `gorm:"not null;default:0"`

	Adjudicators []*PreformedPanelAdjudicator `gorm:"foreignKey:PanelId;constraint:OnDelete:CASCADE"`
}

type PreformedPanelAdjudicator struct {
	Id            int                 `gorm:"primaryKey"`
	PanelId       int                 `gorm:"not null;uniqueIndex:idx_panel_adjudicators_pair"`
	AdjudicatorId int                 `gorm:"not null;uniqueIndex:idx_panel_adjudicators_pair"`
	Type          AdjudicatorPosition `gorm:"not null;type:debatab.adjudicator_position"`
	Adjudicator   *Adjudicator        `gorm:"foreignKey:AdjudicatorId"`
}

type PanelRepository struct {
	DB *gorm.DB
}

func NewPanelRepository(db *gorm.DB) *PanelRepository {
	return &PanelRepository{DB: db}
}

// GetPanelsForRound loads the round's panels with their adjudicator
// assignments in one batched preload.
func (r *PanelRepository) GetPanelsForRound(roundId int) ([]*PreformedPanel, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetPanelsForRound"))
	defer timer.ObserveDuration()
	var panels []*PreformedPanel
	result := r.DB.
		Preload("Adjudicators.Adjudicator").
		Where("round_id = ?", roundId).
		Order("id").
		Find(&panels)
	if result.Error != nil {
		return nil, result.Error
	}
	return panels, nil
}

func (r *PanelRepository) HasPanelsForRound(roundId int) (bool, error) {
	var count int64
	result := r.DB.Model(&PreformedPanel{}).Where("round_id = ?", roundId).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *PanelRepository) CreatePanels(panels []*PreformedPanel) error {
	if len(panels) == 0 {
		return nil
	}
	return r.DB.Create(&panels).Error
}

// ReplacePanelAdjudicators swaps the adjudicator assignments of the given
// panels for the provided rows, in one transaction.
func (r *PanelRepository) ReplacePanelAdjudicators(panelIds []int, assignments []*PreformedPanelAdjudicator) error {
	if len(panelIds) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&PreformedPanelAdjudicator{}, "panel_id IN ?", panelIds).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}
