package repository

import (
	"gorm.io/gorm"
)

// A RoundAvailability row marks the adjudicator as checked in for the round.
// No row means unavailable.
type RoundAvailability struct {
	Id            int `gorm:"primaryKey"`
	RoundId       int `gorm:"not null;uniqueIndex:idx_round_availability_pair"`
	AdjudicatorId int `gorm:"not null;uniqueIndex:idx_round_availability_pair"`
}

type AvailabilityRepository struct {
	DB *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

func (r *AvailabilityRepository) GetAvailableAdjudicatorIds(roundId int) ([]int, error) {
	ids := make([]int, 0)
	result := r.DB.Model(&RoundAvailability{}).
		Where("round_id = ?", roundId).
		Pluck("adjudicator_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
