package repository

import (
	"gorm.io/gorm"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

type Adjudicator struct {
	Id            int          `gorm:"primaryKey"`
	TournamentId  int          `gorm:"not null;index"`
	Name          string       `gorm:"not null"`
	Gender        string       `gorm:"null"`
	Email         string       `gorm:"null"`
	InstitutionId *int         `gorm:"null"`
	Institution   *Institution `gorm:"foreignKey:InstitutionId"`
	BaseScore     float64      `gorm:"not null;default:0"`
	Independent   bool         `gorm:"not null;default:false"`
	AdjCore       bool         `gorm:"not null;default:false"`
	URLKey        string       `gorm:"not null;uniqueIndex"`

	// Populated per round, not persisted.
	Available bool    `gorm:"-"`
	Score     float64 `gorm:"-"`
}

type AdjudicatorRepository struct {
	DB *gorm.DB
}

func NewAdjudicatorRepository(db *gorm.DB) *AdjudicatorRepository {
	return &AdjudicatorRepository{DB: db}
}

// GetAdjudicatorsForTournament returns all of the tournament's adjudicators
// with their institution and region, ordered by name.
func (r *AdjudicatorRepository) GetAdjudicatorsForTournament(tournamentId int) ([]*Adjudicator, error) {
	var adjudicators []*Adjudicator
	result := r.DB.Preload("Institution").Preload("Institution.Region").
		Where("tournament_id = ?", tournamentId).
		Order("name").Find(&adjudicators)
	if result.Error != nil {
		return nil, result.Error
	}
	return adjudicators, nil
}

func (r *AdjudicatorRepository) CreateAdjudicators(adjudicators []*Adjudicator) error {
	if len(adjudicators) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(adjudicators, 500).Error
}
