package repository

import (
	"gorm.io/gorm"
)

type Team struct {
	Id            int          `gorm:"primaryKey"`
	TournamentId  int          `gorm:"not null;index"`
	ShortName     string       `gorm:"not null"`
	LongName      string       `gorm:"null"`
	CodeName      string       `gorm:"null"`
	InstitutionId *int         `gorm:"null"`
	Institution   *Institution `gorm:"foreignKey:InstitutionId"`
	Emoji         string       `gorm:"null"`
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

// GetTeamsForTournament returns the tournament's teams ordered by code name
// when byCodeName is set, by short name otherwise.
func (r *TeamRepository) GetTeamsForTournament(tournamentId int, byCodeName bool) ([]*Team, error) {
	orderColumn := "short_name"
	if byCodeName {
		orderColumn = "code_name"
	}
	var teams []*Team
	result := r.DB.Preload("Institution").
		Where("tournament_id = ?", tournamentId).
		Order(orderColumn).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) CreateTeams(teams []*Team) error {
	if len(teams) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(teams, 500).Error
}
