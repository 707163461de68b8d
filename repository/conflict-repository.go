package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// The four conflict relations are separate tables. Each pair carries a
// composite unique index, form validation catches duplicates first so users
// get a field error instead of a constraint violation.

type AdjudicatorTeamConflict struct {
	Id            int          `gorm:"primaryKey"`
	AdjudicatorId int          `gorm:"not null;uniqueIndex:idx_adj_team_conflict"`
	TeamId        int          `gorm:"not null;uniqueIndex:idx_adj_team_conflict"`
	Adjudicator   *Adjudicator `gorm:"foreignKey:AdjudicatorId;constraint:OnDelete:CASCADE"`
	Team          *Team        `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
}

type AdjudicatorAdjudicatorConflict struct {
	Id             int          `gorm:"primaryKey"`
	Adjudicator1Id int          `gorm:"not null;uniqueIndex:idx_adj_adj_conflict"`
	Adjudicator2Id int          `gorm:"not null;uniqueIndex:idx_adj_adj_conflict"`
	Adjudicator1   *Adjudicator `gorm:"foreignKey:Adjudicator1Id;constraint:OnDelete:CASCADE"`
	Adjudicator2   *Adjudicator `gorm:"foreignKey:Adjudicator2Id;constraint:OnDelete:CASCADE"`
}

type AdjudicatorInstitutionConflict struct {
	Id            int          `gorm:"primaryKey"`
	AdjudicatorId int          `gorm:"not null;uniqueIndex:idx_adj_inst_conflict"`
	InstitutionId int          `gorm:"not null;uniqueIndex:idx_adj_inst_conflict"`
	Adjudicator   *Adjudicator `gorm:"foreignKey:AdjudicatorId;constraint:OnDelete:CASCADE"`
	Institution   *Institution `gorm:"foreignKey:InstitutionId;constraint:OnDelete:CASCADE"`
}

type TeamInstitutionConflict struct {
	Id            int          `gorm:"primaryKey"`
	TeamId        int          `gorm:"not null;uniqueIndex:idx_team_inst_conflict"`
	InstitutionId int          `gorm:"not null;uniqueIndex:idx_team_inst_conflict"`
	Team          *Team        `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
	Institution   *Institution `gorm:"foreignKey:InstitutionId;constraint:OnDelete:CASCADE"`
}

type ConflictRepository struct {
	DB *gorm.DB
}

func NewConflictRepository(db *gorm.DB) *ConflictRepository {
	return &ConflictRepository{DB: db}
}

// Conflict rows have no tournament column, tournament scope follows from the
// adjudicator (or team) side of the pair.

func (r *ConflictRepository) GetAdjudicatorTeamConflicts(tournamentId int) ([]*AdjudicatorTeamConflict, error) {
	var conflicts []*AdjudicatorTeamConflict
	result := r.DB.
		Joins("JOIN debatab.adjudicators ON adjudicators.id = adjudicator_team_conflicts.adjudicator_id").
		Where("adjudicators.tournament_id = ?", tournamentId).
		Order("adjudicators.name").
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetAdjudicatorAdjudicatorConflicts(tournamentId int) ([]*AdjudicatorAdjudicatorConflict, error) {
	var conflicts []*AdjudicatorAdjudicatorConflict
	result := r.DB.
		Joins("JOIN debatab.adjudicators ON adjudicators.id = adjudicator_adjudicator_conflicts.adjudicator1_id").
		Where("adjudicators.tournament_id = ?", tournamentId).
		Order("adjudicators.name").
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetAdjudicatorInstitutionConflicts(tournamentId int) ([]*AdjudicatorInstitutionConflict, error) {
	var conflicts []*AdjudicatorInstitutionConflict
	result := r.DB.
		Joins("JOIN debatab.adjudicators ON adjudicators.id = adjudicator_institution_conflicts.adjudicator_id").
		Where("adjudicators.tournament_id = ?", tournamentId).
		Order("adjudicators.name").
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetTeamInstitutionConflicts(tournamentId int) ([]*TeamInstitutionConflict, error) {
	var conflicts []*TeamInstitutionConflict
	result := r.DB.
		Joins("JOIN debatab.teams ON teams.id = team_institution_conflicts.team_id").
		Where("teams.tournament_id = ?", tournamentId).
		Order("teams.short_name").
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

// Participant-restricted loads back the allocation clash tables.

func (r *ConflictRepository) GetAdjudicatorTeamConflictsForParticipants(adjudicatorIds []int, teamIds []int) ([]*AdjudicatorTeamConflict, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAdjudicatorTeamConflictsForParticipants"))
	defer timer.ObserveDuration()
	if len(adjudicatorIds) == 0 || len(teamIds) == 0 {
		return nil, nil
	}
	var conflicts []*AdjudicatorTeamConflict
	result := r.DB.
		Where("adjudicator_id IN ? AND team_id IN ?", adjudicatorIds, teamIds).
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetAdjudicatorAdjudicatorConflictsForParticipants(adjudicatorIds []int) ([]*AdjudicatorAdjudicatorConflict, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAdjudicatorAdjudicatorConflictsForParticipants"))
	defer timer.ObserveDuration()
	if len(adjudicatorIds) == 0 {
		return nil, nil
	}
	var conflicts []*AdjudicatorAdjudicatorConflict
	result := r.DB.
		Where("adjudicator1_id IN ? AND adjudicator2_id IN ?", adjudicatorIds, adjudicatorIds).
		Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetAdjudicatorInstitutionConflictsForAdjudicators(adjudicatorIds []int) ([]*AdjudicatorInstitutionConflict, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAdjudicatorInstitutionConflictsForAdjudicators"))
	defer timer.ObserveDuration()
	if len(adjudicatorIds) == 0 {
		return nil, nil
	}
	var conflicts []*AdjudicatorInstitutionConflict
	result := r.DB.Where("adjudicator_id IN ?", adjudicatorIds).Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

func (r *ConflictRepository) GetTeamInstitutionConflictsForTeams(teamIds []int) ([]*TeamInstitutionConflict, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetTeamInstitutionConflictsForTeams"))
	defer timer.ObserveDuration()
	if len(teamIds) == 0 {
		return nil, nil
	}
	var conflicts []*TeamInstitutionConflict
	result := r.DB.Where("team_id IN ?", teamIds).Find(&conflicts)
	if result.Error != nil {
		return nil, result.Error
	}
	return conflicts, nil
}

// saveConflictChanges applies a validated change set in one transaction.
// nsaved counts creates and updates, ndeleted counts rows the delete actually
// removed.
func saveConflictChanges[T any](db *gorm.DB, creates []*T, updates []*T, deleteIds []int) (nsaved int, ndeleted int, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, row := range updates {
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		}
		if len(creates) > 0 {
			if err := tx.Create(&creates).Error; err != nil {
				return err
			}
		}
		if len(deleteIds) > 0 {
			var zero T
			result := tx.Delete(&zero, "id IN ?", deleteIds)
			if result.Error != nil {
				return result.Error
			}
			ndeleted = int(result.RowsAffected)
		}
		nsaved = len(creates) + len(updates)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return nsaved, ndeleted, nil
}

func (r *ConflictRepository) SaveAdjudicatorTeamConflicts(creates []*AdjudicatorTeamConflict, updates []*AdjudicatorTeamConflict, deleteIds []int) (int, int, error) {
	return saveConflictChanges(r.DB, creates, updates, deleteIds)
}

func (r *ConflictRepository) SaveAdjudicatorAdjudicatorConflicts(creates []*AdjudicatorAdjudicatorConflict, updates []*AdjudicatorAdjudicatorConflict, deleteIds []int) (int, int, error) {
	return saveConflictChanges(r.DB, creates, updates, deleteIds)
}

func (r *ConflictRepository) SaveAdjudicatorInstitutionConflicts(creates []*AdjudicatorInstitutionConflict, updates []*AdjudicatorInstitutionConflict, deleteIds []int) (int, int, error) {
	return saveConflictChanges(r.DB, creates, updates, deleteIds)
}

func (r *ConflictRepository) SaveTeamInstitutionConflicts(creates []*TeamInstitutionConflict, updates []*TeamInstitutionConflict, deleteIds []int) (int, int, error) {
	return saveConflictChanges(r.DB, creates, updates, deleteIds)
}
