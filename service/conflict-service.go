package service

import (
	"fmt"
	"net/http"

	"debatab/app_error"
	"debatab/choices"
	"debatab/formset"
	"debatab/metrics"
	"debatab/repository"
	"debatab/utils"

	"gorm.io/gorm"
)

// ConflictRelation names one of the four conflict tables as it appears in
// request paths.
type ConflictRelation string

const (
	RelationAdjudicatorTeam        ConflictRelation = "adjudicator-team"
	RelationAdjudicatorAdjudicator ConflictRelation = "adjudicator-adjudicator"
	RelationAdjudicatorInstitution ConflictRelation = "adjudicator-institution"
	RelationTeamInstitution        ConflictRelation = "team-institution"
)

type conflictRelationConfig struct {
	viewPermission repository.Permission
	editPermission repository.Permission
	actionType     repository.ActionType
	noun           string
	fieldNames     [2]string
	pageTitle      string
	saveText       string
}

var conflictRelations = map[ConflictRelation]conflictRelationConfig{
	RelationAdjudicatorTeam: {
		viewPermission: repository.PermissionViewAdjTeamConflicts,
		editPermission: repository.PermissionEditAdjTeamConflicts,
		actionType:     repository.ActionConflictsAdjTeamEdit,
		noun:           "adjudicator-team conflict",
		fieldNames:     [2]string{"adjudicator", "team"},
		pageTitle:      "Adjudicator-Team Conflicts",
		saveText:       "Save Adjudicator-Team Conflicts",
	},
	RelationAdjudicatorAdjudicator: {
		viewPermission: repository.PermissionViewAdjAdjConflicts,
		editPermission: repository.PermissionEditAdjAdjConflicts,
		actionType:     repository.ActionConflictsAdjAdjEdit,
		noun:           "adjudicator-adjudicator conflict",
		fieldNames:     [2]string{"adjudicator1", "adjudicator2"},
		pageTitle:      "Adjudicator-Adjudicator Conflicts",
		saveText:       "Save Adjudicator-Adjudicator Conflicts",
	},
	RelationAdjudicatorInstitution: {
		viewPermission: repository.PermissionViewAdjInstConflicts,
		editPermission: repository.PermissionEditAdjInstConflicts,
		actionType:     repository.ActionConflictsAdjInstEdit,
		noun:           "adjudicator-institution conflict",
		fieldNames:     [2]string{"adjudicator", "institution"},
		pageTitle:      "Adjudicator-Institution Conflicts",
		saveText:       "Save Adjudicator-Institution Conflicts",
	},
	RelationTeamInstitution: {
		viewPermission: repository.PermissionViewTeamInstConflicts,
		editPermission: repository.PermissionEditTeamInstConflicts,
		actionType:     repository.ActionConflictsTeamInstEdit,
		noun:           "team-institution conflict",
		fieldNames:     [2]string{"team", "institution"},
		pageTitle:      "Team-Institution Conflicts",
		saveText:       "Save Team-Institution Conflicts",
	},
}

type ConflictService struct {
	conflictRepository    *repository.ConflictRepository
	adjudicatorRepository *repository.AdjudicatorRepository
	teamRepository        *repository.TeamRepository
	institutionRepository *repository.InstitutionRepository
	permissionService     *PermissionService
	actionLogService      *ActionLogService
}

func NewConflictService(db *gorm.DB) *ConflictService {
	return &ConflictService{
		conflictRepository:    repository.NewConflictRepository(db),
		adjudicatorRepository: repository.NewAdjudicatorRepository(db),
		teamRepository:        repository.NewTeamRepository(db),
		institutionRepository: repository.NewInstitutionRepository(db),
		permissionService:     NewPermissionService(db),
		actionLogService:      NewActionLogService(db),
	}
}

// BuildEditor renders the tabular editor for one relation. The view
// permission gates access, the edit permission decides whether the editor
// comes back with extra rows and delete boxes or fully disabled.
func (e *ConflictService) BuildEditor(relation ConflictRelation, user *repository.User, tournament *repository.Tournament) (*formset.View, error) {
	config, ok := conflictRelations[relation]
	if !ok {
		return nil, app_error.New(http.StatusNotFound, fmt.Sprintf("unknown conflict relation %s", relation))
	}
	canView, err := e.permissionService.HasPermission(user, config.viewPermission, tournament)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, app_error.New(http.StatusForbidden, fmt.Sprintf("missing permission %s", config.viewPermission))
	}
	canEdit, err := e.permissionService.HasPermission(user, config.editPermission, tournament)
	if err != nil {
		return nil, err
	}
	descriptor, err := e.buildDescriptor(relation, config, tournament, canEdit)
	if err != nil {
		return nil, err
	}
	return formset.Build(descriptor)
}

// SubmitEditor validates and persists a submission, then writes the action
// log entry for the relation.
func (e *ConflictService) SubmitEditor(relation ConflictRelation, user *repository.User, tournament *repository.Tournament, submission *formset.Submission) (*formset.Result, []formset.FieldError, error) {
	config, ok := conflictRelations[relation]
	if !ok {
		return nil, nil, app_error.New(http.StatusNotFound, fmt.Sprintf("unknown conflict relation %s", relation))
	}
	canEdit, err := e.permissionService.HasPermission(user, config.editPermission, tournament)
	if err != nil {
		return nil, nil, err
	}
	if !canEdit {
		return nil, nil, app_error.New(http.StatusForbidden, fmt.Sprintf("missing permission %s", config.editPermission))
	}
	descriptor, err := e.buildDescriptor(relation, config, tournament, true)
	if err != nil {
		return nil, nil, err
	}
	result, fieldErrors, err := formset.Submit(descriptor, submission)
	if err != nil || fieldErrors != nil {
		return nil, fieldErrors, err
	}
	metrics.ConflictRowsSaved.WithLabelValues(string(relation)).Add(float64(result.Nsaved))
	metrics.ConflictRowsDeleted.WithLabelValues(string(relation)).Add(float64(result.Ndeleted))
	_, err = e.actionLogService.Log(config.actionType, user, tournament, nil, map[string]int{
		"nsaved":   result.Nsaved,
		"ndeleted": result.Ndeleted,
	})
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

func (e *ConflictService) buildDescriptor(relation ConflictRelation, config conflictRelationConfig, tournament *repository.Tournament, canEdit bool) (*formset.Descriptor, error) {
	descriptor := &formset.Descriptor{
		RelationNoun: config.noun,
		FieldNames:   config.fieldNames,
		Extra:        10 * boolToInt(canEdit),
		CanDelete:    canEdit,
		Disabled:     !canEdit,
		PageTitle:    config.pageTitle,
		SaveText:     config.saveText,
		SameViewURL:  fmt.Sprintf("/tournaments/%s/conflicts/%s", tournament.Slug, relation),
		SuccessURL:   fmt.Sprintf("/tournaments/%s/importer", tournament.Slug),
	}

	useCodeNames := repository.UseCodeNamesForAdmin(tournament.TeamCodeNames)

	switch relation {
	case RelationAdjudicatorTeam:
		adjudicatorField, err := e.adjudicatorField(tournament)
		if err != nil {
			return nil, err
		}
		teamField, err := e.teamField(tournament, useCodeNames, useCodeNames)
		if err != nil {
			return nil, err
		}
		descriptor.Fields = [2]*choices.Field{adjudicatorField, teamField}
		descriptor.LoadRows = func() ([]formset.Row, error) {
			conflicts, err := e.conflictRepository.GetAdjudicatorTeamConflicts(tournament.Id)
			if err != nil {
				return nil, err
			}
			return utils.Map(conflicts, func(conflict *repository.AdjudicatorTeamConflict) formset.Row {
				return formset.Row{Id: conflict.Id, Values: formset.Pair{conflict.AdjudicatorId, conflict.TeamId}}
			}), nil
		}
		descriptor.Persist = func(changes formset.ChangeSet) (int, int, error) {
			creates := utils.Map(changes.Creates, func(pair formset.Pair) *repository.AdjudicatorTeamConflict {
				return &repository.AdjudicatorTeamConflict{AdjudicatorId: pair[0], TeamId: pair[1]}
			})
			updates := utils.Map(changes.Updates, func(row formset.Row) *repository.AdjudicatorTeamConflict {
				return &repository.AdjudicatorTeamConflict{Id: row.Id, AdjudicatorId: row.Values[0], TeamId: row.Values[1]}
			})
			return e.conflictRepository.SaveAdjudicatorTeamConflicts(creates, updates, changes.DeleteIds)
		}

	case RelationAdjudicatorAdjudicator:
		// Both columns share one field, the option list is built once.
		adjudicatorField, err := e.adjudicatorField(tournament)
		if err != nil {
			return nil, err
		}
		descriptor.Fields = [2]*choices.Field{adjudicatorField, adjudicatorField}
		descriptor.LoadRows = func() ([]formset.Row, error) {
			conflicts, err := e.conflictRepository.GetAdjudicatorAdjudicatorConflicts(tournament.Id)
			if err != nil {
				return nil, err
			}
			return utils.Map(conflicts, func(conflict *repository.AdjudicatorAdjudicatorConflict) formset.Row {
				return formset.Row{Id: conflict.Id, Values: formset.Pair{conflict.Adjudicator1Id, conflict.Adjudicator2Id}}
			}), nil
		}
		descriptor.Persist = func(changes formset.ChangeSet) (int, int, error) {
			creates := utils.Map(changes.Creates, func(pair formset.Pair) *repository.AdjudicatorAdjudicatorConflict {
				return &repository.AdjudicatorAdjudicatorConflict{Adjudicator1Id: pair[0], Adjudicator2Id: pair[1]}
			})
			updates := utils.Map(changes.Updates, func(row formset.Row) *repository.AdjudicatorAdjudicatorConflict {
				return &repository.AdjudicatorAdjudicatorConflict{Id: row.Id, Adjudicator1Id: row.Values[0], Adjudicator2Id: row.Values[1]}
			})
			return e.conflictRepository.SaveAdjudicatorAdjudicatorConflicts(creates, updates, changes.DeleteIds)
		}

	case RelationAdjudicatorInstitution:
		adjudicatorField, err := e.adjudicatorField(tournament)
		if err != nil {
			return nil, err
		}
		institutionField, err := e.institutionField()
		if err != nil {
			return nil, err
		}
		descriptor.Fields = [2]*choices.Field{adjudicatorField, institutionField}
		descriptor.LoadRows = func() ([]formset.Row, error) {
			conflicts, err := e.conflictRepository.GetAdjudicatorInstitutionConflicts(tournament.Id)
			if err != nil {
				return nil, err
			}
			return utils.Map(conflicts, func(conflict *repository.AdjudicatorInstitutionConflict) formset.Row {
				return formset.Row{Id: conflict.Id, Values: formset.Pair{conflict.AdjudicatorId, conflict.InstitutionId}}
			}), nil
		}
		descriptor.Persist = func(changes formset.ChangeSet) (int, int, error) {
			creates := utils.Map(changes.Creates, func(pair formset.Pair) *repository.AdjudicatorInstitutionConflict {
				return &repository.AdjudicatorInstitutionConflict{AdjudicatorId: pair[0], InstitutionId: pair[1]}
			})
			updates := utils.Map(changes.Updates, func(row formset.Row) *repository.AdjudicatorInstitutionConflict {
				return &repository.AdjudicatorInstitutionConflict{Id: row.Id, AdjudicatorId: row.Values[0], InstitutionId: row.Values[1]}
			})
			return e.conflictRepository.SaveAdjudicatorInstitutionConflicts(creates, updates, changes.DeleteIds)
		}

	case RelationTeamInstitution:
		// TODO: order team choices by code name when code names are shown,
		// like the adjudicator-team editor does. They are labelled by code
		// name but sorted by short name, which scrambles the dropdown.
		teamField, err := e.teamField(tournament, useCodeNames, false)
		if err != nil {
			return nil, err
		}
		institutionField, err := e.institutionField()
		if err != nil {
			return nil, err
		}
		descriptor.Fields = [2]*choices.Field{teamField, institutionField}
		descriptor.LoadRows = func() ([]formset.Row, error) {
			conflicts, err := e.conflictRepository.GetTeamInstitutionConflicts(tournament.Id)
			if err != nil {
				return nil, err
			}
			return utils.Map(conflicts, func(conflict *repository.TeamInstitutionConflict) formset.Row {
				return formset.Row{Id: conflict.Id, Values: formset.Pair{conflict.TeamId, conflict.InstitutionId}}
			}), nil
		}
		descriptor.Persist = func(changes formset.ChangeSet) (int, int, error) {
			creates := utils.Map(changes.Creates, func(pair formset.Pair) *repository.TeamInstitutionConflict {
				return &repository.TeamInstitutionConflict{TeamId: pair[0], InstitutionId: pair[1]}
			})
			updates := utils.Map(changes.Updates, func(row formset.Row) *repository.TeamInstitutionConflict {
				return &repository.TeamInstitutionConflict{Id: row.Id, TeamId: row.Values[0], InstitutionId: row.Values[1]}
			})
			return e.conflictRepository.SaveTeamInstitutionConflicts(creates, updates, changes.DeleteIds)
		}
	}
	return descriptor, nil
}

func (e *ConflictService) adjudicatorField(tournament *repository.Tournament) (*choices.Field, error) {
	adjudicators, err := e.adjudicatorRepository.GetAdjudicatorsForTournament(tournament.Id)
	if err != nil {
		return nil, err
	}
	field := choices.NewField(choices.EmptyLabel(choices.DefaultEmptyLabel))
	field.SetOptions(choices.AdjudicatorOptions(adjudicators))
	return field, nil
}

func (e *ConflictService) teamField(tournament *repository.Tournament, labelByCodeName bool, orderByCodeName bool) (*choices.Field, error) {
	teams, err := e.teamRepository.GetTeamsForTournament(tournament.Id, orderByCodeName)
	if err != nil {
		return nil, err
	}
	field := choices.NewField(choices.EmptyLabel(choices.DefaultEmptyLabel))
	field.SetOptions(choices.TeamOptions(teams, labelByCodeName))
	return field, nil
}

func (e *ConflictService) institutionField() (*choices.Field, error) {
	institutions, err := e.institutionRepository.GetAllInstitutions()
	if err != nil {
		return nil, err
	}
	field := choices.NewField(choices.EmptyLabel(choices.DefaultEmptyLabel))
	field.SetOptions(choices.InstitutionOptions(institutions))
	return field, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
