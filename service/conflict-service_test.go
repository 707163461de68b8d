package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"debatab/app_error"
	"debatab/choices"
	"debatab/formset"
	"debatab/repository"

	"github.com/stretchr/testify/assert"
)

func TestBuildEditorRequiresViewPermission(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	_, err := conflictService.BuildEditor(RelationAdjudicatorTeam, f.Outsider, f.Tournament)
	assert.EqualError(t, err, "missing permission view_adj_team_conflicts")
	assert.Equal(t, http.StatusForbidden, app_error.HTTPStatus(err))
}

func TestBuildEditorUnknownRelation(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	_, err := conflictService.BuildEditor(ConflictRelation("nonsense"), f.Admin, f.Tournament)
	assert.EqualError(t, err, "unknown conflict relation nonsense")
	assert.Equal(t, http.StatusNotFound, app_error.HTTPStatus(err))
}

// the view permission without the edit permission renders the table read
// only, without extra rows or delete boxes
func TestBuildEditorViewOnly(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	view, err := conflictService.BuildEditor(RelationAdjudicatorTeam, f.Viewer, f.Tournament)
	assert.NoError(t, err)
	assert.True(t, view.Disabled)
	assert.False(t, view.CanEdit)
	assert.False(t, view.CanDelete)
	assert.Equal(t, 0, view.Extra)
	assert.Empty(t, view.Forms)
}

func TestBuildEditorForEditor(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	view, err := conflictService.BuildEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament)
	assert.NoError(t, err)
	assert.Equal(t, "Adjudicator-Team Conflicts", view.PageTitle)
	assert.Equal(t, "Save Adjudicator-Team Conflicts", view.SaveText)
	assert.True(t, view.CanEdit)
	assert.True(t, view.CanDelete)
	assert.Equal(t, 10, view.Extra)
	assert.Len(t, view.Forms, 10)

	assert.Equal(t, "adjudicator", view.Fields[0].Name)
	assert.Equal(t, []choices.Choice{
		{Value: 0, Label: choices.DefaultEmptyLabel},
		{Value: f.Alice.Id, Label: "Alice Birch"},
		{Value: f.Bob.Id, Label: "Bob Chen"},
		{Value: f.Carol.Id, Label: "Carol Diaz"},
	}, view.Fields[0].Choices, "adjudicators come blank first, then ordered by name")
	assert.Equal(t, "team", view.Fields[1].Name)
	assert.Equal(t, []choices.Choice{
		{Value: 0, Label: choices.DefaultEmptyLabel},
		{Value: f.OxfordA.Id, Label: "Oxford A"},
		{Value: f.Swing.Id, Label: "Swing"},
		{Value: f.YaleA.Id, Label: "Yale A"},
	}, view.Fields[1].Choices)
}

// superusers hold every permission without explicit grants
func TestBuildEditorSuperuser(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	view, err := conflictService.BuildEditor(RelationTeamInstitution, f.Admin, f.Tournament)
	assert.NoError(t, err)
	assert.True(t, view.CanEdit)
	assert.Equal(t, "team", view.Fields[0].Name)
	assert.Equal(t, "institution", view.Fields[1].Name)
	assert.Equal(t, []choices.Choice{
		{Value: 0, Label: choices.DefaultEmptyLabel},
		{Value: f.Oxford.Id, Label: "Oxford"},
		{Value: f.Yale.Id, Label: "Yale"},
	}, view.Fields[1].Choices)
}

func TestBuildEditorAdjudicatorPairSharesOptions(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	view, err := conflictService.BuildEditor(RelationAdjudicatorAdjudicator, f.Admin, f.Tournament)
	assert.NoError(t, err)
	assert.Equal(t, "adjudicator1", view.Fields[0].Name)
	assert.Equal(t, "adjudicator2", view.Fields[1].Name)
	assert.Equal(t, view.Fields[0].Choices, view.Fields[1].Choices)
}

func TestSubmitEditorPersistsRowsAndLogs(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	result, fieldErrors, err := conflictService.SubmitEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Values: map[string]int{"adjudicator": f.Alice.Id, "team": f.YaleA.Id}},
			{Values: map[string]int{"adjudicator": f.Bob.Id, "team": f.OxfordA.Id}},
		},
	})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, 2, result.Nsaved)
	assert.Equal(t, 0, result.Ndeleted)
	assert.Equal(t, "/tournaments/test-open/importer", result.Redirect)

	conflicts, err := repository.NewConflictRepository(db).GetAdjudicatorTeamConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Len(t, conflicts, 2)
	assert.Equal(t, f.Alice.Id, conflicts[0].AdjudicatorId)
	assert.Equal(t, f.YaleA.Id, conflicts[0].TeamId)

	// the saved rows come back as bound forms on the next render
	view, err := conflictService.BuildEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament)
	assert.NoError(t, err)
	assert.Len(t, view.Forms, 12)
	assert.NotNil(t, view.Forms[0].Id)

	entries, err := repository.NewActionLogRepository(db).GetEntriesForTournament(f.Tournament.Id, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, repository.ActionConflictsAdjTeamEdit, entries[0].Type)
	assert.Equal(t, f.Tabber.Id, entries[0].UserId)
	var detail map[string]int
	assert.NoError(t, json.Unmarshal([]byte(entries[0].Detail), &detail))
	assert.Equal(t, map[string]int{"nsaved": 2, "ndeleted": 0}, detail)
}

func TestSubmitEditorDeleteCycle(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	_, _, err := conflictService.SubmitEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Values: map[string]int{"adjudicator": f.Alice.Id, "team": f.YaleA.Id}},
		},
	})
	assert.NoError(t, err)
	conflicts, err := repository.NewConflictRepository(db).GetAdjudicatorTeamConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Len(t, conflicts, 1)

	id := conflicts[0].Id
	result, fieldErrors, err := conflictService.SubmitEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Id: &id, Delete: true},
		},
	})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, 1, result.Ndeleted)

	conflicts, err = repository.NewConflictRepository(db).GetAdjudicatorTeamConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestSubmitEditorValidationFailureWritesNothing(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	_, fieldErrors, err := conflictService.SubmitEditor(RelationAdjudicatorTeam, f.Tabber, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Values: map[string]int{"adjudicator": 999999, "team": f.YaleA.Id}},
			{Values: map[string]int{"adjudicator": f.Bob.Id, "team": f.OxfordA.Id}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, []formset.FieldError{
		{Form: 0, Field: "adjudicator", Message: choices.InvalidChoiceMessage},
	}, fieldErrors)

	conflicts, err := repository.NewConflictRepository(db).GetAdjudicatorTeamConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Empty(t, conflicts, "the valid second form must not be saved either")
	entries, err := repository.NewActionLogRepository(db).GetEntriesForTournament(f.Tournament.Id, 10)
	assert.NoError(t, err)
	assert.Empty(t, entries, "rejected submissions are not logged")
}

func TestSubmitEditorRequiresEditPermission(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	_, _, err := conflictService.SubmitEditor(RelationAdjudicatorTeam, f.Viewer, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Values: map[string]int{"adjudicator": f.Alice.Id, "team": f.YaleA.Id}},
		},
	})
	assert.EqualError(t, err, "missing permission edit_adj_team_conflicts")
	assert.Equal(t, http.StatusForbidden, app_error.HTTPStatus(err))

	conflicts, err := repository.NewConflictRepository(db).GetAdjudicatorTeamConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestSubmitEditorTeamInstitutionRelation(t *testing.T) {
	f := SetUp()
	defer TearDown()
	conflictService := NewConflictService(db)

	result, fieldErrors, err := conflictService.SubmitEditor(RelationTeamInstitution, f.Admin, f.Tournament, &formset.Submission{
		Forms: []formset.SubmittedForm{
			{Values: map[string]int{"team": f.Swing.Id, "institution": f.Oxford.Id}},
		},
	})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, 1, result.Nsaved)

	conflicts, err := repository.NewConflictRepository(db).GetTeamInstitutionConflicts(f.Tournament.Id)
	assert.NoError(t, err)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, f.Swing.Id, conflicts[0].TeamId)
	assert.Equal(t, f.Oxford.Id, conflicts[0].InstitutionId)
}
