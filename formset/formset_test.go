package formset

import (
	"testing"

	"debatab/choices"

	"github.com/stretchr/testify/assert"
)

func testDescriptor(rows []Row) (*Descriptor, *ChangeSet) {
	adjudicators := choices.NewField(choices.EmptyLabel(choices.DefaultEmptyLabel))
	adjudicators.SetOptions([]choices.Choice{
		{Value: 1, Label: "Alice"},
		{Value: 2, Label: "Bob"},
		{Value: 3, Label: "Carol"},
	})
	teams := choices.NewField(choices.EmptyLabel(choices.DefaultEmptyLabel))
	teams.SetOptions([]choices.Choice{
		{Value: 10, Label: "Oxford A"},
		{Value: 20, Label: "Cambridge B"},
		{Value: 30, Label: "Edinburgh C"},
	})
	persisted := &ChangeSet{}
	d := &Descriptor{
		RelationNoun: "adjudicator-team conflict",
		FieldNames:   [2]string{"adjudicator", "team"},
		Fields:       [2]*choices.Field{adjudicators, teams},
		Extra:        10,
		CanDelete:    true,
		PageTitle:    "Adjudicator-Team Conflicts",
		SaveText:     "Save Adjudicator-Team Conflicts",
		SameViewURL:  "/tournaments/test/conflicts/adjudicator-team",
		SuccessURL:   "/tournaments/test/importer",
		LoadRows: func() ([]Row, error) {
			return rows, nil
		},
		Persist: func(changes ChangeSet) (int, int, error) {
			*persisted = changes
			return len(changes.Creates) + len(changes.Updates), len(changes.DeleteIds), nil
		},
	}
	return d, persisted
}

func TestBuildRendersRowsAndExtraForms(t *testing.T) {
	d, _ := testDescriptor([]Row{
		{Id: 7, Values: Pair{1, 10}},
		{Id: 8, Values: Pair{2, 20}},
	})

	view, err := Build(d)
	assert.NoError(t, err)
	assert.Equal(t, "Adjudicator-Team Conflicts", view.PageTitle)
	assert.True(t, view.CanEdit)
	assert.Len(t, view.Forms, 12, "2 stored rows followed by 10 extra forms")
	assert.Equal(t, 7, *view.Forms[0].Id)
	assert.Equal(t, map[string]int{"adjudicator": 1, "team": 10}, view.Forms[0].Values)
	assert.Nil(t, view.Forms[2].Id)
	assert.Equal(t, map[string]int{"adjudicator": 0, "team": 0}, view.Forms[2].Values)
	assert.Equal(t, "adjudicator", view.Fields[0].Name)
	assert.Equal(t, "team", view.Fields[1].Name)
	// the blank option leads both choice lists
	assert.Len(t, view.Fields[0].Choices, 4)
	assert.Equal(t, choices.DefaultEmptyLabel, view.Fields[0].Choices[0].Label)
}

func TestSubmitCreatesNewRows(t *testing.T) {
	d, persisted := testDescriptor(nil)

	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
		{Values: map[string]int{"adjudicator": 2, "team": 20}},
		{Values: map[string]int{"adjudicator": 0, "team": 0}},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, []Pair{{1, 10}, {2, 20}}, persisted.Creates, "untouched extra forms are skipped")
	assert.Equal(t, 2, result.Nsaved)
	assert.Equal(t, []string{"Saved 2 adjudicator-team conflicts."}, result.Messages)
	assert.Equal(t, "/tournaments/test/importer", result.Redirect)
}

func TestSubmitAddMoreStaysOnEditor(t *testing.T) {
	d, _ := testDescriptor(nil)

	result, fieldErrors, err := Submit(d, &Submission{
		Forms:   []SubmittedForm{{Values: map[string]int{"adjudicator": 1, "team": 10}}},
		AddMore: true,
	})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "/tournaments/test/conflicts/adjudicator-team", result.Redirect)
	assert.Equal(t, []string{"Saved 1 adjudicator-team conflict."}, result.Messages)
}

func TestSubmitHalfFilledFormIsRequired(t *testing.T) {
	d, persisted := testDescriptor(nil)

	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 1, "team": 0}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []FieldError{{Form: 0, Field: "team", Message: RequiredMessage}}, fieldErrors)
	assert.Empty(t, persisted.Creates, "nothing may be written when validation fails")
}

func TestSubmitRejectsUnknownChoice(t *testing.T) {
	d, persisted := testDescriptor(nil)

	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 99, "team": 10}},
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []FieldError{{Form: 0, Field: "adjudicator", Message: choices.InvalidChoiceMessage}}, fieldErrors)
	assert.Empty(t, persisted.Creates, "the valid second form must not be saved either")
}

func TestSubmitUnchangedRowsAreNotResaved(t *testing.T) {
	d, persisted := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})

	id := 7
	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Empty(t, persisted.Updates)
	assert.Equal(t, 0, result.Nsaved)
	assert.Equal(t, []string{"No changes were made to adjudicator-team conflicts."}, result.Messages)
}

func TestSubmitChangedRowBecomesUpdate(t *testing.T) {
	d, persisted := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})

	id := 7
	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Values: map[string]int{"adjudicator": 1, "team": 20}},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, []Row{{Id: 7, Values: Pair{1, 20}}}, persisted.Updates)
	assert.Equal(t, 1, result.Nsaved)
}

// only the second occurrence of a repeated pair is flagged, matching how a
// row-by-row editor highlights the duplicate
func TestSubmitFlagsDuplicatesWithinSubmission(t *testing.T) {
	d, _ := testDescriptor(nil)

	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []FieldError{{
		Form:    1,
		Field:   NonFieldErrors,
		Message: "Please correct the duplicate data for adjudicator and team, which must be unique.",
	}}, fieldErrors)
}

func TestSubmitRejectsPairTakenByAnotherRow(t *testing.T) {
	d, _ := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})

	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []FieldError{{
		Form:    0,
		Field:   NonFieldErrors,
		Message: "Adjudicator-team conflict with this Adjudicator and Team already exists.",
	}}, fieldErrors)
}

func TestSubmitDeletesMarkedRows(t *testing.T) {
	d, persisted := testDescriptor([]Row{
		{Id: 7, Values: Pair{1, 10}},
		{Id: 8, Values: Pair{2, 20}},
	})

	id := 7
	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Values: map[string]int{"adjudicator": 1, "team": 10}, Delete: true},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, []int{7}, persisted.DeleteIds)
	assert.Equal(t, 1, result.Ndeleted)
	assert.Equal(t, []string{"Deleted 1 adjudicator-team conflict."}, result.Messages)
}

// without delete rights the flag degrades to a plain edit of the same values,
// which is a no-op
func TestSubmitIgnoresDeleteWithoutDeleteRights(t *testing.T) {
	d, persisted := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})
	d.CanDelete = false

	id := 7
	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Values: map[string]int{"adjudicator": 1, "team": 10}, Delete: true},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Empty(t, persisted.DeleteIds)
	assert.Equal(t, 0, result.Ndeleted)
	assert.Equal(t, []string{"No changes were made to adjudicator-team conflicts."}, result.Messages)
}

func TestSubmitMixedSaveAndDelete(t *testing.T) {
	d, persisted := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})

	id := 7
	result, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Delete: true},
		{Values: map[string]int{"adjudicator": 2, "team": 20}},
	}})
	assert.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, []Pair{{2, 20}}, persisted.Creates)
	assert.Equal(t, []int{7}, persisted.DeleteIds)
	assert.Equal(t, []string{
		"Saved 1 adjudicator-team conflict.",
		"Deleted 1 adjudicator-team conflict.",
	}, result.Messages)
}

func TestSubmitUnknownRowId(t *testing.T) {
	d, _ := testDescriptor(nil)

	id := 99
	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, []FieldError{{Form: 0, Field: NonFieldErrors, Message: "Row 99 does not exist."}}, fieldErrors)
}

func TestSubmitToDisabledEditorFails(t *testing.T) {
	d, _ := testDescriptor(nil)
	d.Disabled = true

	_, _, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.EqualError(t, err, "submission to a disabled adjudicator-team conflict editor")
}

// uniqueness is checked against the rows as they are stored now, so a pair
// freed by a delete in the same submission is still taken
func TestSubmitPairFreedByDeleteStillCountsAsTaken(t *testing.T) {
	d, _ := testDescriptor([]Row{{Id: 7, Values: Pair{1, 10}}})

	id := 7
	_, fieldErrors, err := Submit(d, &Submission{Forms: []SubmittedForm{
		{Id: &id, Delete: true},
		{Values: map[string]int{"adjudicator": 1, "team": 10}},
	}})
	assert.NoError(t, err)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, 1, fieldErrors[0].Form)
	assert.Equal(t, NonFieldErrors, fieldErrors[0].Field)
}
