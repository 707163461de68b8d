package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInstitutionsSkipsHeaderAndByteOrderMark(t *testing.T) {
	input := "﻿name,code,region\nOxford,OXF,Europe\nYale,YAL\n"

	rows, rowErrors, err := ParseInstitutions(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Equal(t, []InstitutionRow{
		{Line: 2, Name: "Oxford", Code: "OXF", Region: "Europe"},
		{Line: 3, Name: "Yale", Code: "YAL"},
	}, rows)
}

func TestParseInstitutionsWorksWithoutHeader(t *testing.T) {
	rows, rowErrors, err := ParseInstitutions(strings.NewReader("Oxford,OXF\n"))
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Line)
}

// blank lines do not throw the reported line numbers off
func TestParseInstitutionsBlankLines(t *testing.T) {
	input := "name,code\n\nOxford,OXF\n,,\nYale,YAL\n"

	rows, rowErrors, err := ParseInstitutions(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Equal(t, []InstitutionRow{
		{Line: 3, Name: "Oxford", Code: "OXF"},
		{Line: 5, Name: "Yale", Code: "YAL"},
	}, rows)
}

func TestParseInstitutionsCollectsRowErrors(t *testing.T) {
	input := "name,code\n,XXX\nOxford,OXF\nOxford,OX2\nSolo\n"

	rows, rowErrors, err := ParseInstitutions(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []InstitutionRow{{Line: 3, Name: "Oxford", Code: "OXF"}}, rows, "good lines are still imported")
	assert.Equal(t, []RowError{
		{Line: 5, Reason: "expected at least 2 fields, got 1"},
		{Line: 2, Reason: "missing institution name"},
		{Line: 4, Reason: "duplicate institution Oxford (first appears on line 3)"},
	}, rowErrors)
}

func TestParseTeamsOptionalColumns(t *testing.T) {
	input := "short_name,long_name,institution,code_name\n" +
		"Oxford A,Oxford University A,Oxford,Kingfisher\n" +
		"Swing Team\n"

	rows, rowErrors, err := ParseTeams(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Equal(t, []TeamRow{
		{Line: 2, ShortName: "Oxford A", LongName: "Oxford University A", Institution: "Oxford", CodeName: "Kingfisher"},
		{Line: 3, ShortName: "Swing Team"},
	}, rows)
}

func TestParseTeamsRejectsDuplicates(t *testing.T) {
	input := "Oxford A,,Oxford\nOxford A\n"

	rows, rowErrors, err := ParseTeams(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []RowError{
		{Line: 2, Reason: "duplicate team Oxford A (first appears on line 1)"},
	}, rowErrors)
}

func TestParseAdjudicators(t *testing.T) {
	input := "name,base_score,institution,email\n" +
		"Alice,4.5,Oxford,alice@example.org\n" +
		"Bob,high\n" +
		"Carol,3\n"

	rows, rowErrors, err := ParseAdjudicators(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []RowError{{Line: 3, Reason: `invalid base score "high"`}}, rowErrors)
	assert.Equal(t, []AdjudicatorRow{
		{Line: 2, Name: "Alice", BaseScore: 4.5, Institution: "Oxford", Email: "alice@example.org"},
		{Line: 4, Name: "Carol", BaseScore: 3},
	}, rows)
}

// adjudicator names are not unique, two judges may share one
func TestParseAdjudicatorsAllowsDuplicateNames(t *testing.T) {
	input := "Alice,4.5\nAlice,3\n"

	rows, rowErrors, err := ParseAdjudicators(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Len(t, rows, 2)
}
