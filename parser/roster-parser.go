package parser

import (
	"fmt"
	"io"
	"strconv"
)

// Roster CSV layouts, one entity per file:
//
//	institutions: name,code[,region]
//	teams:        short_name[,long_name][,institution][,code_name]
//	adjudicators: name,base_score[,institution][,email]
//
// The institution column refers to an institution by name.

type InstitutionRow struct {
	Line   int
	Name   string
	Code   string
	Region string
}

type TeamRow struct {
	Line        int
	ShortName   string
	LongName    string
	Institution string
	CodeName    string
}

type AdjudicatorRow struct {
	Line        int
	Name        string
	BaseScore   float64
	Institution string
	Email       string
}

func ParseInstitutions(r io.Reader) ([]InstitutionRow, []RowError, error) {
	records, rowErrors, err := readRecords(r, "name", 2)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]InstitutionRow, 0, len(records))
	seen := make(map[string]int)
	for _, record := range records {
		name := record.fields[0]
		if name == "" {
			rowErrors = append(rowErrors, RowError{Line: record.line, Reason: "missing institution name"})
			continue
		}
		if first, ok := seen[name]; ok {
			rowErrors = append(rowErrors, RowError{
				Line:   record.line,
				Reason: fmt.Sprintf("duplicate institution %s (first appears on line %d)", name, first),
			})
			continue
		}
		seen[name] = record.line
		rows = append(rows, InstitutionRow{
			Line:   record.line,
			Name:   name,
			Code:   record.fields[1],
			Region: field(record.fields, 2),
		})
	}
	return rows, rowErrors, nil
}

func ParseTeams(r io.Reader) ([]TeamRow, []RowError, error) {
	records, rowErrors, err := readRecords(r, "short_name", 1)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]TeamRow, 0, len(records))
	seen := make(map[string]int)
	for _, record := range records {
		shortName := record.fields[0]
		if shortName == "" {
			rowErrors = append(rowErrors, RowError{Line: record.line, Reason: "missing team short name"})
			continue
		}
		if first, ok := seen[shortName]; ok {
			rowErrors = append(rowErrors, RowError{
				Line:   record.line,
				Reason: fmt.Sprintf("duplicate team %s (first appears on line %d)", shortName, first),
			})
			continue
		}
		seen[shortName] = record.line
		rows = append(rows, TeamRow{
			Line:        record.line,
			ShortName:   shortName,
			LongName:    field(record.fields, 1),
			Institution: field(record.fields, 2),
			CodeName:    field(record.fields, 3),
		})
	}
	return rows, rowErrors, nil
}

func ParseAdjudicators(r io.Reader) ([]AdjudicatorRow, []RowError, error) {
	records, rowErrors, err := readRecords(r, "name", 2)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]AdjudicatorRow, 0, len(records))
	for _, record := range records {
		name := record.fields[0]
		if name == "" {
			rowErrors = append(rowErrors, RowError{Line: record.line, Reason: "missing adjudicator name"})
			continue
		}
		baseScore, err := strconv.ParseFloat(record.fields[1], 64)
		if err != nil {
			rowErrors = append(rowErrors, RowError{
				Line:   record.line,
				Reason: fmt.Sprintf("invalid base score %q", record.fields[1]),
			})
			continue
		}
		rows = append(rows, AdjudicatorRow{
			Line:        record.line,
			Name:        name,
			BaseScore:   baseScore,
			Institution: field(record.fields, 2),
			Email:       field(record.fields, 3),
		})
	}
	return rows, rowErrors, nil
}
