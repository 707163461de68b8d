package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RowError locates one rejected CSV line. Good lines are still imported.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type record struct {
	line   int
	fields []string
}

// readRecords collects the usable lines of a roster CSV: fields trimmed,
// blank lines skipped, a leading header record (detected by headerWord in the
// first column) skipped, byte order mark stripped. Line numbers are physical
// lines of the input, so they survive blank lines in between.
func readRecords(r io.Reader, headerWord string, minFields int) ([]record, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records := make([]record, 0)
	rowErrors := make([]RowError, 0)
	first := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			rowErrors = append(rowErrors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		line, _ := reader.FieldPos(0)
		fields[0] = strings.TrimPrefix(fields[0], "﻿")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if isBlank(fields) {
			continue
		}
		isHeader := first && strings.EqualFold(fields[0], headerWord)
		first = false
		if isHeader {
			continue
		}
		if len(fields) < minFields {
			rowErrors = append(rowErrors, RowError{
				Line:   line,
				Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields)),
			})
			continue
		}
		records = append(records, record{line: line, fields: fields})
	}
	return records, rowErrors, nil
}

func isBlank(fields []string) bool {
	for _, field := range fields {
		if field != "" {
			return false
		}
	}
	return true
}

func field(fields []string, index int) string {
	if index < len(fields) {
		return fields[index]
	}
	return ""
}
