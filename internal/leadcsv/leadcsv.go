// Package leadcsv reads lead import files. The header row names the columns; rows are
// numbered from 2 so errors point at the line a spreadsheet shows.
package leadcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/service"
)

// FirstDataRow is the row number of the first record after the header
const FirstDataRow = 2

var requiredColumns = []string{"name", "phone", "industry"}

// Parse reads every record of a lead CSV. Unknown columns are ignored. A record with the
// wrong number of fields fails the whole file since later row numbers would be off.
func Parse(r io.Reader) ([]service.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewValidationError("file", "csv file is empty")
		}
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("invalid csv header: %v", err))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, apperrors.NewValidationError("file", fmt.Sprintf("missing required column %q", name))
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []service.ImportRow
	for rowNum := FirstDataRow; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("file", fmt.Sprintf("row %d: %v", rowNum, err))
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, service.ImportRow{
			Row: rowNum,
			CreateLeadRequest: service.CreateLeadRequest{
				Name:     field(record, "name"),
				Phone:    field(record, "phone"),
				Email:    field(record, "email"),
				Company:  field(record, "company"),
				Industry: field(record, "industry"),
				Notes:    field(record, "notes"),
			},
		})
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
