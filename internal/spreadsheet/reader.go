// Package spreadsheet loads student tables from xlsx uploads and writes the blank template.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"examdocs/internal/model"
)

// RequiredColumns is the minimum header width: identifier, given name, family name.
const RequiredColumns = 3

// Read parses the first sheet of an xlsx workbook. The first row is the header.
// Blank rows are skipped and columns past the third are kept as Extra.
func Read(r io.Reader) ([]model.Student, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MalformedTableError{Columns: 0}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(rows) == 0 {
		return nil, &MalformedTableError{Columns: 0}
	}

	if width := headerWidth(rows[0]); width < RequiredColumns {
		return nil, &MalformedTableError{Columns: width}
	}

	students := make([]model.Student, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		cells := make([]string, max(len(row), RequiredColumns))
		copy(cells, row)

		s := model.Student{
			ID:         model.ParseIdentifier(cells[0]),
			GivenName:  strings.TrimSpace(cells[1]),
			FamilyName: strings.TrimSpace(cells[2]),
		}
		if len(cells) > RequiredColumns {
			s.Extra = cells[RequiredColumns:]
		}
		students = append(students, s)
	}
	return students, nil
}

// headerWidth counts header cells up to the last non-empty one.
func headerWidth(header []string) int {
	n := len(header)
	for n > 0 && strings.TrimSpace(header[n-1]) == "" {
		n--
	}
	return n
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
