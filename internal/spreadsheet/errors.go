package spreadsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadable indicates the upload is not a readable xlsx workbook.
	ErrUnreadable = errors.New("unreadable xlsx file")
	// ErrMalformedTable is matched by every MalformedTableError.
	ErrMalformedTable = errors.New("malformed student table")
)

// MalformedTableError reports a header with fewer than the required columns.
type MalformedTableError struct {
	Columns int
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("student table needs at least %d columns (No, Given Name, Family Name), got %d", RequiredColumns, e.Columns)
}

func (e *MalformedTableError) Is(target error) bool {
	return target == ErrMalformedTable
}
