package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields is matched by every MissingFieldsError.
var ErrMissingFields = errors.New("missing required fields")

// ExamTypes are the preset exam types offered by the input form.
var ExamTypes = []string{"Midterm Exam", "Final Exam", "Make-up Exam", "Excuse Exam", "Other"}

// ExamInfo is the exam metadata printed on every generated document.
// It is passed by value and never mutated after validation.
type ExamInfo struct {
	University string `json:"university" yaml:"university" form:"university"`
	Faculty    string `json:"faculty" yaml:"faculty" form:"faculty"`
	Department string `json:"department" yaml:"department" form:"department"`
	Course     string `json:"course" yaml:"course" form:"course"`
	ExamType   string `json:"exam_type" yaml:"exam_type" form:"exam_type"`
	Instructor string `json:"instructor" yaml:"instructor" form:"instructor"`
	Date       string `json:"date" yaml:"date" form:"date"`
	Time       string `json:"time" yaml:"time" form:"time"`
}

// MissingFieldsError names every required field left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// Validate reports all empty fields at once, in form order.
func (e ExamInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"University", e.University},
		{"Faculty", e.Faculty},
		{"Department", e.Department},
		{"Course", e.Course},
		{"Exam Type", e.ExamType},
		{"Instructor", e.Instructor},
		{"Date", e.Date},
		{"Time", e.Time},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
