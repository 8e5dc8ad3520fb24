package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw  string
		kind IdentifierKind
		str  string
	}{
		{"123", IdentifierInt, "123"},
		{" 42 ", IdentifierInt, "42"},
		{"12.5", IdentifierFloat, "12.5"},
		{"B-17", IdentifierText, "B-17"},
		{"", IdentifierText, ""},
		{"NaN", IdentifierText, "NaN"},
	}

	for _, tt := range tests {
		id := ParseIdentifier(tt.raw)
		assert.Equal(t, tt.kind, id.Kind, tt.raw)
		assert.Equal(t, tt.str, id.String(), tt.raw)
	}
}

func TestIdentifier_Compare(t *testing.T) {
	assert.Equal(t, -1, IntID(2).Compare(IntID(10)))
	assert.Equal(t, 1, IntID(10).Compare(IntID(2)))
	assert.Equal(t, 0, IntID(7).Compare(IntID(7)))

	// numeric, not lexicographic
	assert.Equal(t, -1, ParseIdentifier("9").Compare(ParseIdentifier("10.5")))

	assert.Equal(t, -1, TextID("10").Compare(TextID("9")))
	assert.Equal(t, -1, IntID(999).Compare(TextID("A1")))
	assert.Equal(t, 1, TextID("A1").Compare(IntID(1)))
}

func TestIdentifier_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Identifier{IntID(5), TextID("x1"), ParseIdentifier("2.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `[5,"x1",2.5]`, string(b))
}

func TestExamInfo_Validate(t *testing.T) {
	full := ExamInfo{
		University: "Kırıkkale University",
		Faculty:    "Engineering",
		Department: "Computer Engineering",
		Course:     "Algorithms",
		ExamType:   "Final Exam",
		Instructor: "Dr. Ada",
		Date:       "12.01.2026",
		Time:       "10:00",
	}
	assert.NoError(t, full.Validate())

	partial := full
	partial.Faculty = "  "
	partial.Date = ""
	partial.Time = ""

	err := partial.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFields))

	var mf *MissingFieldsError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, []string{"Faculty", "Date", "Time"}, mf.Fields)
	assert.Equal(t, "missing required fields: Faculty, Date, Time", err.Error())
}

func TestAssignment_Lookup(t *testing.T) {
	a := &Assignment{Rooms: []RoomRoster{
		{Room: Room{Name: "A1", Capacity: 1}, Seats: []Seat{{Rank: 1, Student: Student{ID: IntID(1)}}}},
		{Room: Room{Name: "B2", Capacity: 2}, Seats: []Seat{{Rank: 1}, {Rank: 2}}},
	}}

	rr, ok := a.Lookup("B2")
	assert.True(t, ok)
	assert.Len(t, rr.Seats, 2)

	_, ok = a.Lookup("C3")
	assert.False(t, ok)
	assert.Equal(t, 3, a.StudentCount())
	assert.Equal(t, 3, TotalCapacity([]Room{{Capacity: 1}, {Capacity: 2}}))
}

func TestStudent_FullName(t *testing.T) {
	assert.Equal(t, "Ayşe Yılmaz", Student{GivenName: "Ayşe", FamilyName: "Yılmaz"}.FullName())
	assert.Equal(t, "Yılmaz", Student{FamilyName: "Yılmaz"}.FullName())
}
