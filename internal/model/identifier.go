package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IdentifierKind tells how an Identifier was parsed from its source cell.
type IdentifierKind int

const (
	IdentifierText IdentifierKind = iota
	IdentifierInt
	IdentifierFloat
)

// Identifier is a student number as it appeared in the uploaded table.
// Numeric cells order numerically, everything else orders lexicographically.
type Identifier struct {
	Kind  IdentifierKind
	Int   int64
	Float float64
	Text  string
}

// ParseIdentifier parses a raw cell value.
// Integers win over floats. NaN, Inf and anything else is kept as text.
func ParseIdentifier(raw string) Identifier {
	s := strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Identifier{Kind: IdentifierInt, Int: i, Text: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Identifier{Kind: IdentifierFloat, Float: f, Text: s}
	}
	return Identifier{Kind: IdentifierText, Text: s}
}

// IntID builds a numeric identifier.
func IntID(i int64) Identifier {
	return Identifier{Kind: IdentifierInt, Int: i, Text: strconv.FormatInt(i, 10)}
}

// TextID builds a text identifier without attempting numeric parsing.
func TextID(s string) Identifier {
	return Identifier{Kind: IdentifierText, Text: s}
}

// IsNumeric reports whether the identifier compares numerically.
func (id Identifier) IsNumeric() bool {
	return id.Kind == IdentifierInt || id.Kind == IdentifierFloat
}

func (id Identifier) number() float64 {
	if id.Kind == IdentifierInt {
		return float64(id.Int)
	}
	return id.Float
}

// Compare returns -1, 0 or +1. Numbers sort before text.
func (id Identifier) Compare(other Identifier) int {
	switch {
	case id.IsNumeric() && other.IsNumeric():
		if id.Kind == IdentifierInt && other.Kind == IdentifierInt {
			switch {
			case id.Int < other.Int:
				return -1
			case id.Int > other.Int:
				return 1
			}
			return 0
		}
		a, b := id.number(), other.number()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	case id.IsNumeric():
		return -1
	case other.IsNumeric():
		return 1
	}
	return strings.Compare(id.Text, other.Text)
}

// String returns the identifier as it should be printed.
func (id Identifier) String() string {
	switch id.Kind {
	case IdentifierInt:
		return strconv.FormatInt(id.Int, 10)
	case IdentifierFloat:
		if id.Text != "" {
			return id.Text
		}
		return strconv.FormatFloat(id.Float, 'f', -1, 64)
	}
	return id.Text
}

// MarshalJSON writes numbers as JSON numbers and text as JSON strings.
func (id Identifier) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case IdentifierInt:
		return json.Marshal(id.Int)
	case IdentifierFloat:
		return json.Marshal(id.Float)
	}
	return json.Marshal(id.Text)
}
