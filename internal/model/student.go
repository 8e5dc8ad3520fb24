package model

// Student is one row of the uploaded table.
// Columns past the family name are carried in Extra and ignored by assignment.
type Student struct {
	ID         Identifier `json:"id"`
	GivenName  string     `json:"given_name"`
	FamilyName string     `json:"family_name"`
	Extra      []string   `json:"extra,omitempty"`
}

// FullName joins given and family name the way rosters print it.
func (s Student) FullName() string {
	switch {
	case s.GivenName == "":
		return s.FamilyName
	case s.FamilyName == "":
		return s.GivenName
	}
	return s.GivenName + " " + s.FamilyName
}
