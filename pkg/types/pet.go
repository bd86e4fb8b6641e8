package types

import "strconv"

// Pet age bounds in months, inclusive.
const (
	PetMinAgeMonths = 0
	PetMaxAgeMonths = 12
)

// Canonical species names stored in the Type column.
const (
	SpeciesPuppy = "puppy"
	SpeciesKitty = "kitty"
)

// SpeciesFromCode maps the one-letter operator code to the canonical
// species string. The second return is false for an unknown code.
func SpeciesFromCode(code string) (string, bool) {
	switch code {
	case "p":
		return SpeciesPuppy, true
	case "k":
		return SpeciesKitty, true
	default:
		return "", false
	}
}

// ValidSpecies reports whether s is a canonical species name.
func ValidSpecies(s string) bool {
	return s == SpeciesPuppy || s == SpeciesKitty
}

// Pet is one record in the Pets sheet.
type Pet struct {
	ID        int
	Nickname  string
	AgeMonths int
	Species   string
}

// Row encodes the pet as a Pets sheet row.
func (p Pet) Row() Row {
	return Row{strconv.Itoa(p.ID), p.Nickname, strconv.Itoa(p.AgeMonths), p.Species}
}

// PetFromRow decodes a Pets sheet row.
// Returns ErrMalformedRow when the row is too short or a numeric cell
// does not parse.
func PetFromRow(r Row) (Pet, error) {
	if len(r) < 4 {
		return Pet{}, ErrMalformedRow
	}
	id, err := strconv.Atoi(r[0])
	if err != nil {
		return Pet{}, ErrMalformedRow
	}
	months, err := strconv.Atoi(r[2])
	if err != nil {
		return Pet{}, ErrMalformedRow
	}
	return Pet{ID: id, Nickname: r[1], AgeMonths: months, Species: r[3]}, nil
}
