package types

import (
	"errors"
	"strconv"
)

// Child age bounds, inclusive.
const (
	ChildMinAge = 5
	ChildMaxAge = 18
)

// ErrMalformedRow is returned when a sheet row cannot be decoded into
// its entity type.
var ErrMalformedRow = errors.New("malformed sheet row")

// Child is one record in the Children sheet.
type Child struct {
	ID        int
	FirstName string
	LastName  string
	Age       int
}

// FullName returns the concatenated "First Last" string. This is the
// key the Owners sheet links by, so it must match the stored cells
// exactly.
func (c Child) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Row encodes the child as a Children sheet row.
func (c Child) Row() Row {
	return Row{strconv.Itoa(c.ID), c.FirstName, c.LastName, strconv.Itoa(c.Age)}
}

// ChildFromRow decodes a Children sheet row.
// Returns ErrMalformedRow when the row is too short or a numeric cell
// does not parse.
func ChildFromRow(r Row) (Child, error) {
	if len(r) < 4 {
		return Child{}, ErrMalformedRow
	}
	id, err := strconv.Atoi(r[0])
	if err != nil {
		return Child{}, ErrMalformedRow
	}
	age, err := strconv.Atoi(r[3])
	if err != nil {
		return Child{}, ErrMalformedRow
	}
	return Child{ID: id, FirstName: r[1], LastName: r[2], Age: age}, nil
}
