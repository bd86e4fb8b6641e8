package types

// OwnerLink is one row in the Owners sheet: the association between a
// child and at most one pet.
//
// The row is keyed by the child's full name, not the child's ID. Two
// children with identical full names are indistinguishable to the link
// layer. PetID is the pet's ID as a string; empty means "known child,
// currently unlinked".
type OwnerLink struct {
	ChildName string
	PetID     string
}

// Linked reports whether the row currently references a pet.
func (l OwnerLink) Linked() bool { return l.PetID != "" }

// Row encodes the link as an Owners sheet row.
func (l OwnerLink) Row() Row {
	return Row{l.ChildName, l.PetID}
}

// OwnerLinkFromRow decodes an Owners sheet row. A missing second cell
// decodes as unlinked rather than an error, because a cleared pet cell
// is a normal state for the row.
func OwnerLinkFromRow(r Row) (OwnerLink, error) {
	if len(r) < 1 {
		return OwnerLink{}, ErrMalformedRow
	}
	return OwnerLink{ChildName: r[0], PetID: r.Cell(2)}, nil
}
