package types

// Standard sheet names for Workbook.Sheet.
const (
	ChildrenSheet = "Children"
	PetsSheet     = "Pets"
	OwnersSheet   = "Owners"
)

// StandardSheetNames lists all standard sheet names for enumeration.
var StandardSheetNames = []string{
	ChildrenSheet,
	PetsSheet,
	OwnersSheet,
}

// Header rows seeded at position 1 when a sheet is first created.
var (
	ChildrenHeader = Row{"ID", "First Name", "Last Name", "Age"}
	PetsHeader     = Row{"ID", "Nickname", "Age (months)", "Type"}
	OwnersHeader   = Row{"Child Name", "Pet ID"}
)

// SheetHeader returns the header row for a standard sheet name, or nil
// for an unknown name.
func SheetHeader(name string) Row {
	switch name {
	case ChildrenSheet:
		return ChildrenHeader
	case PetsSheet:
		return PetsHeader
	case OwnersSheet:
		return OwnersHeader
	default:
		return nil
	}
}
