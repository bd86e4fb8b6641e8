package records

import "github.com/forever-home/friends/pkg/types"

// RowRef is a located row: its content plus its 1-based sheet position.
// The position is invalidated by any DeleteRow at or before it; callers
// re-locate before writing if a delete happened in between.
type RowRef struct {
	Row types.Row
	Pos int
}

// Locators return three distinguishable outcomes:
//
//	(ref, true, nil)    found
//	(_,   false, nil)   not found — a normal branch
//	(_,   false, err)   storage failure — abort the enclosing operation
//
// All locators scan the whole sheet and return the first match in
// sheet order (insertion order).

// findByID returns the first row whose ID column (first cell) equals
// id verbatim. A non-digit id is an immediate not-found, never an
// error: it cannot match any assigned ID.
func findByID(t types.Table, id string) (RowRef, bool, error) {
	if !isDigits(id) {
		return RowRef{}, false, nil
	}
	return scanFirst(t, func(row types.Row) bool {
		return row.Cell(1) == id
	})
}

// findByChildName returns the first Owners row whose name column
// equals fullName verbatim (exact, case-sensitive, post-capitalization).
func findByChildName(owners types.Table, fullName string) (RowRef, bool, error) {
	return scanFirst(owners, func(row types.Row) bool {
		return len(row) > 0 && row.Cell(1) == fullName
	})
}

// findByPetID returns the first Owners row whose pet column (second
// cell) equals petID verbatim. A non-digit petID is an immediate
// not-found.
func findByPetID(owners types.Table, petID string) (RowRef, bool, error) {
	if !isDigits(petID) {
		return RowRef{}, false, nil
	}
	return scanFirst(owners, func(row types.Row) bool {
		return len(row) > 1 && row.Cell(2) == petID
	})
}

// scanFirst scans the whole sheet and returns the first row matching
// the predicate, with its 1-based position.
func scanFirst(t types.Table, match func(types.Row) bool) (RowRef, bool, error) {
	rows, err := t.ScanAll()
	if err != nil {
		return RowRef{}, false, err
	}
	for i, row := range rows {
		if match(row) {
			return RowRef{Row: row, Pos: i + 1}, true, nil
		}
	}
	return RowRef{}, false, nil
}
