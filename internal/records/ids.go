package records

import (
	"strconv"

	"github.com/forever-home/friends/pkg/types"
)

// NextID computes the next unused integer ID for a sheet: the maximum
// parseable first-column value among data rows, plus one, or 1 when
// there are no data rows. Rows whose ID cell is not a digit string are
// skipped. A scan failure is returned as-is; callers must abort the
// enclosing operation rather than default to 1, or IDs would collide.
func NextID(t types.Table) (int, error) {
	rows, err := t.ScanAll()
	if err != nil {
		return 0, err
	}
	if len(rows) <= 1 {
		return 1, nil
	}

	maxID := 0
	for _, row := range rows[1:] {
		cell := row.Cell(1)
		if !isDigits(cell) {
			continue
		}
		id, err := strconv.Atoi(cell)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}
