package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildRowRoundTrip(t *testing.T) {
	child := Child{ID: 3, FirstName: "Ann", LastName: "Lee", Age: 10}

	row := child.Row()
	assert.Equal(t, Row{"3", "Ann", "Lee", "10"}, row)

	got, err := ChildFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, child, got)
}

func TestChildFullName(t *testing.T) {
	child := Child{FirstName: "Ann", LastName: "Lee"}
	assert.Equal(t, "Ann Lee", child.FullName())
}

func TestChildFromRowRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{"too short", Row{"1", "Ann"}},
		{"non-numeric id", Row{"x", "Ann", "Lee", "10"}},
		{"non-numeric age", Row{"1", "Ann", "Lee", "ten"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ChildFromRow(tt.row)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestRowCell(t *testing.T) {
	row := Row{"a", "b"}
	assert.Equal(t, "a", row.Cell(1))
	assert.Equal(t, "b", row.Cell(2))
	assert.Equal(t, "", row.Cell(3), "out-of-range cells read as empty")
	assert.Equal(t, "", row.Cell(0))
}
