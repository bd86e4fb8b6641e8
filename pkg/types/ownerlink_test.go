package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerLinkFromRow(t *testing.T) {
	link, err := OwnerLinkFromRow(Row{"Ann Lee", "1"})
	require.NoError(t, err)
	assert.Equal(t, OwnerLink{ChildName: "Ann Lee", PetID: "1"}, link)
	assert.True(t, link.Linked())
}

func TestOwnerLinkUnlinkedStates(t *testing.T) {
	// Both a missing and an empty pet cell decode as unlinked; a
	// cleared cell is a normal state for the row.
	short, err := OwnerLinkFromRow(Row{"Ann Lee"})
	require.NoError(t, err)
	assert.False(t, short.Linked())

	empty, err := OwnerLinkFromRow(Row{"Ann Lee", ""})
	require.NoError(t, err)
	assert.False(t, empty.Linked())
}

func TestOwnerLinkFromRowRejectsEmpty(t *testing.T) {
	_, err := OwnerLinkFromRow(Row{})
	assert.ErrorIs(t, err, ErrMalformedRow)
}
