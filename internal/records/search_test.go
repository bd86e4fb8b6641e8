package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forever-home/friends/pkg/types"
)

func TestSearchByChildLinked(t *testing.T) {
	console := newScriptConsole("1")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByChild()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true, Linked: true}, out)
	assert.Contains(t, console.output(), "Child: Ann Lee (ID #1)")
	assert.Contains(t, console.output(), "Pet:   Rex (ID #1), Type: puppy, Age: 3 months")
}

func TestSearchByChildNotLinked(t *testing.T) {
	// Bob has no Owners row at all.
	console := newScriptConsole("2")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByChild()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true}, out)
	assert.Contains(t, console.output(), "not currently linked to any pet")
}

func TestSearchByChildEmptyCellIsNotLinked(t *testing.T) {
	console := newScriptConsole("1")
	r, _, _, owners := linkedFixture(console)
	owners.rows[1] = types.Row{"Ann Lee", ""}

	out, err := r.SearchByChild()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true}, out)
	assert.Contains(t, console.output(), "not currently linked to any pet")
}

func TestSearchByChildStaleLink(t *testing.T) {
	// The Owners row points at a pet that no longer exists: a data
	// inconsistency warning, not an error.
	console := newScriptConsole("1")
	r, _, pets, _ := linkedFixture(console)
	require.NoError(t, pets.DeleteRow(2))

	out, err := r.SearchByChild()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true, Linked: true, Stale: true}, out)
	assert.Contains(t, console.output(), "doesn't exist in the 'Pets' sheet")
	assert.Contains(t, console.output(), "check data consistency")
}

func TestSearchByChildUnknownID(t *testing.T) {
	console := newScriptConsole("42")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByChild()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{}, out)
	assert.Contains(t, console.output(), "Child with ID 42 not found")
}

func TestSearchByChildBackendFailure(t *testing.T) {
	console := newScriptConsole("1")
	r, _, _, owners := linkedFixture(console)
	owners.failScan = errors.New("quota exceeded")

	out, err := r.SearchByChild()
	require.Error(t, err)
	assert.True(t, types.IsBackend(err))
	assert.True(t, out.Found)
	assert.False(t, out.Linked)
}

func TestSearchByPetLinked(t *testing.T) {
	console := newScriptConsole("1")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByPet()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true, Linked: true}, out)
	assert.Contains(t, console.output(), "Pet:   Rex (ID #1)")
	assert.Contains(t, console.output(), "Child: Ann Lee (ID #1), Age: 10")
}

func TestSearchByPetNotLinked(t *testing.T) {
	console := newScriptConsole("2")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByPet()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true}, out)
	assert.Contains(t, console.output(), "not currently linked to any child")
}

func TestSearchByPetStaleLink(t *testing.T) {
	// The Owners row names a child who was deleted: the pet-to-child
	// direction resolves by full name, so the match comes up empty.
	console := newScriptConsole("1")
	r, children, _, _ := linkedFixture(console)
	require.NoError(t, children.DeleteRow(2))

	out, err := r.SearchByPet()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{Found: true, Linked: true, Stale: true}, out)
	assert.Contains(t, console.output(), "doesn't exist in the 'Children' sheet")
}

func TestSearchByPetUnknownID(t *testing.T) {
	console := newScriptConsole("42")
	r, _, _, _ := linkedFixture(console)

	out, err := r.SearchByPet()
	require.NoError(t, err)
	assert.Equal(t, SearchOutcome{}, out)
	assert.Contains(t, console.output(), "Pet with ID 42 not found")
}
