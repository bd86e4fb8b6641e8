package records

import (
	"fmt"

	"github.com/forever-home/friends/pkg/types"
)

// separator is the visual break line printed around operation results.
const separator = "----------\n"

// Registry holds the three sheet handles and the operator console.
// It is constructed once at bootstrap and passed into every record
// operation; there is no other shared state.
type Registry struct {
	children types.Table
	pets     types.Table
	owners   types.Table
	console  Console
}

// New creates a Registry over explicit sheet handles. Tests use this
// with fake tables.
func New(children, pets, owners types.Table, console Console) *Registry {
	return &Registry{
		children: children,
		pets:     pets,
		owners:   owners,
		console:  console,
	}
}

// FromWorkbook resolves the three standard sheets from an open
// workbook. A resolution failure here is fatal to bootstrap, not to a
// single operation.
func FromWorkbook(wb types.Workbook, console Console) (*Registry, error) {
	children, err := wb.Sheet(types.ChildrenSheet)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet %q: %w", types.ChildrenSheet, err)
	}
	pets, err := wb.Sheet(types.PetsSheet)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet %q: %w", types.PetsSheet, err)
	}
	owners, err := wb.Sheet(types.OwnersSheet)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet %q: %w", types.OwnersSheet, err)
	}
	return New(children, pets, owners, console), nil
}
