package records

import (
	"github.com/forever-home/friends/pkg/types"
)

// SearchOutcome reports what a search resolved.
type SearchOutcome struct {
	Found  bool // the primary entity exists
	Linked bool // an Owners row references a counterpart
	Stale  bool // the referenced counterpart no longer exists
}

// SearchByChild resolves a child by ID and reports the pet linked to
// them, if any. A link row pointing at a deleted pet is reported as a
// data-inconsistency warning, not an error: the search itself
// succeeded structurally.
func (r *Registry) SearchByChild() (SearchOutcome, error) {
	r.console.Printf("\n- Search Pet by Child -\n")

	idStr, err := r.promptInput(
		"Enter ID of the Child: ",
		isDigits,
		"Warning: Invalid ID. Please enter the child's ID number.",
	)
	if err != nil {
		return SearchOutcome{}, err
	}

	childRef, found, err := findByID(r.children, idStr)
	if err != nil {
		return SearchOutcome{}, err
	}
	if !found {
		r.console.Printf("Warning: Child with ID %s not found in 'Children' sheet.\n", idStr)
		return SearchOutcome{}, nil
	}
	child, err := types.ChildFromRow(childRef.Row)
	if err != nil {
		return SearchOutcome{}, err
	}
	childName := child.FullName()
	r.console.Printf("   Searching for pet linked to: %s (Age: %d)\n", childName, child.Age)

	ownerRef, ownerFound, err := findByChildName(r.owners, childName)
	if err != nil {
		return SearchOutcome{Found: true}, err
	}
	if !ownerFound || ownerRef.Row.Cell(2) == "" {
		r.console.Printf(separator)
		r.console.Printf("Info: Child '%s' (ID #%s) is not currently linked to any pet in the 'Owners' sheet.\n",
			childName, idStr)
		r.console.Printf(separator)
		return SearchOutcome{Found: true}, nil
	}

	petIDStr := ownerRef.Row.Cell(2)
	petRef, petFound, err := findByID(r.pets, petIDStr)
	if err != nil {
		return SearchOutcome{Found: true, Linked: true}, err
	}
	if !petFound {
		r.console.Printf(separator)
		r.console.Printf("Warning: Found link for %s to Pet ID #%s, but this pet doesn't exist in the 'Pets' sheet.\n",
			childName, petIDStr)
		r.console.Printf("   Please check data consistency.\n")
		r.console.Printf(separator)
		return SearchOutcome{Found: true, Linked: true, Stale: true}, nil
	}
	pet, err := types.PetFromRow(petRef.Row)
	if err != nil {
		return SearchOutcome{Found: true, Linked: true}, err
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Found Link:\n")
	r.console.Printf("   Child: %s (ID #%s)\n", childName, idStr)
	r.console.Printf("   Pet:   %s (ID #%s), Type: %s, Age: %d months\n",
		pet.Nickname, petIDStr, pet.Species, pet.AgeMonths)
	r.console.Printf(separator)
	return SearchOutcome{Found: true, Linked: true}, nil
}

// SearchByPet resolves a pet by ID and reports the child linked to it,
// if any. The Owners sheet stores the child's name, not their ID, so
// the counterpart is resolved by scanning the Children sheet and
// matching the reconstructed full name.
func (r *Registry) SearchByPet() (SearchOutcome, error) {
	r.console.Printf("\n- Search Child by Pet -\n")

	idStr, err := r.promptInput(
		"Enter ID of the Pet: ",
		isDigits,
		"Warning: Invalid ID. Please enter the pet's ID number.",
	)
	if err != nil {
		return SearchOutcome{}, err
	}

	petRef, found, err := findByID(r.pets, idStr)
	if err != nil {
		return SearchOutcome{}, err
	}
	if !found {
		r.console.Printf("Warning: Pet with ID %s not found in 'Pets' sheet.\n", idStr)
		return SearchOutcome{}, nil
	}
	pet, err := types.PetFromRow(petRef.Row)
	if err != nil {
		return SearchOutcome{}, err
	}
	r.console.Printf("   Searching for child linked to: %s (%s, Age: %d months)\n",
		pet.Nickname, pet.Species, pet.AgeMonths)

	ownerRef, ownerFound, err := findByPetID(r.owners, idStr)
	if err != nil {
		return SearchOutcome{Found: true}, err
	}
	if !ownerFound {
		r.console.Printf(separator)
		r.console.Printf("Info: Pet '%s' (ID #%s) is not currently linked to any child in the 'Owners' sheet.\n",
			pet.Nickname, idStr)
		r.console.Printf(separator)
		return SearchOutcome{Found: true}, nil
	}
	childName := ownerRef.Row.Cell(1)

	children, err := r.children.ScanAll()
	if err != nil {
		return SearchOutcome{Found: true, Linked: true}, err
	}
	for _, row := range children {
		child, err := types.ChildFromRow(row)
		if err != nil {
			continue
		}
		if child.FullName() != childName {
			continue
		}
		r.console.Printf(separator)
		r.console.Printf("Success: Found Link:\n")
		r.console.Printf("   Pet:   %s (ID #%s)\n", pet.Nickname, idStr)
		r.console.Printf("   Child: %s (ID #%d), Age: %d\n", childName, child.ID, child.Age)
		r.console.Printf(separator)
		return SearchOutcome{Found: true, Linked: true}, nil
	}

	r.console.Printf(separator)
	r.console.Printf("Warning: Found link for Pet ID #%s to '%s', but this child doesn't exist in the 'Children' sheet.\n",
		idStr, childName)
	r.console.Printf("   Please check data consistency.\n")
	r.console.Printf(separator)
	return SearchOutcome{Found: true, Linked: true, Stale: true}, nil
}
