package records

import "github.com/forever-home/friends/pkg/types"

// DeleteOutcome reports which sub-steps of a cascading delete
// committed. When LinkWarning is set the primary delete committed but
// the Owners sheet could not be checked; it is not rolled back.
type DeleteOutcome struct {
	Cancelled   bool // operator declined the confirmation
	Deleted     bool // the primary row was removed
	LinkRemoved bool // the Owners row was deleted (child delete)
	LinkCleared bool // the Owners pet cell was cleared (pet delete)
	LinkWarning bool // the post-delete Owners lookup failed
}

// DeleteChild removes a child from the Children sheet and deletes the
// child's Owners row. The Owners row is removed entirely: the link is
// keyed by the child and has no meaning without them.
func (r *Registry) DeleteChild() (DeleteOutcome, error) {
	r.console.Printf("\n- Delete Child -\n")

	idStr, err := r.promptInput(
		"Enter ID of the Child to delete: ",
		isDigits,
		"Warning: Invalid ID. Please enter the child's ID number.",
	)
	if err != nil {
		return DeleteOutcome{}, err
	}

	ref, found, err := findByID(r.children, idStr)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !found {
		r.console.Printf("Warning: Child with ID %s not found.\n", idStr)
		return DeleteOutcome{}, nil
	}
	child, err := types.ChildFromRow(ref.Row)
	if err != nil {
		return DeleteOutcome{}, err
	}
	childName := child.FullName()

	r.console.Printf(separator)
	r.console.Printf("   Child Found: %s (Age: %d) - ID #%s\n", childName, child.Age, idStr)
	r.console.Printf("   Warning: Deleting this child will also remove their entry from the 'Owners' sheet.\n")
	r.console.Printf(separator)

	ok, err := r.confirm("Are you sure you want to delete child '" + childName + "' (ID #" + idStr + ")?")
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !ok {
		r.console.Printf("   Deletion cancelled.\n")
		return DeleteOutcome{Cancelled: true}, nil
	}

	if err := r.children.DeleteRow(ref.Pos); err != nil {
		return DeleteOutcome{}, err
	}
	outcome := DeleteOutcome{Deleted: true}
	r.console.Printf("   Deleted row %d from 'Children' sheet.\n", ref.Pos)

	// The primary delete has committed. A failure looking up the Owners
	// row is reported as a warning, not an error: nothing is rolled back.
	ownerRef, ownerFound, err := findByChildName(r.owners, childName)
	if err != nil {
		r.console.Printf("Warning: Could not check 'Owners' sheet due to an error, but child deleted from 'Children'.\n")
		outcome.LinkWarning = true
		return outcome, nil
	}
	if ownerFound {
		if err := r.owners.DeleteRow(ownerRef.Pos); err != nil {
			return outcome, err
		}
		outcome.LinkRemoved = true
		r.console.Printf("   Deleted row %d from 'Owners' sheet.\n", ownerRef.Pos)
	} else {
		r.console.Printf("   Info: No corresponding entry found in 'Owners' sheet.\n")
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Child '%s' successfully deleted.\n", childName)
	r.console.Printf(separator)
	return outcome, nil
}

// DeletePet removes a pet from the Pets sheet and clears the pet cell
// in the Owners sheet. The Owners row survives: it is keyed by the
// child, who still exists and may be linked to a new pet later.
func (r *Registry) DeletePet() (DeleteOutcome, error) {
	r.console.Printf("\n- Delete Pet -\n")

	idStr, err := r.promptInput(
		"Enter ID of the Pet to delete: ",
		isDigits,
		"Warning: Invalid ID. Please enter the pet's ID number.",
	)
	if err != nil {
		return DeleteOutcome{}, err
	}

	ref, found, err := findByID(r.pets, idStr)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !found {
		r.console.Printf("Warning: Pet with ID %s not found.\n", idStr)
		return DeleteOutcome{}, nil
	}
	pet, err := types.PetFromRow(ref.Row)
	if err != nil {
		return DeleteOutcome{}, err
	}

	r.console.Printf(separator)
	r.console.Printf("   Pet Found: %s (%s, Age: %d months) - ID #%s\n",
		pet.Nickname, pet.Species, pet.AgeMonths, idStr)
	r.console.Printf("   Warning: Deleting this pet will also clear its assignment in the 'Owners' sheet.\n")
	r.console.Printf(separator)

	ok, err := r.confirm("Are you sure you want to delete Pet '" + pet.Nickname + "' (ID #" + idStr + ")?")
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !ok {
		r.console.Printf("   Deletion cancelled.\n")
		return DeleteOutcome{Cancelled: true}, nil
	}

	if err := r.pets.DeleteRow(ref.Pos); err != nil {
		return DeleteOutcome{}, err
	}
	outcome := DeleteOutcome{Deleted: true}
	r.console.Printf("   Deleted row %d from 'Pets' sheet.\n", ref.Pos)

	ownerRef, ownerFound, err := findByPetID(r.owners, idStr)
	if err != nil {
		r.console.Printf("Warning: Could not check 'Owners' sheet due to an error, but pet deleted from 'Pets'.\n")
		outcome.LinkWarning = true
		return outcome, nil
	}
	if ownerFound {
		if err := r.owners.UpdateCell(ownerRef.Pos, 2, ""); err != nil {
			return outcome, err
		}
		outcome.LinkCleared = true
		r.console.Printf("   Cleared Pet ID link in 'Owners' sheet (Row %d).\n", ownerRef.Pos)
	} else {
		r.console.Printf("   Info: No corresponding link found in 'Owners' sheet.\n")
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Pet '%s' successfully deleted.\n", pet.Nickname)
	r.console.Printf(separator)
	return outcome, nil
}
