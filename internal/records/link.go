package records

import (
	"strconv"

	"github.com/forever-home/friends/pkg/types"
)

// LinkOutcome reports which sub-steps of the link protocol committed.
// The protocol is not transactional: a storage failure after
// PreviousCleared but before Updated/Appended leaves the pet linked to
// nobody. That partial state is reported, never rolled back.
type LinkOutcome struct {
	Cancelled       bool // operator declined a confirmation
	PreviousCleared bool // another child's pet cell was cleared
	Updated         bool // existing Owners row updated with the pet ID
	Appended        bool // new Owners row appended
}

// Linked reports whether the link write itself committed.
func (o LinkOutcome) Linked() bool { return o.Updated || o.Appended }

// LinkChildPet links a child to a pet in the Owners sheet, enforcing
// at most one pet per child and at most one owner per pet. Child and
// pet are resolved interactively with retry-until-found semantics; a
// storage failure at any resolution step aborts immediately.
func (r *Registry) LinkChildPet() (LinkOutcome, error) {
	r.console.Printf("\n- Link Child and Pet -\n")

	// Resolve the child, re-prompting until an existing ID is given.
	var child types.Child
	for {
		idStr, err := r.promptInput(
			"Enter ID of the Child: ",
			isDigits,
			"Warning: Invalid ID. Please enter the child's ID number.",
		)
		if err != nil {
			return LinkOutcome{}, err
		}
		ref, found, err := findByID(r.children, idStr)
		if err != nil {
			return LinkOutcome{}, err
		}
		if !found {
			r.console.Printf("Warning: Child with ID %s not found.\n", idStr)
			continue
		}
		child, err = types.ChildFromRow(ref.Row)
		if err != nil {
			return LinkOutcome{}, err
		}
		r.console.Printf("   Found Child: %s (Age: %d)\n", child.FullName(), child.Age)
		break
	}
	childName := child.FullName()

	// Resolve the pet the same way.
	var pet types.Pet
	for {
		idStr, err := r.promptInput(
			"Enter ID of the Pet: ",
			isDigits,
			"Warning: Invalid ID. Please enter the pet's ID number.",
		)
		if err != nil {
			return LinkOutcome{}, err
		}
		ref, found, err := findByID(r.pets, idStr)
		if err != nil {
			return LinkOutcome{}, err
		}
		if !found {
			r.console.Printf("Warning: Pet with ID %s not found.\n", idStr)
			continue
		}
		pet, err = types.PetFromRow(ref.Row)
		if err != nil {
			return LinkOutcome{}, err
		}
		r.console.Printf("   Found Pet: %s (%s, Age: %d months)\n", pet.Nickname, pet.Species, pet.AgeMonths)
		break
	}
	petIDStr := strconv.Itoa(pet.ID)

	// Advisory pre-checks. A storage failure here only warns: the
	// authoritative re-resolution happens again after confirmation.
	existing, existingFound, err := findByChildName(r.owners, childName)
	if err != nil {
		r.console.Printf("Warning: Error checking existing links: %v\n", err)
	} else {
		if existingFound && existing.Row.Cell(2) != "" {
			r.console.Printf(separator)
			r.console.Printf("Warning: Child '%s' is already linked to Pet ID #%s.\n",
				childName, existing.Row.Cell(2))
			ok, err := r.confirm("Do you want to replace the existing link?")
			if err != nil {
				return LinkOutcome{}, err
			}
			if !ok {
				r.console.Printf("   Operation cancelled.\n")
				return LinkOutcome{Cancelled: true}, nil
			}
		}
		claimed, claimedFound, err := findByPetID(r.owners, petIDStr)
		if err != nil {
			r.console.Printf("Warning: Error checking existing links: %v\n", err)
		} else if claimedFound {
			r.console.Printf("Warning: Pet '%s' (ID: %s) is already linked to '%s'.\n",
				pet.Nickname, petIDStr, claimed.Row.Cell(1))
			r.console.Printf("   Assigning this pet will remove its link from the previous owner.\n")
		}
	}

	r.console.Printf(separator)
	ok, err := r.confirm("Assign Pet '" + pet.Nickname + "' (ID #" + petIDStr +
		") to Child '" + childName + "' (ID #" + strconv.Itoa(child.ID) + ")?")
	if err != nil {
		return LinkOutcome{}, err
	}
	if !ok {
		r.console.Printf("   Operation cancelled.\n")
		return LinkOutcome{Cancelled: true}, nil
	}

	var outcome LinkOutcome

	// Re-resolve the child's Owners row: the pre-check positions may be
	// stale by now.
	ownerRef, ownerFound, err := findByChildName(r.owners, childName)
	if err != nil {
		return outcome, err
	}

	// Clear the pet from its previous owner's row, if that is a
	// different row than the one being written.
	prevRef, prevFound, err := findByPetID(r.owners, petIDStr)
	if err != nil {
		return outcome, err
	}
	if prevFound && (!ownerFound || prevRef.Pos != ownerRef.Pos) {
		r.console.Printf("   Clearing previous owner (%s) link to Pet ID #%s...\n",
			prevRef.Row.Cell(1), petIDStr)
		if err := r.owners.UpdateCell(prevRef.Pos, 2, ""); err != nil {
			return outcome, err
		}
		outcome.PreviousCleared = true
	}

	if ownerFound {
		if err := r.owners.UpdateCell(ownerRef.Pos, 2, petIDStr); err != nil {
			return outcome, err
		}
		outcome.Updated = true
		r.console.Printf("Success: Link updated in 'Owners' sheet (Row %d).\n", ownerRef.Pos)
	} else {
		link := types.OwnerLink{ChildName: childName, PetID: petIDStr}
		if err := r.owners.Append(link.Row()); err != nil {
			return outcome, err
		}
		outcome.Appended = true
		r.console.Printf("Success: Link added to 'Owners' sheet.\n")
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Successfully linked Child '%s' and Pet '%s'.\n", childName, pet.Nickname)
	r.console.Printf(separator)
	return outcome, nil
}
