package records

import (
	"strconv"
	"strings"

	"github.com/forever-home/friends/pkg/types"
)

// AddOutcome reports the result of an add operation.
type AddOutcome struct {
	ID    int  // assigned ID; zero when nothing was written
	Added bool // true when exactly one row was appended
}

// AddChild collects a new child record interactively and appends it to
// the Children sheet. Names are trimmed and capitalized; an empty name
// cancels the operation with a warning. Exactly one row is appended,
// or none.
func (r *Registry) AddChild() (AddOutcome, error) {
	r.console.Printf("\n- Add New Child -\n")

	firstName, err := r.readName("Enter Child's First Name: ")
	if err != nil {
		return AddOutcome{}, err
	}
	if firstName == "" {
		r.console.Printf("Warning: First name cannot be empty.\n")
		return AddOutcome{}, nil
	}

	lastName, err := r.readName("Enter Child's Last Name: ")
	if err != nil {
		return AddOutcome{}, err
	}
	if lastName == "" {
		r.console.Printf("Warning: Last name cannot be empty.\n")
		return AddOutcome{}, nil
	}

	ageStr, err := r.promptInput(
		"Enter Child's Age (5-18 years): ",
		func(s string) bool { return inRange(s, types.ChildMinAge, types.ChildMaxAge) },
		"Warning: Invalid age. Please enter a number between 5 and 18.",
	)
	if err != nil {
		return AddOutcome{}, err
	}
	age, _ := strconv.Atoi(ageStr)

	id, err := NextID(r.children)
	if err != nil {
		r.console.Printf("Error: Could not determine next ID. Aborting.\n")
		return AddOutcome{}, err
	}

	child := types.Child{ID: id, FirstName: firstName, LastName: lastName, Age: age}
	if err := r.children.Append(child.Row()); err != nil {
		return AddOutcome{}, err
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Child '%s' added successfully!\n", child.FullName())
	r.console.Printf("   Assigned ID: %d\n", id)
	r.console.Printf(separator)
	return AddOutcome{ID: id, Added: true}, nil
}

// AddPet collects a new pet record interactively and appends it to the
// Pets sheet. The species is entered as a one-letter code and stored
// canonically.
func (r *Registry) AddPet() (AddOutcome, error) {
	r.console.Printf("\n- Add New Pet -\n")

	nickname, err := r.readName("Enter Pet's Nickname: ")
	if err != nil {
		return AddOutcome{}, err
	}
	if nickname == "" {
		r.console.Printf("Warning: Nickname cannot be empty.\n")
		return AddOutcome{}, nil
	}

	ageStr, err := r.promptInput(
		"Enter Pet's Age (0-12 months): ",
		func(s string) bool { return inRange(s, types.PetMinAgeMonths, types.PetMaxAgeMonths) },
		"Warning: Invalid age. Please enter a number between 0 and 12.",
	)
	if err != nil {
		return AddOutcome{}, err
	}
	ageMonths, _ := strconv.Atoi(ageStr)

	code, err := r.promptInput(
		"Enter Pet Type (p for puppy / k for kitty): ",
		func(s string) bool {
			_, ok := types.SpeciesFromCode(strings.ToLower(s))
			return ok
		},
		"Warning: Invalid type. Please enter 'p' or 'k'.",
	)
	if err != nil {
		return AddOutcome{}, err
	}
	species, _ := types.SpeciesFromCode(strings.ToLower(code))

	id, err := NextID(r.pets)
	if err != nil {
		r.console.Printf("Error: Could not determine next ID. Aborting.\n")
		return AddOutcome{}, err
	}

	pet := types.Pet{ID: id, Nickname: nickname, AgeMonths: ageMonths, Species: species}
	if err := r.pets.Append(pet.Row()); err != nil {
		return AddOutcome{}, err
	}

	r.console.Printf(separator)
	r.console.Printf("Success: Pet '%s' (%s) added successfully!\n", nickname, species)
	r.console.Printf("   Assigned ID: %d\n", id)
	r.console.Printf(separator)
	return AddOutcome{ID: id, Added: true}, nil
}

// readName reads one line, trims it, and capitalizes it. Unlike the
// validated prompts, names are asked for once: an empty answer is
// returned as "" and the caller cancels.
func (r *Registry) readName(prompt string) (string, error) {
	line, err := r.console.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return capitalize(strings.TrimSpace(line)), nil
}
