package cli

import (
	"io"
	"strings"

	"github.com/forever-home/friends/internal/records"
)

// Menu drives the interactive main loop: print the numbered menu, read
// a choice, run one record operation to completion, return to the
// menu. One operator, one action at a time.
type Menu struct {
	registry *records.Registry
	console  records.Console
}

// NewMenu creates a Menu over the given registry and console.
func NewMenu(registry *records.Registry, console records.Console) *Menu {
	return &Menu{registry: registry, console: console}
}

// Run executes the menu loop until the operator chooses Exit or the
// input stream ends. Record-operation errors are reported and the loop
// continues; only an input-stream failure ends the loop early.
func (m *Menu) Run() error {
	m.console.Printf("Welcome to Forever Home Friends!\n")

	for {
		m.console.Printf("\n- Main Menu -\n")
		m.console.Printf("1. Add a Child\n")
		m.console.Printf("2. Add a Pet\n")
		m.console.Printf("3. Link Child and Pet\n")
		m.console.Printf("4. Search Pet by Child ID\n")
		m.console.Printf("5. Search Child by Pet ID\n")
		m.console.Printf("6. Delete a Child by ID\n")
		m.console.Printf("7. Delete a Pet by ID\n")
		m.console.Printf("8. Exit Application\n")
		m.console.Printf("%s\n", strings.Repeat("-", 30))

		choice, err := m.console.ReadLine("Please enter your choice (1-8): ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var opErr error
		switch strings.TrimSpace(choice) {
		case "1":
			_, opErr = m.registry.AddChild()
		case "2":
			_, opErr = m.registry.AddPet()
		case "3":
			_, opErr = m.registry.LinkChildPet()
		case "4":
			_, opErr = m.registry.SearchByChild()
		case "5":
			_, opErr = m.registry.SearchByPet()
		case "6":
			_, opErr = m.registry.DeleteChild()
		case "7":
			_, opErr = m.registry.DeletePet()
		case "8":
			m.console.Printf("\nThank you for using Forever Home Friends!\n")
			return nil
		default:
			m.console.Printf("Warning: Invalid choice. Please enter a number between 1 and 8.\n")
		}

		if opErr != nil {
			if opErr == io.EOF {
				return nil
			}
			m.console.Printf("Error: %v\n", opErr)
		}

		if _, err := m.console.ReadLine("\nPress Enter to return to the main menu..."); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
