// Menu command: the interactive main loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forever-home/friends/internal/cli"
	"github.com/forever-home/friends/internal/records"
	"github.com/forever-home/friends/internal/sheet"
	"github.com/forever-home/friends/pkg/types"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Menu opens the workbook store and starts the numbered main menu.
Each menu action runs to completion before the next one is accepted.`,
	RunE: runMenu,
}

// runMenu opens the workbook, resolves the three sheets, and hands
// control to the menu loop. Any failure before the loop starts is
// fatal to the whole process, not to a single operation.
func runMenu(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}

	store := sheet.NewStore()
	if err := store.Open(cfg); err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer store.Close()

	console := cli.NewTerminalConsole(os.Stdin, cmd.OutOrStdout())
	registry, err := records.FromWorkbook(store, console)
	if err != nil {
		return fmt.Errorf("resolve sheets: %w", err)
	}

	return cli.NewMenu(registry, console).Run()
}
