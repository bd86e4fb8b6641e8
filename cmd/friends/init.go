// Init command: create directories and seed the workbook.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forever-home/friends/internal/sheet"
	"github.com/forever-home/friends/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the workbook store",
	Long: `Create the configuration and data directories, then initialize the
workbook with the Children, Pets, and Owners sheets and their headers.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Workbook initialized successfully")
	return nil
}
