// Version command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/forever-home/friends"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the friends version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "friends v%s\nmodule: %s\n", version, modulePath)
		return nil
	},
}
