// Package main provides the friends CLI, a terminal record keeper for
// children, pets, and the links between them.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
