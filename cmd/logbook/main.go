// Package main provides the logbook CLI: weekly progress tracking for a
// student cohort, persisted as versioned CSV blobs in a remote git
// repository.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
