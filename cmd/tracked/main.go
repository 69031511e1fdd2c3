package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracked",
		Short: "Change-aware effects for dependency-array hook runtimes",
		Long: `tracked wraps a hook runtime's effect primitive with change metadata:
which named dependencies changed since the last run, their previous
values, a change count, and whether the run is the first since mount.

The CLI ships a demo component and a live inspector for exploring
change summaries as they happen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
