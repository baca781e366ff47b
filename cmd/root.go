/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: every run is audit-logged through internal/log; the logger is
// best-effort, so a missing or unwritable log database warns on stderr
// and the command proceeds. A check that fails validation exits
// non-zero, which is what makes pathcheck usable as a guard in scripts.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathcheck/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "pathcheck",
	Short: "Validate filesystem paths before you use them",
	Long: `Checks filesystem paths against existence, permission and pattern rules.

Run ad-hoc checks with flags, or keep recurring combinations as named
rule profiles in ~/.pathcheck/config.yaml or .pathcheck/config.yaml.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
