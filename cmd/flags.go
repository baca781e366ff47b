/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
//
// Design: Flags are defined as package-level variables and bound to the
// root command. The JSON() helper simplifies output format detection
// across all commands, and the out writer can be swapped by tests to
// capture output.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var output string

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing cobra's duplicate
// output), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// If we can't print the error, checking the print error is futile.
	// Return nil to suppress cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
