// guide.go implements the "pathcheck guide" command for documentation access.
//
// Design: guides are embedded in the binary via the guide package, so
// documentation is always available without external files. Terminal
// output gets glamour rendering for readability; pipe/redirect gets raw
// markdown for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/pathcheck/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the pathcheck usage guide",
	Long: `Outputs the pathcheck guide for LLMs and humans.

  pathcheck guide             # main guide
  pathcheck guide validators  # every check in detail
  pathcheck guide rules       # rule profile format`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		content, err := guide.Get(name)
		if err != nil {
			available, listErr := guide.List()
			if listErr != nil {
				return listErr
			}
			return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			rendered, err := glamour.Render(content, "dark")
			if err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}

		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
