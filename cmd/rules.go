// rules.go implements the "pathcheck rules" command family.
//
// Design: rules are read-only from the CLI. The config file is the
// source of truth and is meant to be edited (and committed) by hand;
// a write interface would just be a worse text editor.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/pathcheck/internal/config"
	"github.com/jpl-au/pathcheck/internal/log"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List configured rule profiles",
	Long: `Lists the rule profiles from the active config file.

Local config (.pathcheck/config.yaml) takes precedence over global
(~/.pathcheck/config.yaml). See 'pathcheck guide rules' for the format.`,
	RunE: runRules,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show one rule profile in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesShow,
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	log.Event("cli:rules", "rules").Write(err)
	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(map[string]any{
			"config": cfg.Path(),
			"rules":  cfg.Rules,
		})
	}

	if len(cfg.Rules) == 0 {
		fmt.Fprintln(out, "no rules configured")
		return nil
	}

	cmd.SilenceUsage = true
	for _, name := range cfg.RuleNames() {
		rule := cfg.Rules[name]
		fmt.Fprintf(out, "%s\t%s\n", name, describeRule(rule))
	}
	return nil
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err == nil {
		_, err = cfg.Rule(name)
	}
	log.Event("cli:rules", "show").Rule(name).Write(err)
	if err != nil {
		cmd.SilenceUsage = true
		return PrintJSONError(err)
	}

	rule := cfg.Rules[name]
	if JSON() {
		return PrintJSON(map[string]any{"name": name, "rule": rule})
	}

	data, err := yaml.Marshal(map[string]config.Rule{name: rule})
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

// describeRule renders a rule as the flag list that would reproduce it.
func describeRule(r config.Rule) string {
	var parts []string
	add := func(set bool, flag string) {
		if set {
			parts = append(parts, flag)
		}
	}
	add(r.Exists, "--exists")
	add(r.NotExists, "--not-exists")
	add(r.ParentExists, "--parent-exists")
	add(r.Creatable, "--creatable")
	add(r.WritableOrCreatable, "--writable-or-creatable")
	add(r.Readable, "--readable")
	add(r.Writable, "--writable")
	add(r.Executable, "--executable")
	if r.NameRe != "" {
		parts = append(parts, fmt.Sprintf("--name-re %q", r.NameRe))
	}
	if r.NameGlob != "" {
		parts = append(parts, fmt.Sprintf("--name-glob %q", r.NameGlob))
	}
	if r.PathRe != "" {
		parts = append(parts, fmt.Sprintf("--path-re %q", r.PathRe))
	}
	if r.PathGlob != "" {
		parts = append(parts, fmt.Sprintf("--path-glob %q", r.PathGlob))
	}
	if len(parts) == 0 {
		return "(no checks)"
	}
	return strings.Join(parts, " ")
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rootCmd.AddCommand(rulesCmd)
}
