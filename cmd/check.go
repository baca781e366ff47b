// check.go implements the "pathcheck check" command.
//
// Design: flags build the same pathtype options the library exposes, so
// the CLI is a thin shell over the converter. A --rule profile loads
// first and explicit flags add to it, letting a project convention be
// tightened ad hoc. Every path argument is checked even after one fails,
// so a script gets the full picture in one run; the exit status is
// non-zero when any path failed.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pathcheck/internal/config"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/pathtype"
)

var checkFlags struct {
	rule string

	exists              bool
	notExists           bool
	parentExists        bool
	creatable           bool
	writableOrCreatable bool
	readable            bool
	writable            bool
	executable          bool

	nameRe   string
	nameGlob string
	pathRe   string
	pathGlob string
}

// checkResult is one path's outcome, used for JSON output.
type checkResult struct {
	Path     string `json:"path"`
	Ok       bool   `json:"ok"`
	Resolved string `json:"resolved,omitempty"`
	Error    string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] PATH...",
	Short: "Validate paths against the given checks",
	Long: `Validates each PATH against the selected checks and prints one line per path.

Checks always run in the same order regardless of flag order: existence,
permissions, parent checks, writable-or-creatable, name patterns, path
patterns. The first failing check decides the message for that path.

  pathcheck check --exists --readable /etc/hosts
  pathcheck check --not-exists --creatable --name-glob "*.txt" out/report.txt
  pathcheck check --rule logfile /var/log/*.log`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := checkOptions()
	if err != nil {
		return PrintJSONError(err)
	}

	t, err := pathtype.New(opts...)
	if err != nil {
		return PrintJSONError(fmt.Errorf("invalid check configuration: %w", err))
	}

	// Flag errors end here; anything below is a per-path verdict
	cmd.SilenceUsage = true

	results := make([]checkResult, 0, len(args))
	failed := 0
	for _, raw := range args {
		path, err := t.Convert(raw)
		log.Event("cli:check", "check").Path(raw).Rule(checkFlags.rule).Resolved(path).Write(err)

		r := checkResult{Path: raw, Ok: err == nil, Resolved: path}
		if err != nil {
			r.Error = err.Error()
			failed++
		}
		results = append(results, r)

		if !JSON() {
			if err != nil {
				fmt.Fprintf(out, "fail\t%s\t%s\n", raw, err)
			} else {
				fmt.Fprintf(out, "ok\t%s\n", path)
			}
		}
	}

	if err := PrintJSON(results); err != nil {
		return err
	}

	if failed > 0 {
		cmd.SilenceErrors = JSON()
		return fmt.Errorf("%d of %d paths failed validation", failed, len(args))
	}
	return nil
}

// checkOptions translates the --rule profile and explicit flags into
// pathtype options. The profile's options come first, so explicit flags
// only ever add checks.
func checkOptions() ([]pathtype.Option, error) {
	var opts []pathtype.Option

	if checkFlags.rule != "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		rule, err := cfg.Rule(checkFlags.rule)
		if err != nil {
			return nil, err
		}
		opts = rule.Options()
	}

	if checkFlags.exists {
		opts = append(opts, pathtype.Exists())
	}
	if checkFlags.notExists {
		opts = append(opts, pathtype.NotExists())
	}
	if checkFlags.parentExists {
		opts = append(opts, pathtype.ParentExists())
	}
	if checkFlags.creatable {
		opts = append(opts, pathtype.Creatable())
	}
	if checkFlags.writableOrCreatable {
		opts = append(opts, pathtype.WritableOrCreatable())
	}
	if checkFlags.readable {
		opts = append(opts, pathtype.Readable())
	}
	if checkFlags.writable {
		opts = append(opts, pathtype.Writable())
	}
	if checkFlags.executable {
		opts = append(opts, pathtype.Executable())
	}
	if checkFlags.nameRe != "" {
		opts = append(opts, pathtype.NameMatchesRe(checkFlags.nameRe))
	}
	if checkFlags.nameGlob != "" {
		opts = append(opts, pathtype.NameMatchesGlob(checkFlags.nameGlob))
	}
	if checkFlags.pathRe != "" {
		opts = append(opts, pathtype.PathMatchesRe(checkFlags.pathRe))
	}
	if checkFlags.pathGlob != "" {
		opts = append(opts, pathtype.PathMatchesGlob(checkFlags.pathGlob))
	}

	return opts, nil
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkFlags.rule, "rule", "r", "", "Named rule profile from the config file")

	f.BoolVar(&checkFlags.exists, "exists", false, "Path must exist")
	f.BoolVar(&checkFlags.notExists, "not-exists", false, "Path must not exist")
	f.BoolVar(&checkFlags.parentExists, "parent-exists", false, "Parent directory must exist")
	f.BoolVar(&checkFlags.creatable, "creatable", false, "Parent directory must be writable")
	f.BoolVar(&checkFlags.writableOrCreatable, "writable-or-creatable", false, "Path writable, or missing and creatable")
	f.BoolVar(&checkFlags.readable, "readable", false, "Current user must have read permission")
	f.BoolVar(&checkFlags.writable, "writable", false, "Current user must have write permission")
	f.BoolVar(&checkFlags.executable, "executable", false, "Current user must have execute permission")

	f.StringVar(&checkFlags.nameRe, "name-re", "", "Regular expression the file name must match")
	f.StringVar(&checkFlags.nameGlob, "name-glob", "", "Glob the file name must match")
	f.StringVar(&checkFlags.pathRe, "path-re", "", "Regular expression the absolute path must match")
	f.StringVar(&checkFlags.pathGlob, "path-glob", "", "Glob the absolute path must match (** spans segments)")

	rootCmd.AddCommand(checkCmd)
}
