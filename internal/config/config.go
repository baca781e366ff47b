// Package config provides reading of pathcheck rule profiles.
// Supports both global (~/.pathcheck/config.yaml) and local
// (.pathcheck/config.yaml) files. Reading uses local if it exists,
// otherwise global.
//
// A rule profile is a named, reusable path-check configuration:
//
//	rules:
//	  logfile:
//	    exists: true
//	    readable: true
//	    name_glob: "*.log"
//	  output:
//	    not_exists: true
//	    creatable: true
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/pathcheck/pathtype"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownRule is returned when a named rule is not configured.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrInvalidRule is returned when a configured rule cannot be assembled.
	ErrInvalidRule = errors.New("invalid rule")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathcheck/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .pathcheck/config.yaml
	ScopeLocal
)

// Rule is a named path-check profile. Field names mirror the pathtype
// options; zero values mean "not required".
type Rule struct {
	Exists              bool   `yaml:"exists,omitempty"`
	NotExists           bool   `yaml:"not_exists,omitempty"`
	ParentExists        bool   `yaml:"parent_exists,omitempty"`
	Creatable           bool   `yaml:"creatable,omitempty"`
	WritableOrCreatable bool   `yaml:"writable_or_creatable,omitempty"`
	Readable            bool   `yaml:"readable,omitempty"`
	Writable            bool   `yaml:"writable,omitempty"`
	Executable          bool   `yaml:"executable,omitempty"`
	NameRe              string `yaml:"name_re,omitempty"`
	NameGlob            string `yaml:"name_glob,omitempty"`
	PathRe              string `yaml:"path_re,omitempty"`
	PathGlob            string `yaml:"path_glob,omitempty"`
}

// Options translates the rule into pathtype options.
func (r Rule) Options() []pathtype.Option {
	var opts []pathtype.Option
	if r.Exists {
		opts = append(opts, pathtype.Exists())
	}
	if r.NotExists {
		opts = append(opts, pathtype.NotExists())
	}
	if r.ParentExists {
		opts = append(opts, pathtype.ParentExists())
	}
	if r.Creatable {
		opts = append(opts, pathtype.Creatable())
	}
	if r.WritableOrCreatable {
		opts = append(opts, pathtype.WritableOrCreatable())
	}
	if r.Readable {
		opts = append(opts, pathtype.Readable())
	}
	if r.Writable {
		opts = append(opts, pathtype.Writable())
	}
	if r.Executable {
		opts = append(opts, pathtype.Executable())
	}
	if r.NameRe != "" {
		opts = append(opts, pathtype.NameMatchesRe(r.NameRe))
	}
	if r.NameGlob != "" {
		opts = append(opts, pathtype.NameMatchesGlob(r.NameGlob))
	}
	if r.PathRe != "" {
		opts = append(opts, pathtype.PathMatchesRe(r.PathRe))
	}
	if r.PathGlob != "" {
		opts = append(opts, pathtype.PathMatchesGlob(r.PathGlob))
	}
	return opts
}

// Type assembles the rule into a converter, surfacing conflicting or
// malformed settings as ErrInvalidRule.
func (r Rule) Type() (*pathtype.Type, error) {
	t, err := pathtype.New(r.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return t, nil
}

// Config contains the pathcheck configuration.
type Config struct {
	Rules map[string]Rule `yaml:"rules,omitempty"`

	// path is the file this config was loaded from
	path  string
	scope Scope
}

// Validate checks that every configured rule can be assembled into a
// converter. Conflicts and malformed patterns are reported per rule.
func (c *Config) Validate() error {
	for name, rule := range c.Rules {
		if _, err := rule.Type(); err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
	}
	return nil
}

// Rule returns the named rule. An unknown name is reported with the
// nearest configured rule name when one is plausibly close.
func (c *Config) Rule(name string) (Rule, error) {
	if r, ok := c.Rules[name]; ok {
		return r, nil
	}
	if s := Suggest(name, c.RuleNames()); s != "" {
		return Rule{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRule, name, s)
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// RuleNames returns the configured rule names, sorted.
func (c *Config) RuleNames() []string {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the file this config was loaded from, empty when no
// config file exists.
func (c *Config) Path() string { return c.path }

// Scope returns the configuration scope this config was loaded from.
func (c *Config) Scope() Scope { return c.scope }

// Load reads the configuration, preferring local over global. A missing
// config file is not an error: an empty Config is returned so commands
// that merely consult rules keep working.
func Load() (*Config, error) {
	if p := localPath(); p != "" {
		cfg, err := loadFile(p, ScopeLocal)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	p, err := globalPath()
	if err != nil {
		return nil, err
	}
	cfg, err := loadFile(p, ScopeGlobal)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{scope: ScopeGlobal}, nil
	}
	return cfg, err
}

func loadFile(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// localPath returns the project-local config path, empty when the
// working directory cannot be determined.
func localPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(wd, ".pathcheck", "config.yaml")
}

// globalPath returns the user-wide config path.
func globalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigPath, err)
	}
	return filepath.Join(home, ".pathcheck", "config.yaml"), nil
}
