// Package pathtype converts command-line string arguments into validated
// filesystem paths.
//
// A Type is configured once with the checks a path must satisfy and then
// converts raw argument strings, running every check in a fixed order and
// stopping at the first failure. Use it directly through Convert, or bind
// it to a cobra/pflag flag through Value:
//
//	out := pathtype.MustNew(
//		pathtype.NotExists(),
//		pathtype.Creatable(),
//		pathtype.NameMatchesGlob("*.txt"),
//	)
//	cmd.Flags().Var(out.Value(&outPath), "out", "Output file")
//
// # Pipeline order
//
// Options assemble into a pipeline in a fixed declared order, regardless
// of the order the options are given: existence checks, then permission
// checks, then parent checks, then the writable-or-creatable alternative,
// then name patterns, then path patterns, then custom validators in the
// order supplied. Identical configuration always produces an identical
// pipeline, so which failure a user sees first is reproducible.
//
// Several options imply others: Readable, Writable and Executable imply
// Exists; Creatable implies ParentExists. Conflicting combinations
// (Exists with NotExists, a regex and a glob for the same subject,
// WritableOrCreatable with Writable or Creatable) are reported by New,
// not deferred to the first conversion.
package pathtype

import (
	"errors"
	"path/filepath"

	"github.com/jpl-au/pathcheck/pathtype/validate"
)

// Construction errors for conflicting option combinations.
var (
	ErrExistsConflict  = errors.New("exists and not-exists cannot both be required")
	ErrPatternConflict = errors.New("a regular expression and a glob cannot both be set for the same subject")
	ErrCreatableConflict = errors.New("writable-or-creatable cannot be combined with writable or creatable")
)

type config struct {
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

	validators []validate.Validator
}

// Option configures a Type.
type Option func(*config)

// Exists requires the path to point to an existing file or directory.
func Exists() Option { return func(c *config) { c.exists = true } }

// NotExists requires the path to point to nothing.
func NotExists() Option { return func(c *config) { c.notExists = true } }

// ParentExists requires the direct parent directory of the path to exist.
func ParentExists() Option { return func(c *config) { c.parentExists = true } }

// Creatable requires write permission on the parent directory of the
// path, the usual precondition for creating the file or directory.
// Implies ParentExists.
func Creatable() Option { return func(c *config) { c.creatable = true } }

// WritableOrCreatable requires either an existing, writable path or a
// missing path whose parent directory exists and is writable. Cannot be
// combined with Writable or Creatable.
func WritableOrCreatable() Option { return func(c *config) { c.writableOrCreatable = true } }

// Readable requires read permission on the path. Implies Exists.
func Readable() Option { return func(c *config) { c.readable = true } }

// Writable requires write permission on the path. Implies Exists.
func Writable() Option { return func(c *config) { c.writable = true } }

// Executable requires execute permission on the path. Implies Exists.
func Executable() Option { return func(c *config) { c.executable = true } }

// NameMatchesRe requires the final path component to match the regular
// expression. The expression is searched anywhere in the name; anchor it
// when a full match is wanted.
func NameMatchesRe(expr string) Option { return func(c *config) { c.nameRe = expr } }

// NameMatchesGlob requires the final path component to match the glob
// pattern.
func NameMatchesGlob(pattern string) Option { return func(c *config) { c.nameGlob = pattern } }

// PathMatchesRe requires the absolute form of the path to match the
// regular expression.
func PathMatchesRe(expr string) Option { return func(c *config) { c.pathRe = expr } }

// PathMatchesGlob requires the absolute form of the path to match the
// glob pattern. The pattern may use ** to span path segments.
func PathMatchesGlob(pattern string) Option { return func(c *config) { c.pathGlob = pattern } }

// WithValidator appends custom validators to the pipeline. Custom
// validators always run after the built-in checks, in the order given.
func WithValidator(vs ...validate.Validator) Option {
	return func(c *config) { c.validators = append(c.validators, vs...) }
}

// WithValidatorFunc appends a bare function as a custom validator.
func WithValidatorFunc(f func(validate.Argument) error) Option {
	return WithValidator(validate.Func(f))
}

// Type converts raw argument strings into validated paths. Configure it
// once with New; a Type is immutable afterwards and safe for concurrent
// use.
type Type struct {
	pipeline []validate.Validator
}

// New builds a Type from the given options. Conflicting options and
// malformed patterns are reported here, at construction, never deferred
// to the first conversion.
func New(opts ...Option) (*Type, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.readable || cfg.writable || cfg.executable {
		cfg.exists = true
	}
	if cfg.creatable {
		cfg.parentExists = true
	}

	if cfg.exists && cfg.notExists {
		return nil, ErrExistsConflict
	}
	if cfg.writableOrCreatable && (cfg.writable || cfg.creatable) {
		return nil, ErrCreatableConflict
	}
	if cfg.nameRe != "" && cfg.nameGlob != "" {
		return nil, ErrPatternConflict
	}
	if cfg.pathRe != "" && cfg.pathGlob != "" {
		return nil, ErrPatternConflict
	}

	var pipeline []validate.Validator

	if cfg.exists {
		pipeline = append(pipeline, validate.Exists())
	}
	if cfg.notExists {
		pipeline = append(pipeline, validate.NotExists())
	}
	if cfg.readable {
		pipeline = append(pipeline, validate.Readable())
	}
	if cfg.writable {
		pipeline = append(pipeline, validate.Writable())
	}
	if cfg.executable {
		pipeline = append(pipeline, validate.Executable())
	}
	// Exists already covers the parent, skip the weaker check
	if cfg.parentExists && !cfg.exists {
		pipeline = append(pipeline, validate.ParentExists())
	}
	if cfg.creatable {
		pipeline = append(pipeline, validate.ParentWritable())
	}
	if cfg.writableOrCreatable {
		pipeline = append(pipeline, validate.Any(
			validate.All(validate.Exists(), validate.Writable()),
			validate.All(validate.ParentExists(), validate.ParentWritable()),
		))
	}

	if cfg.nameRe != "" {
		v, err := validate.NameMatchesRe(cfg.nameRe)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, v)
	}
	if cfg.nameGlob != "" {
		v, err := validate.NameMatchesGlob(cfg.nameGlob)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, v)
	}
	if cfg.pathRe != "" {
		v, err := validate.PathMatchesRe(cfg.pathRe)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, v)
	}
	if cfg.pathGlob != "" {
		v, err := validate.PathMatchesGlob(cfg.pathGlob)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, v)
	}

	pipeline = append(pipeline, cfg.validators...)

	return &Type{pipeline: pipeline}, nil
}

// MustNew is New but panics on a configuration error. Intended for
// flag definitions, where the configuration is a compile-time constant.
func MustNew(opts ...Option) *Type {
	t, err := New(opts...)
	if err != nil {
		panic("pathtype: " + err.Error())
	}
	return t
}

// Convert turns a raw argument string into a validated path.
//
// The raw string is cleaned (redundant separators and "." components
// removed, nothing else) and every validator in the pipeline runs in
// order against it. The first failure aborts the conversion and its
// message is returned verbatim; on success the cleaned path is returned.
func (t *Type) Convert(raw string) (string, error) {
	arg := validate.Argument{Path: filepath.Clean(raw), Raw: raw}

	for _, v := range t.pipeline {
		if err := v.Validate(arg); err != nil {
			return "", err
		}
	}

	return arg.Path, nil
}
