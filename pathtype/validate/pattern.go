// pattern.go implements the name and path pattern validators.
//
// Separated from the filesystem-probing validators because pattern checks
// never touch the filesystem: they operate on the path string alone.
//
// Design: patterns are compiled once, at construction, and a malformed
// pattern is a construction error rather than a deferred failure on the
// first conversion. Regular expressions are searched anywhere in the
// subject (anchor with ^ and $ when a full match is wanted). Name checks
// look only at the final path component; path checks resolve the argument
// to its absolute, ~-expanded form first.

package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jpl-au/pathcheck/internal/glob"
)

// subjectFunc extracts the string a pattern is matched against.
type subjectFunc func(arg Argument) (string, error)

// subjectName returns the final path component.
func subjectName(arg Argument) (string, error) {
	return filepath.Base(arg.Path), nil
}

// subjectPath returns the absolute, ~-expanded form of the path.
func subjectPath(arg Argument) (string, error) {
	return filepath.Abs(expandHome(arg.Path))
}

// expandHome replaces a leading ~ with the current user's home directory.
// The path is returned unchanged when the home directory is unknown.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

type regexpValidator struct {
	re      *regexp.Regexp
	subject subjectFunc
}

func (v *regexpValidator) Validate(arg Argument) error {
	subject, err := v.subject(arg)
	if err != nil {
		return err
	}
	if !v.re.MatchString(subject) {
		return Failf("pattern %q doesn't match %s", v.re.String(), subject)
	}
	return nil
}

// NameMatchesRe returns a validator that passes when the final path
// component matches the regular expression. Returns an error if the
// expression doesn't compile.
func NameMatchesRe(expr string) (Validator, error) {
	return newRegexpValidator(expr, subjectName)
}

// PathMatchesRe returns a validator that passes when the absolute form
// of the path matches the regular expression. Returns an error if the
// expression doesn't compile.
func PathMatchesRe(expr string) (Validator, error) {
	return newRegexpValidator(expr, subjectPath)
}

func newRegexpValidator(expr string, subject subjectFunc) (Validator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression %q: %w", expr, err)
	}
	return &regexpValidator{re: re, subject: subject}, nil
}

type globValidator struct {
	pattern string
	subject subjectFunc
	match   func(pattern, subject string) (bool, error)
}

func (v *globValidator) Validate(arg Argument) error {
	subject, err := v.subject(arg)
	if err != nil {
		return err
	}
	ok, err := v.match(v.pattern, subject)
	if err != nil {
		return err
	}
	if !ok {
		return Failf("glob %q doesn't match %s", v.pattern, subject)
	}
	return nil
}

// NameMatchesGlob returns a validator that passes when the final path
// component matches the glob pattern. Returns an error if the pattern is
// malformed.
func NameMatchesGlob(pattern string) (Validator, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	return &globValidator{
		pattern: pattern,
		subject: subjectName,
		match:   filepath.Match,
	}, nil
}

// PathMatchesGlob returns a validator that passes when the absolute form
// of the path matches the glob pattern. The pattern may use ** to span
// path segments. Returns an error if the pattern is malformed.
func PathMatchesGlob(pattern string) (Validator, error) {
	if err := glob.Valid(pattern); err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	return &globValidator{
		pattern: pattern,
		subject: subjectPath,
		match:   glob.Match,
	}, nil
}
