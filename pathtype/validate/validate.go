// Package validate provides composable validators for filesystem path
// arguments.
//
// Each validator checks one property of a path (existence, permissions,
// name or path patterns) and either passes or fails with a message naming
// the check and the offending value. Validators compose through the All
// and Any combinators, so boolean expressions over path properties can be
// built as trees of validators.
//
// # Error Handling
//
// A failed check is reported as a *Failure, the expected, recoverable
// error kind. Anything else returned by a validator is treated as a
// programming error: combinators never aggregate or mask it, they abort
// and let it propagate to the caller. Use errors.As (or IsFailure) to
// tell the two apart:
//
//	if validate.IsFailure(err) {
//	    // the path didn't pass a check
//	}
package validate

import (
	"errors"
	"fmt"
)

// Argument pairs the converted path with the raw string the user typed.
// Validators receive both so failure messages can quote the argument
// exactly as it was given. Built once per conversion and never mutated.
type Argument struct {
	Path string // cleaned path being validated
	Raw  string // original argument string
}

// Validator checks a single property of a path argument.
// A nil return means the check passed. A *Failure return means the path
// didn't satisfy the check. Any other error is an internal fault and
// aborts the whole validation.
//
// Validators hold no mutable state beyond construction-time configuration
// (such as a compiled pattern), so a single instance is safe to use from
// multiple goroutines.
type Validator interface {
	Validate(arg Argument) error
}

// Func adapts a bare function into a Validator.
type Func func(arg Argument) error

// Validate calls f.
func (f Func) Validate(arg Argument) error { return f(arg) }

// Failure is a validation failure: the path was inspected and didn't
// satisfy a check. It is the only error kind combinators treat as
// recoverable.
type Failure struct {
	Message string
}

// Error returns the failure message verbatim.
func (f *Failure) Error() string { return f.Message }

// Failf returns a *Failure with a formatted message.
func Failf(format string, args ...any) error {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}

// IsFailure reports whether err is (or wraps) a validation failure, as
// opposed to an unexpected internal error.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
