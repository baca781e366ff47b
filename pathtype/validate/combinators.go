// combinators.go implements the All and Any logical combinators.
//
// Separated from validate.go to keep the interface definition apart from
// the composition logic. Combinators are Validators themselves and nest
// arbitrarily, forming a tree whose children are evaluated strictly in
// construction order.
//
// Design: Any collects the message of every failed child rather than
// keeping only the last one. When a user offers several acceptable shapes
// for a path, seeing all the reasons each alternative was rejected is what
// makes the error actionable.

package validate

import "strings"

type allValidator struct {
	children []Validator
}

// All returns a validator that passes only if every child passes.
//
// Children run strictly in the order given. The first failure (or
// internal error) stops evaluation and propagates unchanged; later
// children are not evaluated. With no children, All passes trivially.
func All(children ...Validator) Validator {
	return &allValidator{children: children}
}

func (v *allValidator) Validate(arg Argument) error {
	for _, child := range v.children {
		if err := child.Validate(arg); err != nil {
			return err
		}
	}
	return nil
}

type anyValidator struct {
	children []Validator
}

// Any returns a validator that passes if at least one child passes.
//
// Children run strictly in the order given. The first success stops
// evaluation and later children are not evaluated. If every child fails,
// Any fails with a combined message listing each child's failure. An
// internal error from a child stops evaluation immediately and propagates
// unchanged.
//
// With no children Any fails: there was no option that could succeed.
func Any(children ...Validator) Validator {
	return &anyValidator{children: children}
}

func (v *anyValidator) Validate(arg Argument) error {
	if len(v.children) == 0 {
		return Failf("no validation alternative could succeed (%s)", arg.Raw)
	}

	messages := make([]string, 0, len(v.children))
	for _, child := range v.children {
		err := child.Validate(arg)
		if err == nil {
			return nil
		}
		if !IsFailure(err) {
			// Programming error in a child: never mask it.
			return err
		}
		messages = append(messages, err.Error())
	}

	return Failf("no validation alternative succeeded: %s", strings.Join(messages, "; "))
}
