// flag.go adapts a Type to the pflag.Value interface.
//
// Separated from pathtype.go to isolate the flag-framework glue from the
// conversion logic. The converter itself knows nothing about flags; this
// file is the only place that touches pflag.
//
// Design: Set runs the full conversion, so a failing path rejects the
// flag at parse time and cobra/pflag formats the failure message through
// its normal invalid-argument channel. Unexpected internal errors take
// the same route out - pflag has a single error channel - but their
// message is prefixed so they are recognisable as bugs, not bad input.

package pathtype

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jpl-au/pathcheck/pathtype/validate"
)

// Value binds a Type to a string destination as a pflag.Value, for use
// with cobra's Flags().Var and friends. The destination is only written
// on successful conversion.
func (t *Type) Value(p *string) pflag.Value {
	return &flagValue{typ: t, dest: p}
}

type flagValue struct {
	typ  *Type
	dest *string
}

func (v *flagValue) String() string {
	if v.dest == nil {
		return ""
	}
	return *v.dest
}

func (v *flagValue) Set(raw string) error {
	path, err := v.typ.Convert(raw)
	if err != nil {
		if !validate.IsFailure(err) {
			return fmt.Errorf("internal validation error: %w", err)
		}
		return err
	}
	*v.dest = path
	return nil
}

func (v *flagValue) Type() string { return "path" }
