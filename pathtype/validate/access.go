// access.go implements the permission family of validators.
//
// Separated from exists.go because permission checks sit on top of the
// existence checks: Readable, Writable and Executable imply existence and
// reuse the existence failure wording when the path is missing, so a user
// is never told "no read permission" on a file that simply isn't there.
//
// Design: checks ask the kernel whether the current user can access the
// path (effectively the access(2) semantics of os.access in scripting
// languages), so group membership and ACL-granted access pass. The probe
// is inherently racy - permissions can change between parsing and use -
// which is accepted and documented rather than papered over.

package validate

type permValidator struct {
	mode accessMode
	verb string
}

// Readable returns a validator that passes when the current user has
// read access on the path. Implies existence: a missing path fails with
// the existence message.
func Readable() Validator { return permValidator{mode: accessRead, verb: "read"} }

// Writable returns a validator that passes when the current user has
// write access on the path. Implies existence: a missing path fails with
// the existence message.
func Writable() Validator { return permValidator{mode: accessWrite, verb: "write"} }

// Executable returns a validator that passes when the current user has
// execute access on the path. Implies existence: a missing path fails
// with the existence message.
func Executable() Validator { return permValidator{mode: accessExec, verb: "execute"} }

func (v permValidator) Validate(arg Argument) error {
	if err := Exists().Validate(arg); err != nil {
		return err
	}
	if !accessible(arg.Path, v.mode) {
		return Failf("no %s permission on path (%s)", v.verb, arg.Raw)
	}
	return nil
}

type parentWritableValidator struct{}

// ParentWritable returns a validator that passes when the current user
// has write access on the parent directory of the path. This is the
// "can I create it" building block: write permission on the parent is
// necessary (though not sufficient) to create the file or directory.
//
// The parent is not checked for existence first; run ParentExists before
// this validator when the parent may be missing.
func ParentWritable() Validator { return parentWritableValidator{} }

func (parentWritableValidator) Validate(arg Argument) error {
	parent, ok, err := parentDir(arg.Path)
	if err != nil {
		return err
	}
	if !ok {
		return Failf("path has no parent directory (%s)", arg.Raw)
	}
	if !accessible(parent, accessWrite) {
		return Failf("no write permission on the parent directory (%s)", arg.Raw)
	}
	return nil
}
