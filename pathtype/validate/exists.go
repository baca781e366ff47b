// exists.go implements the existence family of validators.
//
// Separated from access.go because existence probes and permission probes
// fail differently: a stat that is denied by the filesystem still tells us
// something ("we couldn't even check"), and that distinction shows up in
// the failure messages.
//
// Design: probes use os.Stat, so symbolic links are followed and all
// checks apply to the link target, not the link itself. A stat denied by
// missing permissions on an ancestor directory is reported as a Failure
// in its own words, not as an internal error - the user can act on it.

package validate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type existsValidator struct{}

// Exists returns a validator that passes when the path points to an
// existing file or directory.
func Exists() Validator { return existsValidator{} }

func (existsValidator) Validate(arg Argument) error {
	_, err := os.Stat(arg.Path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return Failf("path doesn't exist (%s)", arg.Raw)
	case errors.Is(err, fs.ErrPermission):
		return Failf("not enough permissions to validate existence of path (%s)", arg.Raw)
	default:
		return err
	}
}

type notExistsValidator struct{}

// NotExists returns a validator that passes when the path points to
// nothing.
func NotExists() Validator { return notExistsValidator{} }

func (notExistsValidator) Validate(arg Argument) error {
	_, err := os.Stat(arg.Path)
	switch {
	case err == nil:
		return Failf("path already exists (%s)", arg.Raw)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, fs.ErrPermission):
		return Failf("not enough permissions to validate existence of path (%s)", arg.Raw)
	default:
		return err
	}
}

type parentExistsValidator struct{}

// ParentExists returns a validator that passes when the direct parent
// directory of the path exists. The parent is taken from the absolute
// form of the path; a path that is its own parent (the filesystem root)
// fails.
func ParentExists() Validator { return parentExistsValidator{} }

func (parentExistsValidator) Validate(arg Argument) error {
	parent, ok, err := parentDir(arg.Path)
	if err != nil {
		return err
	}
	if !ok {
		return Failf("path has no parent directory (%s)", arg.Raw)
	}

	_, err = os.Stat(parent)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return Failf("parent directory doesn't exist (%s)", arg.Raw)
	case errors.Is(err, fs.ErrPermission):
		return Failf("not enough permissions to validate existence of the parent directory (%s)", arg.Raw)
	default:
		return err
	}
}

// parentDir returns the parent of the absolute form of path.
// ok is false when the path is its own parent, such as "/".
func parentDir(path string) (parent string, ok bool, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}
	parent = filepath.Dir(abs)
	return parent, parent != abs, nil
}
