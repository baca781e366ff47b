//go:build unix

package validate

import "golang.org/x/sys/unix"

type accessMode uint32

const (
	accessRead  accessMode = unix.R_OK
	accessWrite accessMode = unix.W_OK
	accessExec  accessMode = unix.X_OK
)

// accessible reports whether the current user can access path with the
// given mode, per access(2). Any probe error counts as "not accessible".
func accessible(path string, mode accessMode) bool {
	return unix.Access(path, uint32(mode)) == nil
}
