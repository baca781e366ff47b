//go:build windows

package validate

type accessMode uint32

const (
	accessRead accessMode = 1 << iota
	accessWrite
	accessExec
)

// accessible always reports true on Windows.
//
// Windows has no POSIX permission bits; a faithful check would need the
// ACL model, and a wrong answer at parse time is worse than none. The
// permission validators therefore degrade to the documented no-op
// success, leaving only their existence component active.
func accessible(string, accessMode) bool {
	return true
}
