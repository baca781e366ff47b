// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: flag parsing -> rule profiles -> validation pipeline -> audit log.
//
// The validation semantics themselves are unit-tested in pathtype/ and
// pathtype/validate/; the tests here prove the wiring - that flags and
// rules assemble the right pipeline, that failures surface through the
// right exit code and output format, and that every run is audited.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the pathcheck binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "pathcheck-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "pathcheck"
		if os.PathSeparator == '\\' {
			binaryName = "pathcheck.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated home,
// so global config and the audit log never touch the real user profile.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// run executes pathcheck with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("pathcheck %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes pathcheck and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// writeFile creates a file in the working directory.
func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeConfig drops a local rule profile into the working directory.
func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	cfgDir := filepath.Join(e.dir, ".pathcheck")
	require.NoError(e.t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644))
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// sampleRules is the profile used across the command tests.
const sampleRules = `rules:
  logfile:
    exists: true
    readable: true
    name_glob: "*.log"
  output:
    not_exists: true
    creatable: true
`
