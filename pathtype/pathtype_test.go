package pathtype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/pathcheck/pathtype/validate"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestNewConflicts(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"exists vs not-exists", []Option{Exists(), NotExists()}, ErrExistsConflict},
		{"readable implies exists", []Option{Readable(), NotExists()}, ErrExistsConflict},
		{"writable implies exists", []Option{Writable(), NotExists()}, ErrExistsConflict},
		{"executable implies exists", []Option{Executable(), NotExists()}, ErrExistsConflict},
		{"writable-or-creatable vs writable", []Option{WritableOrCreatable(), Writable()}, ErrCreatableConflict},
		{"writable-or-creatable vs creatable", []Option{WritableOrCreatable(), Creatable()}, ErrCreatableConflict},
		{"name regex vs name glob", []Option{NameMatchesRe(`\.txt$`), NameMatchesGlob("*.txt")}, ErrPatternConflict},
		{"path regex vs path glob", []Option{PathMatchesRe(`tmp`), PathMatchesGlob("/tmp/**")}, ErrPatternConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("malformed name regex", func(t *testing.T) {
		_, err := New(NameMatchesRe(`(`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid regular expression")
	})

	t.Run("malformed path glob", func(t *testing.T) {
		_, err := New(PathMatchesGlob("[a-"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid glob")
	})

	t.Run("not-exists with creatable is allowed", func(t *testing.T) {
		_, err := New(NotExists(), Creatable())
		assert.NoError(t, err)
	})
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { MustNew(Exists()) })
	assert.Panics(t, func() { MustNew(Exists(), NotExists()) })
}

func TestConvert(t *testing.T) {
	t.Run("no checks returns cleaned path", func(t *testing.T) {
		typ := MustNew()
		got, err := typ.Convert("./a//b/./c")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("a", "b", "c"), got)
	})

	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "data.txt")
		touch(t, file)

		typ := MustNew(Exists())
		got, err := typ.Convert(file)
		require.NoError(t, err)
		assert.Equal(t, file, got)

		_, err = typ.Convert(filepath.Join(dir, "missing"))
		require.Error(t, err)
		assert.True(t, validate.IsFailure(err))
		assert.Contains(t, err.Error(), "path doesn't exist")
	})
}

// A new output file: must not exist yet, its parent must be writable,
// and its name must carry the right extension.
func TestConvertOutputFileScenario(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir("new", 0o755))

	typ := MustNew(
		NotExists(),
		Creatable(),
		NameMatchesGlob("*.txt"),
	)

	t.Run("valid target", func(t *testing.T) {
		got, err := typ.Convert("new/file.txt")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("new", "file.txt"), got)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := typ.Convert("new/file.csv")
		require.Error(t, err)
		assert.True(t, validate.IsFailure(err))
		assert.Contains(t, err.Error(), "glob")
	})

	t.Run("missing parent", func(t *testing.T) {
		_, err := typ.Convert("nowhere/file.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent directory doesn't exist")
	})

	t.Run("target already present", func(t *testing.T) {
		touch(t, filepath.Join("new", "taken.txt"))
		_, err := typ.Convert("new/taken.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path already exists")
	})
}

func TestConvertWritableOrCreatable(t *testing.T) {
	dir := t.TempDir()
	typ := MustNew(WritableOrCreatable())

	t.Run("existing writable file", func(t *testing.T) {
		file := filepath.Join(dir, "log.txt")
		touch(t, file)
		_, err := typ.Convert(file)
		assert.NoError(t, err)
	})

	t.Run("missing file in writable parent", func(t *testing.T) {
		_, err := typ.Convert(filepath.Join(dir, "fresh.txt"))
		assert.NoError(t, err)
	})

	t.Run("missing file in missing parent", func(t *testing.T) {
		_, err := typ.Convert(filepath.Join(dir, "no-dir", "fresh.txt"))
		require.Error(t, err)
		assert.True(t, validate.IsFailure(err))
		assert.Contains(t, err.Error(), "no validation alternative succeeded")
	})
}

// Existence checks run before pattern checks no matter how the options
// were ordered, so the failure a user sees is always the same.
func TestConvertPipelineOrder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taken.csv")
	touch(t, file)

	for name, opts := range map[string][]Option{
		"pattern first": {NameMatchesGlob("*.txt"), NotExists()},
		"pattern last":  {NotExists(), NameMatchesGlob("*.txt")},
	} {
		t.Run(name, func(t *testing.T) {
			typ := MustNew(opts...)
			_, err := typ.Convert(file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "path already exists",
				"existence must be reported before the pattern mismatch")
		})
	}
}

func TestConvertCustomValidators(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	touch(t, file)

	t.Run("run after built-ins, in order", func(t *testing.T) {
		var order []string
		typ := MustNew(
			WithValidatorFunc(func(validate.Argument) error {
				order = append(order, "first")
				return nil
			}),
			Exists(),
			WithValidatorFunc(func(validate.Argument) error {
				order = append(order, "second")
				return nil
			}),
		)
		_, err := typ.Convert(file)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("skipped when a built-in fails", func(t *testing.T) {
		ran := false
		typ := MustNew(
			Exists(),
			WithValidatorFunc(func(validate.Argument) error {
				ran = true
				return nil
			}),
		)
		_, err := typ.Convert(filepath.Join(dir, "missing"))
		require.Error(t, err)
		assert.False(t, ran)
	})

	t.Run("failure message is returned verbatim", func(t *testing.T) {
		typ := MustNew(WithValidatorFunc(func(arg validate.Argument) error {
			return validate.Failf("not on the allow list (%s)", arg.Raw)
		}))
		_, err := typ.Convert("anything")
		require.Error(t, err)
		assert.Equal(t, "not on the allow list (anything)", err.Error())
	})

	t.Run("internal error propagates unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		typ := MustNew(WithValidatorFunc(func(validate.Argument) error { return boom }))
		_, err := typ.Convert("anything")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("argument carries cleaned and raw forms", func(t *testing.T) {
		var got validate.Argument
		typ := MustNew(WithValidatorFunc(func(arg validate.Argument) error {
			got = arg
			return nil
		}))
		_, err := typ.Convert("./x//y")
		require.NoError(t, err)
		assert.Equal(t, "./x//y", got.Raw)
		assert.Equal(t, filepath.Join("x", "y"), got.Path)
	})
}
