package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Output is piped in tests, so the guides come out as raw markdown.
func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	t.Run("default guide", func(t *testing.T) {
		out := env.run("guide")
		env.contains(out, "# pathcheck")
		env.contains(out, "Quick start")
	})

	t.Run("validators topic", func(t *testing.T) {
		out := env.run("guide", "validators")
		env.contains(out, "--exists")
		env.contains(out, "--writable-or-creatable")
	})

	t.Run("rules topic", func(t *testing.T) {
		out := env.run("guide", "rules")
		env.contains(out, "config.yaml")
	})

	t.Run("unknown topic lists what exists", func(t *testing.T) {
		out, err := env.runErr("guide", "nothere")
		require.Error(t, err)
		env.contains(out, `guide "nothere" not found`)
		env.contains(out, "validators")
		env.contains(out, "rules")
	})
}
