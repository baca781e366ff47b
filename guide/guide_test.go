package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("empty name returns the main guide", func(t *testing.T) {
		content, err := Get("")
		require.NoError(t, err)
		assert.Contains(t, content, "# pathcheck")
	})

	t.Run("named topic", func(t *testing.T) {
		content, err := Get("validators")
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := Get("nothere")
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Contains(t, names, "validators")
	assert.Contains(t, names, "rules")
	assert.NotContains(t, names, "guide", "the default page is not a topic")
}
