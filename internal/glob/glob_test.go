package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"exact", "/var/log/app.log", "/var/log/app.log", true},
		{"star in segment", "/var/log/*.log", "/var/log/app.log", true},
		{"star stays in segment", "/var/*.log", "/var/log/app.log", false},
		{"question mark", "/tmp/?.txt", "/tmp/a.txt", true},
		{"char class", "/tmp/[ab].txt", "/tmp/b.txt", true},
		{"doublestar trailing", "/var/log/**", "/var/log/nested/deep/app.log", true},
		{"doublestar trailing matches dir itself", "/var/log/**", "/var/log", true},
		{"doublestar trailing wrong prefix", "/var/log/**", "/var/lib/app.log", false},
		{"doublestar prefix boundary", "/var/log/**", "/var/logs/app.log", false},
		{"doublestar middle", "/home/**/*.txt", "/home/user/docs/note.txt", true},
		{"doublestar zero segments", "/home/**/note.txt", "/home/note.txt", true},
		{"doublestar middle no match", "/home/**/*.txt", "/home/user/docs/note.csv", false},
		{"doublestar leading", "**/*.go", "a/b/c/main.go", true},
		{"no match", "*.txt", "note.csv", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.pattern, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "pattern %q against %q", tt.pattern, tt.path)
		})
	}

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := Match("[a-", "a")
		assert.Error(t, err)
	})
}

func TestValid(t *testing.T) {
	assert.NoError(t, Valid("/var/log/*.log"))
	assert.NoError(t, Valid("/var/log/**"))
	assert.NoError(t, Valid("**/*.go"))
	assert.Error(t, Valid("[a-"))
	assert.Error(t, Valid("/var/**/[a-"))
}
