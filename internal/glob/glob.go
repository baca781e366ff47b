// Package glob provides glob pattern matching for filesystem paths.
//
// Extends filepath.Match with ** support for matching any path segments.
// This enables patterns like "/var/log/**" to match everything under
// /var/log regardless of nesting depth, while a single * stays within
// one path segment.
package glob

import (
	"path/filepath"
	"strings"
)

// Match reports whether path matches the glob pattern.
// Supports standard glob patterns (*, ?, character classes) plus ** for
// matching any number of path segments. Pattern and path are compared
// with forward slashes. Returns an error if the pattern is malformed.
func Match(pattern, path string) (bool, error) {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" {
			if path != prefix && !strings.HasPrefix(path, prefix+"/") {
				return false, nil
			}
			path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
		}
		if suffix == "" {
			return true, nil
		}
		// Match the suffix against every tail of the remaining segments
		segments := strings.Split(path, "/")
		for i := range segments {
			tail := strings.Join(segments[i:], "/")
			m, err := Match(suffix, tail)
			if err != nil {
				return false, err
			}
			if m {
				return true, nil
			}
		}
		return false, nil
	}

	return filepath.Match(pattern, path)
}

// Valid reports whether pattern is well formed, without matching it
// against anything. Used to reject malformed patterns at configuration
// time rather than on first use.
func Valid(pattern string) error {
	for _, part := range strings.Split(filepath.ToSlash(pattern), "**") {
		if _, err := filepath.Match(strings.Trim(part, "/"), ""); err != nil {
			return err
		}
	}
	return nil
}
