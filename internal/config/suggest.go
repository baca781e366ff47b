// suggest.go provides nearest-name suggestions for mistyped rule names.
//
// Separated from config.go to keep the YAML loading logic apart from the
// fuzzy-matching concern. A mistyped --rule flag is the most common way
// to hit ErrUnknownRule, and "did you mean" turns a dead end into a fix.

package config

import "github.com/sergi/go-diff/diffmatchpatch"

// Suggest returns the candidate closest to name by edit distance, or ""
// when nothing is close enough to be a plausible typo. The threshold is
// half the typed name's length: beyond that the user likely meant a rule
// that doesn't exist, not a misspelling.
func Suggest(name string, candidates []string) string {
	if name == "" {
		return ""
	}

	dmp := diffmatchpatch.New()
	best := ""
	bestDist := -1

	for _, c := range candidates {
		diffs := dmp.DiffMain(name, c, false)
		d := dmp.DiffLevenshtein(diffs)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist < 0 || bestDist > len(name)/2 {
		return ""
	}
	return best
}
