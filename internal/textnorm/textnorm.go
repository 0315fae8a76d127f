// Package textnorm holds the string transforms shared by the display layer
// and the duplicate detector. All functions are pure and never fail; empty
// input comes back as an empty string.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a word character, whitespace or basic punctuation
	// gets dropped from display text. ASCII-oriented cleanup only.
	reDisallowed = regexp.MustCompile(`[^\w\s.,:;!?()'"-]+`)

	// Leading wire-style markers stripped before duplicate matching.
	// Input is already lower-cased when this runs.
	reLeadMarker = regexp.MustCompile(`^(?:breaking|update|exclusive):?\s*`)
)

// CleanDisplayText removes disallowed characters and trims surrounding
// whitespace. Applying it twice gives the same result as applying it once.
func CleanDisplayText(s string) string {
	return strings.TrimSpace(reDisallowed.ReplaceAllString(s, ""))
}

// StripOutletSuffix removes a trailing " - {outlet}" from a title. The outlet
// name is matched literally, so names containing regexp metacharacters are
// safe. No-op when the suffix is absent or the outlet is empty.
func StripOutletSuffix(title, outlet string) string {
	if outlet == "" {
		return title
	}
	return strings.TrimSuffix(title, " - "+outlet)
}

// NormalizeForDedup derives the grouping key for a cleaned title: lower-case,
// strip one leading marker ("Breaking:", "Update", "Exclusive:" and friends),
// collapse whitespace runs to single spaces and trim. Two titles with equal
// keys are treated as the same story.
//
// A title that consists only of a marker normalizes to the empty string and
// will group with every other empty-keyed article. That matches how such
// titles have always been handled here.
func NormalizeForDedup(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = reLeadMarker.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
