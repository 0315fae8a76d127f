// Package outlet decides whether an outlet name belongs to the configured
// regional list, and whether an article's source should be dropped outright.
package outlet

import (
	"fmt"
	"strings"
)

// Matcher reports whether an outlet name counts as regional. Two policies
// exist because the classifier changed over the project's life: containment
// matching and exact matching. Exact is the current default; the old policy
// stays selectable through the config.
type Matcher interface {
	IsRegional(name string) bool
}

// SubstringMatcher marks an outlet as regional when any configured entry is
// a non-empty, case-sensitive substring of its name.
type SubstringMatcher struct {
	outlets []string
}

func NewSubstringMatcher(outlets []string) *SubstringMatcher {
	kept := make([]string, 0, len(outlets))
	for _, o := range outlets {
		if o != "" {
			kept = append(kept, o)
		}
	}
	return &SubstringMatcher{outlets: kept}
}

func (m *SubstringMatcher) IsRegional(name string) bool {
	for _, o := range m.outlets {
		if strings.Contains(name, o) {
			return true
		}
	}
	return false
}

// ExactMatcher marks an outlet as regional when its name equals a configured
// entry, ignoring case and surrounding whitespace.
type ExactMatcher struct {
	outlets []string
}

func NewExactMatcher(outlets []string) *ExactMatcher {
	kept := make([]string, 0, len(outlets))
	for _, o := range outlets {
		if t := strings.TrimSpace(o); t != "" {
			kept = append(kept, t)
		}
	}
	return &ExactMatcher{outlets: kept}
}

func (m *ExactMatcher) IsRegional(name string) bool {
	name = strings.TrimSpace(name)
	for _, o := range m.outlets {
		if strings.EqualFold(name, o) {
			return true
		}
	}
	return false
}

// Matching mode names accepted by the config.
const (
	ModeExact     = "exact"
	ModeSubstring = "substring"
)

// NewMatcher builds the matcher for a configured mode.
func NewMatcher(mode string, outlets []string) (Matcher, error) {
	switch mode {
	case ModeExact, "":
		return NewExactMatcher(outlets), nil
	case ModeSubstring:
		return NewSubstringMatcher(outlets), nil
	default:
		return nil, fmt.Errorf("unknown outlet match mode %q", mode)
	}
}

// IsExcluded reports whether any entry of the exclusion list is a
// case-sensitive substring of the outlet name. Used to drop noise sources
// (government domains, aggregators) before grouping.
func IsExcluded(name string, excludeSubstrings []string) bool {
	for _, x := range excludeSubstrings {
		if x != "" && strings.Contains(name, x) {
			return true
		}
	}
	return false
}
