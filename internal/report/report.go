// Package report turns story groups into the flat, attributed, classified
// entry list consumed by the screen view and the document writer.
package report

import (
	"fmt"
	"strings"

	"newsclips/internal/dedup"
	"newsclips/internal/outlet"
)

// MergedEntry is one deduplicated story: primary title and link, the combined
// outlet attribution string and the regional flag of the primary outlet.
type MergedEntry struct {
	Title       string
	Link        string
	MediaString string
	IsRegional  bool
}

// Assemble flattens groups into merged entries, in group order. The primary
// outlet and every duplicate outlet are independently star-marked when
// regional. Duplicate outlets are joined as "A, B and C". Empty input yields
// an empty result.
func Assemble(groups []dedup.Group, m outlet.Matcher) []MergedEntry {
	entries := make([]MergedEntry, 0, len(groups))

	for _, g := range groups {
		if len(g.Records) == 0 {
			continue
		}
		primary := g.Records[0]
		media := markRegional(primary.Outlet, m)

		if dups := g.Records[1:]; len(dups) > 0 {
			names := make([]string, len(dups))
			for i, d := range dups {
				names[i] = markRegional(d.Outlet, m)
			}
			media += " (also ran in " + joinOutlets(names) + ")"
		}

		entries = append(entries, MergedEntry{
			Title:       primary.Title,
			Link:        primary.Link,
			MediaString: media,
			IsRegional:  m.IsRegional(primary.Outlet),
		})
	}

	return entries
}

func markRegional(name string, m outlet.Matcher) string {
	if m.IsRegional(name) {
		return "*" + name
	}
	return name
}

// joinOutlets renders one name as-is and several as "A, B and C".
func joinOutlets(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// RenderList formats entries as the numbered on-screen listing, one line per
// story.
func RenderList(entries []MergedEntry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s: %s (%s)\n", i+1, e.MediaString, e.Title, e.Link)
	}
	return b.String()
}
