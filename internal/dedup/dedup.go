// Package dedup groups raw articles that ran across multiple outlets into one
// record per distinct story.
package dedup

import (
	"strings"

	"newsclips/internal/gnews"
	"newsclips/internal/outlet"
	"newsclips/internal/textnorm"
)

// Record is one article after outlet resolution and title cleanup, ready for
// grouping. Title and Outlet are display-cleaned; Link is untouched.
type Record struct {
	Title  string
	Outlet string
	Link   string
}

// Group is all records sharing one normalized title key, in first-seen order.
// The first record is the primary; its title and link are authoritative for
// the merged story. The rest only contribute their outlet names.
type Group struct {
	Key     string
	Records []Record
}

// GroupArticles partitions articles by normalized title, dropping any whose
// outlet name contains an exclusion entry. A missing outlet name becomes
// "Unknown" before the exclusion check. Group order follows the order each
// key was first observed, and members keep input order within a group, so
// the final report reads in the order stories were encountered.
//
// The second return value is how many articles the exclusion list dropped.
func GroupArticles(articles []gnews.Article, excludeSources []string) ([]Group, int) {
	index := make(map[string]int, len(articles))
	groups := make([]Group, 0, len(articles))
	excluded := 0

	for _, a := range articles {
		name := a.Outlet
		if strings.TrimSpace(name) == "" {
			name = "Unknown"
		}
		if outlet.IsExcluded(name, excludeSources) {
			excluded++
			continue
		}

		title := textnorm.CleanDisplayText(textnorm.StripOutletSuffix(a.Title, name))
		key := textnorm.NormalizeForDedup(title)

		rec := Record{
			Title:  title,
			Outlet: textnorm.CleanDisplayText(name),
			Link:   a.Link,
		}

		if i, ok := index[key]; ok {
			groups[i].Records = append(groups[i].Records, rec)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Key: key, Records: []Record{rec}})
	}

	return groups, excluded
}
