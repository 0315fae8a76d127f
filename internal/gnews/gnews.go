// Package gnews fetches Google News RSS search results for a set of query
// terms and flattens them into raw article records for the pipeline.
package gnews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	rssparser "github.com/mmcdole/gofeed/rss"

	"newsclips/internal/logger"
	"newsclips/internal/metrics"
	"newsclips/internal/retry"
)

// Article is one matched feed item as returned by the search feed. Outlet is
// the publisher name from the item's <source> element and may be empty when
// the feed omits it.
type Article struct {
	Title  string
	Link   string
	Outlet string
}

// Windows lists the accepted search time windows (the feed's "when:" values).
var Windows = []string{"1d", "3d", "7d", "14d", "30d"}

// ValidWindow reports whether w is one of the supported time windows.
func ValidWindow(w string) bool {
	for _, v := range Windows {
		if w == v {
			return true
		}
	}
	return false
}

const (
	searchBase = "https://news.google.com/rss/search"
	userAgent  = "newsclips/1.0 (+https://github.com/newsclips)"

	// Pause between per-term requests so we stay polite to the feed host.
	interRequestDelay = 500 * time.Millisecond
)

// Client queries the Google News RSS search endpoint.
type Client struct {
	http  *http.Client
	base  string
	retry retry.Config
}

func NewClient(timeout time.Duration, attempts int, retryDelay time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		base: searchBase,
		retry: retry.Config{
			Attempts: attempts,
			Delay:    retryDelay,
			Backoff:  true,
		},
	}
}

// buildQuery renders the feed query for one search term: the term itself,
// the time window and every exclusion keyword as a negated quoted term.
func buildQuery(term, window string, excludeKeywords []string) string {
	var b strings.Builder
	b.WriteString(term)
	if window != "" {
		b.WriteString(" when:" + window)
	}
	for _, kw := range excludeKeywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			b.WriteString(` -"` + kw + `"`)
		}
	}
	return b.String()
}

func searchURL(base, query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", "en-US")
	v.Set("gl", "US")
	v.Set("ceid", "US:en")
	return base + "?" + v.Encode()
}

// Search fetches and parses the result feed for one term. The RSS-level
// parser is used instead of the universal one because only the former keeps
// the per-item <source> element that carries the outlet name.
func (c *Client) Search(ctx context.Context, term, window string, excludeKeywords []string) ([]Article, error) {
	u := searchURL(c.base, buildQuery(term, window, excludeKeywords))

	var articles []Article
	err := retry.WithRetry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("search feed: unexpected status %d", resp.StatusCode)
		}

		p := &rssparser.Parser{}
		feed, err := p.Parse(resp.Body)
		if err != nil {
			return fmt.Errorf("search feed: %w", err)
		}

		articles = articles[:0]
		for _, item := range feed.Items {
			a := Article{
				Title: item.Title,
				Link:  item.Link,
			}
			if item.Source != nil {
				a.Outlet = item.Source.Title
			}
			articles = append(articles, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// SearchAll runs Search for every term in order and flattens the results,
// dropping repeats of a link already seen under an earlier term. A failing
// term is logged and skipped; the remaining terms still run. The second
// return value is the number of terms that failed.
func (c *Client) SearchAll(ctx context.Context, terms []string, window string, excludeKeywords []string) ([]Article, int) {
	var all []Article
	seen := make(map[string]struct{})
	failed := 0

	for i, term := range terms {
		if i > 0 {
			select {
			case <-ctx.Done():
				return all, failed
			case <-time.After(interRequestDelay):
			}
		}

		items, err := c.Search(ctx, term, window, excludeKeywords)
		if err != nil {
			logger.Warn("search term failed", "term", term, "error", err)
			metrics.Global.IncrementTermFailures()
			failed++
			continue
		}

		fresh := 0
		for _, a := range items {
			if _, dup := seen[a.Link]; dup {
				continue
			}
			seen[a.Link] = struct{}{}
			all = append(all, a)
			fresh++
		}
		logger.Debug("search term done", "term", term, "items", len(items), "new", fresh)
	}

	metrics.Global.AddArticlesFetched(len(all))
	return all, failed
}
