// Package scraper resolves missing outlet names by reading the article page
// itself. Used as an optional fallback when the search feed omits the
// publisher.
package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsclips/internal/logger"
)

const requestTimeout = 15 * time.Second

// OutletFromPage fetches one article page and extracts the publisher name
// from its metadata: og:site_name first, then the tail of the <title>
// element after the last " - " separator.
func OutletFromPage(link string) (string, error) {
	client := &http.Client{Timeout: requestTimeout}

	resp, err := client.Get(link)
	if err != nil {
		return "", fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("load page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	if name, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if i := strings.LastIndex(title, " - "); i >= 0 {
		if tail := strings.TrimSpace(title[i+3:]); tail != "" {
			return tail, nil
		}
	}

	return "", fmt.Errorf("no publisher metadata in %s", link)
}

// ResolveOutlets looks up publisher names for the given links with a bounded
// worker pool. Links that cannot be resolved are simply absent from the
// result; the caller falls back to "Unknown".
func ResolveOutlets(links []string, concurrency int) map[string]string {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = make(map[string]string, len(links))
		jobs   = make(chan string)
	)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range jobs {
				name, err := OutletFromPage(link)
				if err != nil {
					logger.Debug("outlet lookup failed", "link", link, "error", err)
					continue
				}
				mu.Lock()
				result[link] = name
				mu.Unlock()
			}
		}()
	}

	for _, link := range links {
		jobs <- link
	}
	close(jobs)
	wg.Wait()

	logger.Debug("outlet lookup done", "links", len(links), "resolved", len(result))
	return result
}
