// Package app wires one search invocation end to end: fetch, dedup,
// classify, render, write.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"newsclips/internal/config"
	"newsclips/internal/dedup"
	"newsclips/internal/docwriter"
	"newsclips/internal/gnews"
	"newsclips/internal/logger"
	"newsclips/internal/metrics"
	"newsclips/internal/outlet"
	"newsclips/internal/report"
	"newsclips/internal/scraper"
)

// Run executes one full invocation against the configured terms. The merged
// list is printed to stdout; the Word report is written under the configured
// output directory. A failing search term only costs its own results; a
// failing document write fails the run.
func Run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	matcher, err := outlet.NewMatcher(cfg.MatchMode, cfg.RegionalOutlets)
	if err != nil {
		return err
	}

	client := gnews.NewClient(cfg.RequestTimeout, cfg.RetryAttempts, cfg.RetryDelay)
	articles, failedTerms := client.SearchAll(ctx, cfg.Terms, cfg.Window, cfg.ExcludeKeywords)
	logger.Info("search finished",
		"terms", len(cfg.Terms),
		"failed_terms", failedTerms,
		"articles", len(articles))

	if cfg.ResolveUnknownOutlets {
		articles = resolveUnknownOutlets(articles, cfg.ScrapeConcurrency)
	}

	groups, excluded := dedup.GroupArticles(articles, cfg.ExcludeSources)
	metrics.Global.AddArticlesExcluded(excluded)

	duplicates := 0
	for _, g := range groups {
		duplicates += len(g.Records) - 1
	}
	metrics.Global.RecordGrouping(len(groups), duplicates)
	logger.Info("grouping finished",
		"stories", len(groups),
		"duplicates_merged", duplicates,
		"excluded", excluded)

	entries := report.Assemble(groups, matcher)

	regional := 0
	for _, e := range entries {
		if e.IsRegional {
			regional++
		}
	}
	metrics.Global.AddRegionalStories(regional)

	fmt.Fprint(os.Stdout, report.RenderList(entries))

	path, err := docwriter.Write(cfg.OutputDir, entries, time.Now())
	if err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}
	metrics.Global.IncrementDocumentsWritten()
	logger.Info("report written", "path", path, "entries", len(entries), "regional", regional)

	metrics.Global.RecordRun(time.Since(start))
	return nil
}

// resolveUnknownOutlets fills in missing publisher names by scraping the
// article pages. Links that still resolve to nothing fall through to the
// "Unknown" default during grouping.
func resolveUnknownOutlets(articles []gnews.Article, concurrency int) []gnews.Article {
	var links []string
	for _, a := range articles {
		if strings.TrimSpace(a.Outlet) == "" {
			links = append(links, a.Link)
		}
	}
	if len(links) == 0 {
		return articles
	}

	resolved := scraper.ResolveOutlets(links, concurrency)
	for i := range articles {
		if strings.TrimSpace(articles[i].Outlet) != "" {
			continue
		}
		if name, ok := resolved[articles[i].Link]; ok {
			articles[i].Outlet = name
		}
	}
	return articles
}
