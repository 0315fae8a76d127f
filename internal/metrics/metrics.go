package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched  int64
	TermFailures     int64
	ArticlesExcluded int64
	GroupsEmitted    int64
	DuplicatesMerged int64
	RegionalStories  int64
	DocumentsWritten int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddArticlesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) IncrementTermFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TermFailures++
}

func (m *Metrics) AddArticlesExcluded(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesExcluded += int64(n)
}

func (m *Metrics) RecordGrouping(groups, duplicates int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupsEmitted += int64(groups)
	m.DuplicatesMerged += int64(duplicates)
}

func (m *Metrics) AddRegionalStories(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegionalStories += int64(n)
}

func (m *Metrics) IncrementDocumentsWritten() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocumentsWritten++
}

func (m *Metrics) RecordRun(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = d
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":     m.ArticlesFetched,
		"term_failures":        m.TermFailures,
		"articles_excluded":    m.ArticlesExcluded,
		"groups_emitted":       m.GroupsEmitted,
		"duplicates_merged":    m.DuplicatesMerged,
		"regional_stories":     m.RegionalStories,
		"documents_written":    m.DocumentsWritten,
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_error_time":      m.LastErrorTime.Format(time.RFC3339),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}
