package gnews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"Jerry Moran" - Google News</title>
    <link>https://news.google.com</link>
    <item>
      <title>Moran Wins Vote - KSN-TV</title>
      <link>https://news.example.com/a</link>
      <source url="https://www.ksn.com">KSN-TV</source>
    </item>
    <item>
      <title>Moran Statement on Farm Bill</title>
      <link>https://news.example.com/b</link>
    </item>
  </channel>
</rss>`

func testClient(base string) *Client {
	c := NewClient(5*time.Second, 1, 0)
	c.base = base
	return c
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		window  string
		exclude []string
		want    string
	}{
		{"term only", "Jerry Moran", "", nil, "Jerry Moran"},
		{"with window", "Jerry Moran", "7d", nil, "Jerry Moran when:7d"},
		{"with exclusions", "Jerry Moran", "1d", []string{"basketball", "obituary"},
			`Jerry Moran when:1d -"basketball" -"obituary"`},
		{"blank exclusions dropped", "Moran", "1d", []string{" ", ""}, "Moran when:1d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildQuery(tt.term, tt.window, tt.exclude))
		})
	}
}

func TestSearchURL(t *testing.T) {
	u := searchURL("https://news.google.com/rss/search", `Jerry Moran when:1d`)
	assert.Contains(t, u, "q=Jerry+Moran+when%3A1d")
	assert.Contains(t, u, "hl=en-US")
	assert.Contains(t, u, "ceid=US%3Aen")
}

func TestValidWindow(t *testing.T) {
	for _, w := range []string{"1d", "3d", "7d", "14d", "30d"} {
		assert.True(t, ValidWindow(w), w)
	}
	assert.False(t, ValidWindow("2d"))
	assert.False(t, ValidWindow(""))
}

func TestSearchParsesSourceElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "Jerry Moran")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedFixture))
	}))
	defer srv.Close()

	articles, err := testClient(srv.URL).Search(context.Background(), "Jerry Moran", "1d", nil)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, Article{
		Title:  "Moran Wins Vote - KSN-TV",
		Link:   "https://news.example.com/a",
		Outlet: "KSN-TV",
	}, articles[0])

	// Item without a <source> keeps an empty outlet.
	assert.Equal(t, "", articles[1].Outlet)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Search(context.Background(), "Jerry Moran", "1d", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestSearchAllDedupsLinksAndSurvivesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Query().Get("q"), "failing") {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(feedFixture))
	}))
	defer srv.Close()

	terms := []string{"Jerry Moran", "failing term", "Senator Moran"}
	articles, failed := testClient(srv.URL).SearchAll(context.Background(), terms, "1d", nil)

	assert.Equal(t, 1, failed)
	// Both healthy terms return the same two links; each link appears once.
	require.Len(t, articles, 2)
	assert.Equal(t, "https://news.example.com/a", articles[0].Link)
	assert.Equal(t, "https://news.example.com/b", articles[1].Link)
}

func TestSearchAllEmptyTerms(t *testing.T) {
	articles, failed := testClient("http://127.0.0.1:0").SearchAll(context.Background(), nil, "1d", nil)
	assert.Empty(t, articles)
	assert.Zero(t, failed)
}
