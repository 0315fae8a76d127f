package docwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsclips/internal/report"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC), "Sen Moran in the News 3-7.docx"},
		{time.Date(2025, time.November, 21, 0, 0, 0, 0, time.UTC), "Sen Moran in the News 11-21.docx"},
		{time.Date(2025, time.January, 2, 23, 59, 0, 0, time.UTC), "Sen Moran in the News 1-2.docx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.date))
	}
}

func TestWriteCreatesDocument(t *testing.T) {
	entries := []report.MergedEntry{
		{Title: "Moran Wins Vote", Link: "https://a", MediaString: "*KSN-TV (also ran in *WIBW)", IsRegional: true},
		{Title: "Moran Visits Hays", Link: "https://b", MediaString: "Hays Post"},
	}
	generatedAt := time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC)

	dir := t.TempDir()
	path, err := Write(dir, entries, generatedAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Sen Moran in the News 6-4.docx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteEmptyEntries(t *testing.T) {
	// An empty result set still produces a valid report with a zero count.
	path, err := Write(t.TempDir(), nil, time.Now())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteBadDirectory(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "does", "not", "exist"), nil, time.Now())
	assert.Error(t, err)
}
