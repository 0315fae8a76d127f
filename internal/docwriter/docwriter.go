// Package docwriter produces the downloadable Word report from the merged
// entry list.
package docwriter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gingfrederik/docx"

	"newsclips/internal/report"
)

// Filename is the report file naming convention: numeric month and day, no
// zero-padding, no year.
func Filename(t time.Time) string {
	return fmt.Sprintf("Sen Moran in the News %d-%d.docx", int(t.Month()), t.Day())
}

// Build renders the document: generation header, total count, the regional
// marker legend, then one paragraph per entry with the media string, the
// title as a hyperlink and the raw link in small gray text.
func Build(entries []report.MergedEntry, generatedAt time.Time) *docx.File {
	f := docx.NewFile()

	f.AddParagraph().AddText("Generated on: " + generatedAt.Format("January 2, 2006 at 3:04 PM"))
	f.AddParagraph().AddText(fmt.Sprintf("Total articles found: %d", len(entries)))
	f.AddParagraph().AddText("* indicates regional news outlet")
	f.AddParagraph()

	f.AddParagraph().AddText("News Articles").Size(16)

	for _, e := range entries {
		p := f.AddParagraph()
		p.AddText(e.MediaString + ": ")
		p.AddLink(e.Title, e.Link)
		p.AddText(" [" + e.Link + "]").Size(8).Color("808080")
	}

	return f
}

// Write builds the document and saves it under dir using the dated filename.
// Any failure is returned as-is; no partial file is reported as a success.
func Write(dir string, entries []report.MergedEntry, generatedAt time.Time) (string, error) {
	path := filepath.Join(dir, Filename(generatedAt))
	if err := Build(entries, generatedAt).Save(path); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
