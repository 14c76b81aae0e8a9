// Package export renders fortune collections as Markdown or HTML.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/harrison/fortuner/internal/models"
	"github.com/harrison/fortuner/internal/query"
)

// Format selects the export output.
type Format int

const (
	// FormatMarkdown writes Markdown.
	FormatMarkdown Format = iota
	// FormatHTML writes Markdown converted to HTML.
	FormatHTML
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Markdown renders records as Markdown: a level-two heading for each run of
// records from the same source, each record in its own fenced block.
func Markdown(records models.Collection) []byte {
	var b bytes.Buffer
	for i, group := range query.GroupBySource(records) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n", group.Source)
		for _, record := range group.Records {
			fence := fenceFor(record.Text)
			fmt.Fprintf(&b, "\n%s\n%s\n%s\n", fence, record.Text, fence)
		}
	}
	return b.Bytes()
}

// fenceFor returns a backtick fence longer than any backtick run in text.
func fenceFor(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

// Exporter writes collections in a given format.
type Exporter struct {
	format   Format
	markdown goldmark.Markdown
}

// NewExporter creates an Exporter for format.
func NewExporter(format Format) *Exporter {
	return &Exporter{
		format: format,
		markdown: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Write renders records to w.
func (e *Exporter) Write(w io.Writer, records models.Collection) error {
	source := Markdown(records)
	switch e.format {
	case FormatHTML:
		if err := e.markdown.Convert(source, w); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		return nil
	case FormatMarkdown:
		_, err := w.Write(source)
		return err
	default:
		return fmt.Errorf("unsupported export format %s", e.format)
	}
}
