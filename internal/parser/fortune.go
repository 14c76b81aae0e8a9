// Package parser reads fortune files into records.
//
// A fortune file is plain text where each record is terminated by a line
// containing only "%". Lines after the last delimiter never form a record.
package parser

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/harrison/fortuner/internal/models"
)

// Span is a delimiter-terminated record together with its byte offset in the input.
type Span struct {
	Text   string
	Offset int64
}

// ScanResult holds the spans of one input and the offset just past the last delimiter.
type ScanResult struct {
	Spans []Span
	End   int64
	// Dangling is set when text follows the last delimiter
	Dangling bool
}

// Scan reads every record from in. Read failures are returned unwrapped.
func Scan(in Input) (*ScanResult, error) {
	result := &ScanResult{}
	var (
		buffer []string
		pos    int64
		start  int64
	)

	for {
		line, err := in.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		pos += int64(len(line))

		if line != "" {
			trimmed := trimLineEnding(line)
			if trimmed == models.Delimiter {
				if text := strings.Join(buffer, "\n"); text != "" {
					result.Spans = append(result.Spans, Span{Text: text, Offset: start})
				}
				buffer = buffer[:0]
				start = pos
				result.End = pos
			} else {
				buffer = append(buffer, trimmed)
			}
		}

		if err != nil {
			// Anything left in buffer was never terminated and is dropped
			result.Dangling = strings.TrimSpace(strings.Join(buffer, "")) != ""
			return result, nil
		}
	}
}

// ParseInput reads all records from a single input, tagging them with its source name.
func ParseInput(in Input) ([]models.Record, error) {
	scanned, err := Scan(in)
	if err != nil {
		return nil, err
	}
	records := make([]models.Record, 0, len(scanned.Spans))
	for _, span := range scanned.Spans {
		records = append(records, models.Record{Source: in.Source(), Text: span.Text})
	}
	return records, nil
}

// Parse is Parser.Parse with os.Stdin.
func Parse(files []string) (models.Collection, error) {
	return New(os.Stdin).Parse(files)
}

// Parse reads the given files in order and concatenates their records.
// The first open or read failure aborts parsing and no records are returned.
func (p *Parser) Parse(files []string) (models.Collection, error) {
	collection := models.Collection{}
	for _, path := range files {
		records, err := p.parseOne(path)
		if err != nil {
			return nil, err
		}
		collection = append(collection, records...)
	}
	return collection, nil
}

// parseOne holds a single open file for the duration of its read.
func (p *Parser) parseOne(path string) ([]models.Record, error) {
	in, err := p.Open(path)
	if err != nil {
		return nil, models.NewSourceError(models.OpenFailed, path, err)
	}
	defer in.Close()

	records, err := ParseInput(in)
	if err != nil {
		return nil, models.NewSourceError(models.ReadFailed, path, err)
	}
	return records, nil
}
