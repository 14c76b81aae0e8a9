// Package query answers questions about a parsed fortune collection: either
// every record matching a pattern, or one record chosen at random.
package query

import (
	"fmt"
	"regexp"

	"github.com/harrison/fortuner/internal/models"
)

// CompilePattern compiles a pattern, optionally ignoring case.
func CompilePattern(pattern string, insensitive bool) (*regexp.Regexp, error) {
	expr := pattern
	if insensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Filter returns the records whose text matches re, in collection order.
func Filter(collection models.Collection, re *regexp.Regexp) models.Collection {
	matches := models.Collection{}
	for _, record := range collection {
		if re.MatchString(record.Text) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Group is a run of consecutive records from the same source.
type Group struct {
	Source  string
	Records []models.Record
}

// GroupBySource splits records into runs wherever the source changes.
// A source that reappears later starts a new group.
func GroupBySource(records models.Collection) []Group {
	var groups []Group
	for _, record := range records {
		if len(groups) == 0 || groups[len(groups)-1].Source != record.Source {
			groups = append(groups, Group{Source: record.Source})
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, record)
	}
	return groups
}
