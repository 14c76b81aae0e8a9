package query

import (
	"regexp"

	"github.com/harrison/fortuner/internal/models"
)

// Printer receives query output.
type Printer interface {
	Header(source string) error
	Record(text string) error
	Fortune(text string) error
	Fallback() error
}

// FilterAndReport prints every record matching re. A header naming the source
// precedes each run of matches from the same source. It returns the number
// of records printed; zero matches print nothing.
func FilterAndReport(p Printer, collection models.Collection, re *regexp.Regexp) (int, error) {
	matches := Filter(collection, re)
	for _, group := range GroupBySource(matches) {
		if err := p.Header(group.Source); err != nil {
			return 0, err
		}
		for _, record := range group.Records {
			if err := p.Record(record.Text); err != nil {
				return 0, err
			}
		}
	}
	return len(matches), nil
}

// ReportRandom prints one randomly chosen fortune, or the fallback sentinel
// when the collection is empty. The chosen record is returned with ok=true.
func ReportRandom(p Printer, collection models.Collection, src Source) (models.Record, bool, error) {
	record, ok := PickRecord(collection, src)
	if !ok {
		return models.Record{}, false, p.Fallback()
	}
	return record, true, p.Fortune(record.Text)
}
