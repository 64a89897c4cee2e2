package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stribot"
)

// Ensure ReadingParser implements stribot.ReadingParser at compile time.
var _ stribot.ReadingParser = (*ReadingParser)(nil)

// ReadingParser extracts (timestamp, temperature) rows from the first table
// of an HTML document. The first row is treated as the header.
type ReadingParser struct{}

// NewReadingParser creates a new ReadingParser.
func NewReadingParser() *ReadingParser {
	return &ReadingParser{}
}

// ParseReadings returns the readings of every data row that parses and
// passes filter, in document order. Malformed rows are skipped.
func (p *ReadingParser) ParseReadings(html string, filter stribot.ReadingFilter) ([]stribot.TempReading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stribot.Wrap(stribot.EPARSE, err, "failed to parse HTML")
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, stribot.Errorf(stribot.ENOTFOUND, "reading table not found")
	}

	var readings []stribot.TempReading
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}

		reading, ok := parseRow(row)
		if !ok || !filter.Match(reading) {
			return
		}
		readings = append(readings, reading)
	})

	return readings, nil
}

// parseRow reads the timestamp and temperature from the first two cells.
// It reports false for rows that don't hold a valid reading.
func parseRow(row *goquery.Selection) (stribot.TempReading, bool) {
	cells := row.Find("td")
	if cells.Length() < 2 {
		return stribot.TempReading{}, false
	}

	ts, err := stribot.ParseTimestamp(strings.TrimSpace(cells.Eq(0).Text()))
	if err != nil {
		return stribot.TempReading{}, false
	}

	temp, err := stribot.ParseDecimal(strings.TrimSpace(cells.Eq(1).Text()))
	if err != nil {
		return stribot.TempReading{}, false
	}

	return stribot.TempReading{Timestamp: ts, Temperature: temp}, true
}
