package stribot

import "time"

// TempReading is a single timestamped temperature reading.
type TempReading struct {
	Timestamp   time.Time
	Temperature float64
}

// MinMax holds the coldest and warmest readings of a reading set.
type MinMax struct {
	Min TempReading
	Max TempReading
}

// ReadingFilter restricts which readings are extracted from a table.
type ReadingFilter struct {
	// NotBefore excludes readings taken strictly earlier than it.
	// Nil means no lower bound.
	NotBefore *time.Time
}

// Match reports whether r passes the filter.
func (f ReadingFilter) Match(r TempReading) bool {
	if f.NotBefore == nil {
		return true
	}
	return !r.Timestamp.Before(*f.NotBefore)
}

// Extrema returns the lowest and highest readings in traversal order.
// When several readings share the extreme temperature, the first one wins.
// Returns EEMPTY if readings is empty.
func Extrema(readings []TempReading) (MinMax, error) {
	if len(readings) == 0 {
		return MinMax{}, Errorf(EEMPTY, "no temperature readings")
	}

	mm := MinMax{Min: readings[0], Max: readings[0]}
	for _, r := range readings[1:] {
		if r.Temperature < mm.Min.Temperature {
			mm.Min = r
		}
		if r.Temperature > mm.Max.Temperature {
			mm.Max = r
		}
	}
	return mm, nil
}

// ReadingParser extracts timestamped readings from an HTML reading table.
type ReadingParser interface {
	// ParseReadings returns readings in document order. Rows that fail to
	// parse are skipped. Returns ENOTFOUND if the document has no table.
	ParseReadings(html string, filter ReadingFilter) ([]TempReading, error)
}
