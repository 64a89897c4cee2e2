package stribot

import "time"

// TimestampLayout is the date-time format used by the TGK reading table.
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a "YYYY-MM-DD HH:MM:SS" string into a naive
// timestamp. The result carries the UTC location and is never converted.
func ParseTimestamp(s string) (time.Time, error) {
	// time.Parse accepts a single-digit hour for "15"; the table never does.
	if len(s) != len(TimestampLayout) {
		return time.Time{}, Errorf(EPARSE, "invalid timestamp %q", s)
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, Wrap(EPARSE, err, "invalid timestamp %q", s)
	}
	return t, nil
}

// FormatTimestamp renders t using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
