// Package regexp provides pattern-based implementations of
// stribot.TemperatureExtractor for the station pages.
package regexp

import (
	"regexp"

	"github.com/fwojciec/stribot"
)

// Patterns are compiled once and only read afterwards.
var (
	// nsuPattern matches "Температура около НГУ -7.8 C".
	nsuPattern = regexp.MustCompile(`Температура около НГУ (-?[\d.,]+) C`)

	// tgkPattern matches "-10,6&deg;C".
	tgkPattern = regexp.MustCompile(`(-?[\d.,]+)&deg;C`)
)

// Ensure Extractor implements stribot.TemperatureExtractor at compile time.
var _ stribot.TemperatureExtractor = (*Extractor)(nil)

// Extractor finds the first temperature matching a station-specific pattern.
// The pattern must have exactly one capture group holding the number.
type Extractor struct {
	station string
	pattern *regexp.Regexp
}

// NewNSUExtractor returns an Extractor for the NSU weather station page,
// which prints the value followed by a plain " C" unit suffix.
func NewNSUExtractor() *Extractor {
	return &Extractor{station: "NSU", pattern: nsuPattern}
}

// NewTGKExtractor returns an Extractor for the TGK status page,
// which prints the value followed by an HTML-encoded degree sign.
func NewTGKExtractor() *Extractor {
	return &Extractor{station: "TGK", pattern: tgkPattern}
}

// Extract returns the temperature captured by the first pattern match.
func (e *Extractor) Extract(body string) (float64, error) {
	m := e.pattern.FindStringSubmatch(body)
	if m == nil {
		return 0, stribot.Errorf(stribot.ENOTFOUND, "%s temperature not found", e.station)
	}
	return stribot.ParseDecimal(m[1])
}
