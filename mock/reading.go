package mock

import "github.com/fwojciec/stribot"

var _ stribot.ReadingParser = (*ReadingParser)(nil)

// ReadingParser is a mock implementation of stribot.ReadingParser.
type ReadingParser struct {
	ParseReadingsFn func(html string, filter stribot.ReadingFilter) ([]stribot.TempReading, error)
}

func (p *ReadingParser) ParseReadings(html string, filter stribot.ReadingFilter) ([]stribot.TempReading, error) {
	return p.ParseReadingsFn(html, filter)
}
