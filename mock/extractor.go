package mock

import "github.com/fwojciec/stribot"

var _ stribot.TemperatureExtractor = (*TemperatureExtractor)(nil)

// TemperatureExtractor is a mock implementation of stribot.TemperatureExtractor.
type TemperatureExtractor struct {
	ExtractFn func(body string) (float64, error)
}

func (e *TemperatureExtractor) Extract(body string) (float64, error) {
	return e.ExtractFn(body)
}
