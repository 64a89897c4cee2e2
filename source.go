package stribot

import "context"

// Fetcher retrieves the body of a remote page as UTF-8 text.
type Fetcher interface {
	// Fetch returns the response body for url.
	// Returns ETRANSPORT on network failure and ESTATUS on a non-2xx response.
	Fetch(ctx context.Context, url string) (body string, err error)
}

// TemperatureExtractor locates a single temperature value in a page body.
type TemperatureExtractor interface {
	// Extract returns the first temperature found in body.
	// Returns ENOTFOUND if body has no temperature and EPARSE if the
	// matched text is not a valid number.
	Extract(body string) (float64, error)
}

// TemperatureSource reports the current outdoor temperature at one station.
type TemperatureSource interface {
	// Name returns a short label for the station, e.g. "NSU".
	Name() string

	CurrentTemperature(ctx context.Context) (float64, error)
}

// MinMaxSource reports temperature extrema over a station's recent history.
type MinMaxSource interface {
	// CurrentMinMax returns the extrema of the readings that pass filter.
	// Returns EEMPTY if no reading survives parsing and filtering.
	CurrentMinMax(ctx context.Context, filter ReadingFilter) (MinMax, error)
}
