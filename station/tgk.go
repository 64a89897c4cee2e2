package station

import (
	"context"
	"time"

	"github.com/fwojciec/stribot"
)

// TGK defaults.
const (
	DefaultTGKURL       = "http://tgk1.org/utils/external_view.php"
	DefaultTGKTableURL  = "http://tgk1.org/utils/table_ext.php"
	DefaultTGKTimeout   = 5 * time.Second
	DefaultTableTimeout = 10 * time.Second
)

var (
	_ stribot.TemperatureSource = (*TGK)(nil)
	_ stribot.MinMaxSource      = (*TGK)(nil)
)

// TGK reads the district-heating status page and its reading history table.
// The table is slower to render, so it has a fetcher of its own.
type TGK struct {
	Fetcher      stribot.Fetcher
	TableFetcher stribot.Fetcher
	Extractor    stribot.TemperatureExtractor
	Parser       stribot.ReadingParser

	URL      string
	TableURL string
}

// Name returns "TGK".
func (s *TGK) Name() string {
	return "TGK"
}

// CurrentTemperature fetches the status page and extracts its temperature.
func (s *TGK) CurrentTemperature(ctx context.Context) (float64, error) {
	u := s.URL
	if u == "" {
		u = DefaultTGKURL
	}

	body, err := s.Fetcher.Fetch(ctx, u)
	if err != nil {
		return 0, err
	}

	return s.Extractor.Extract(body)
}

// CurrentMinMax fetches the history table and reduces it to its extrema.
func (s *TGK) CurrentMinMax(ctx context.Context, filter stribot.ReadingFilter) (stribot.MinMax, error) {
	u := s.TableURL
	if u == "" {
		u = DefaultTGKTableURL
	}

	fetcher := s.TableFetcher
	if fetcher == nil {
		fetcher = s.Fetcher
	}

	body, err := fetcher.Fetch(ctx, u)
	if err != nil {
		return stribot.MinMax{}, err
	}

	readings, err := s.Parser.ParseReadings(body, filter)
	if err != nil {
		return stribot.MinMax{}, err
	}

	return stribot.Extrema(readings)
}
