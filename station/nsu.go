// Package station implements the NSU and TGK temperature sources on top of
// the fetching and parsing primitives.
package station

import (
	"context"
	"math/rand/v2"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/stribot"
)

// NSU defaults.
const (
	DefaultNSUURL     = "http://weather.nsu.ru/loadata.php?std=three"
	DefaultNSUTimeout = 3 * time.Second
)

var _ stribot.TemperatureSource = (*NSU)(nil)

// NSU reads the current temperature from the NSU weather station page.
type NSU struct {
	Fetcher   stribot.Fetcher
	Extractor stribot.TemperatureExtractor

	// URL of the station page. Defaults to DefaultNSUURL.
	URL string

	// Now and Rand seed the cache-busting query parameters.
	// They default to time.Now and rand.Float64.
	Now  func() time.Time
	Rand func() float64
}

// Name returns "NSU".
func (s *NSU) Name() string {
	return "NSU"
}

// CurrentTemperature fetches the station page and extracts its temperature.
func (s *NSU) CurrentTemperature(ctx context.Context) (float64, error) {
	u, err := s.requestURL()
	if err != nil {
		return 0, err
	}

	body, err := s.Fetcher.Fetch(ctx, u)
	if err != nil {
		return 0, err
	}

	return s.Extractor.Extract(body)
}

// requestURL appends the tick and rand parameters the station page expects
// to defeat intermediate caches.
func (s *NSU) requestURL() (string, error) {
	raw := s.URL
	if raw == "" {
		raw = DefaultNSUURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", stribot.Wrap(stribot.EINVALID, err, "invalid NSU URL %q", raw)
	}

	now, rnd := time.Now, rand.Float64
	if s.Now != nil {
		now = s.Now
	}
	if s.Rand != nil {
		rnd = s.Rand
	}

	q := u.Query()
	q.Set("tick", strconv.FormatInt(now().Unix(), 10))
	q.Set("rand", strconv.FormatFloat(rnd(), 'f', -1, 64))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
