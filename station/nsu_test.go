package station_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/fwojciec/stribot"
	"github.com/fwojciec/stribot/mock"
	"github.com/fwojciec/stribot/regexp"
	"github.com/fwojciec/stribot/station"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNSU_CurrentTemperature(t *testing.T) {
	t.Parallel()

	t.Run("fetches page with cache-busting parameters", func(t *testing.T) {
		t.Parallel()

		var requested string
		src := &station.NSU{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, u string) (string, error) {
					requested = u
					return "<p>Температура около НГУ -7.8 C</p>", nil
				},
			},
			Extractor: regexp.NewNSUExtractor(),
			Now:       func() time.Time { return time.Unix(1543300000, 0) },
			Rand:      func() float64 { return 0.25 },
		}

		temp, err := src.CurrentTemperature(context.Background())

		require.NoError(t, err)
		assert.InDelta(t, -7.8, temp, 1e-9)

		u, err := url.Parse(requested)
		require.NoError(t, err)
		assert.Equal(t, "weather.nsu.ru", u.Host)
		assert.Equal(t, "/loadata.php", u.Path)
		assert.Equal(t, "three", u.Query().Get("std"))
		assert.Equal(t, "1543300000", u.Query().Get("tick"))
		assert.Equal(t, "0.25", u.Query().Get("rand"))
	})

	t.Run("uses configured URL", func(t *testing.T) {
		t.Parallel()

		var requested string
		src := &station.NSU{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, u string) (string, error) {
					requested = u
					return "Температура около НГУ 1 C", nil
				},
			},
			Extractor: regexp.NewNSUExtractor(),
			URL:       "http://localhost:8080/nsu",
		}

		_, err := src.CurrentTemperature(context.Background())

		require.NoError(t, err)
		u, err := url.Parse(requested)
		require.NoError(t, err)
		assert.Equal(t, "localhost:8080", u.Host)
		assert.NotEmpty(t, u.Query().Get("tick"))
		assert.NotEmpty(t, u.Query().Get("rand"))
	})

	t.Run("propagates fetch errors without extracting", func(t *testing.T) {
		t.Parallel()

		src := &station.NSU{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", stribot.Errorf(stribot.ESTATUS, "HTTP 503 for nsu")
				},
			},
			Extractor: &mock.TemperatureExtractor{
				ExtractFn: func(string) (float64, error) {
					t.Fatal("extractor must not run after a failed fetch")
					return 0, nil
				},
			},
		}

		_, err := src.CurrentTemperature(context.Background())

		require.Error(t, err)
		assert.Equal(t, stribot.ESTATUS, stribot.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when page lacks temperature", func(t *testing.T) {
		t.Parallel()

		src := &station.NSU{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<p>Станция на обслуживании</p>", nil
				},
			},
			Extractor: regexp.NewNSUExtractor(),
		}

		_, err := src.CurrentTemperature(context.Background())

		require.Error(t, err)
		assert.Equal(t, stribot.ENOTFOUND, stribot.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed URL", func(t *testing.T) {
		t.Parallel()

		src := &station.NSU{
			Fetcher:   &mock.Fetcher{},
			Extractor: regexp.NewNSUExtractor(),
			URL:       "http://[::1",
		}

		_, err := src.CurrentTemperature(context.Background())

		require.Error(t, err)
		assert.Equal(t, stribot.EINVALID, stribot.ErrorCode(err))
	})
}
