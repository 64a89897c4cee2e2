package station_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/stribot"
	"github.com/fwojciec/stribot/mock"
	"github.com/fwojciec/stribot/station"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source(name string, temp float64, err error, delay time.Duration) *mock.TemperatureSource {
	return &mock.TemperatureSource{
		NameFn: func() string { return name },
		CurrentTemperatureFn: func(ctx context.Context) (float64, error) {
			time.Sleep(delay)
			return temp, err
		},
	}
}

func TestObserve(t *testing.T) {
	t.Parallel()

	t.Run("returns observations in source order", func(t *testing.T) {
		t.Parallel()

		obs := station.Observe(context.Background(),
			source("TGK", -10.6, nil, 30*time.Millisecond),
			source("NSU", -7.8, nil, 0),
		)

		require.Len(t, obs, 2)
		assert.Equal(t, station.Observation{Source: "TGK", Temperature: -10.6}, obs[0])
		assert.Equal(t, station.Observation{Source: "NSU", Temperature: -7.8}, obs[1])
	})

	t.Run("reports failure alongside success", func(t *testing.T) {
		t.Parallel()

		failure := stribot.Errorf(stribot.ETRANSPORT, "timeout")

		obs := station.Observe(context.Background(),
			source("TGK", 0, failure, 0),
			source("NSU", -7.8, nil, 10*time.Millisecond),
		)

		require.Len(t, obs, 2)
		assert.Equal(t, "TGK", obs[0].Source)
		assert.Equal(t, stribot.ETRANSPORT, stribot.ErrorCode(obs[0].Err))
		assert.NoError(t, obs[1].Err)
		assert.InDelta(t, -7.8, obs[1].Temperature, 1e-9)
	})

	t.Run("runs sources concurrently", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		station.Observe(context.Background(),
			source("TGK", 1, nil, 100*time.Millisecond),
			source("NSU", 2, nil, 100*time.Millisecond),
		)

		assert.Less(t, time.Since(start), 190*time.Millisecond)
	})

	t.Run("no sources yields no observations", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, station.Observe(context.Background()))
	})
}
