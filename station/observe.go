package station

import (
	"context"

	"github.com/fwojciec/stribot"
	"golang.org/x/sync/errgroup"
)

// Observation is the outcome of one source's current-temperature lookup.
type Observation struct {
	Source      string
	Temperature float64
	Err         error
}

// Observe queries every source concurrently and returns one Observation per
// source, in the order given. A failing source never hides another's result.
func Observe(ctx context.Context, sources ...stribot.TemperatureSource) []Observation {
	observations := make([]Observation, len(sources))

	// Each source's error lives in its Observation; the group only waits.
	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			temp, err := src.CurrentTemperature(ctx)
			observations[i] = Observation{
				Source:      src.Name(),
				Temperature: temp,
				Err:         err,
			}
			return nil
		})
	}
	_ = g.Wait()

	return observations
}
