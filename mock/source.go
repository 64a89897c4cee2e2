package mock

import (
	"context"

	"github.com/fwojciec/stribot"
)

var (
	_ stribot.TemperatureSource = (*TemperatureSource)(nil)
	_ stribot.MinMaxSource      = (*MinMaxSource)(nil)
)

// TemperatureSource is a mock implementation of stribot.TemperatureSource.
type TemperatureSource struct {
	NameFn               func() string
	CurrentTemperatureFn func(ctx context.Context) (float64, error)
}

func (s *TemperatureSource) Name() string {
	return s.NameFn()
}

func (s *TemperatureSource) CurrentTemperature(ctx context.Context) (float64, error) {
	return s.CurrentTemperatureFn(ctx)
}

// MinMaxSource is a mock implementation of stribot.MinMaxSource.
type MinMaxSource struct {
	CurrentMinMaxFn func(ctx context.Context, filter stribot.ReadingFilter) (stribot.MinMax, error)
}

func (s *MinMaxSource) CurrentMinMax(ctx context.Context, filter stribot.ReadingFilter) (stribot.MinMax, error) {
	return s.CurrentMinMaxFn(ctx, filter)
}
