package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stribot"
)

// Ensure the logging sources implement their interfaces.
var (
	_ stribot.TemperatureSource = (*LoggingTemperatureSource)(nil)
	_ stribot.MinMaxSource      = (*LoggingMinMaxSource)(nil)
)

// LoggingTemperatureSource wraps a TemperatureSource with debug logging.
type LoggingTemperatureSource struct {
	next   stribot.TemperatureSource
	logger *slog.Logger
}

// NewLoggingTemperatureSource creates a new LoggingTemperatureSource.
func NewLoggingTemperatureSource(next stribot.TemperatureSource, logger *slog.Logger) *LoggingTemperatureSource {
	return &LoggingTemperatureSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingTemperatureSource) Name() string {
	return s.next.Name()
}

// CurrentTemperature delegates to the wrapped source and logs the outcome.
func (s *LoggingTemperatureSource) CurrentTemperature(ctx context.Context) (temp float64, err error) {
	defer func(begin time.Time) {
		s.logger.Info("current temperature",
			"source", s.next.Name(),
			"temperature", temp,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CurrentTemperature(ctx)
}

// LoggingMinMaxSource wraps a MinMaxSource with debug logging.
type LoggingMinMaxSource struct {
	next   stribot.MinMaxSource
	logger *slog.Logger
}

// NewLoggingMinMaxSource creates a new LoggingMinMaxSource.
func NewLoggingMinMaxSource(next stribot.MinMaxSource, logger *slog.Logger) *LoggingMinMaxSource {
	return &LoggingMinMaxSource{next: next, logger: logger}
}

// CurrentMinMax delegates to the wrapped source and logs the extrema.
func (s *LoggingMinMaxSource) CurrentMinMax(ctx context.Context, filter stribot.ReadingFilter) (mm stribot.MinMax, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if err == nil {
			attrs = append(attrs, "min", mm.Min.Temperature, "max", mm.Max.Temperature)
		}
		if filter.NotBefore != nil {
			attrs = append(attrs, "not_before", stribot.FormatTimestamp(*filter.NotBefore))
		}
		s.logger.Info("min max", attrs...)
	}(time.Now())
	return s.next.CurrentMinMax(ctx, filter)
}
