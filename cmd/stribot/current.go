package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fwojciec/stribot"
	"github.com/fwojciec/stribot/station"
)

// Run executes the current command.
func (c *CurrentCmd) Run(deps *Dependencies) error {
	var errs []error
	for _, obs := range station.Observe(deps.Ctx, deps.Sources...) {
		if obs.Err != nil {
			fmt.Fprintf(deps.Stderr, "TEMP %s error: %s\n", obs.Source, stribot.ErrorMessage(obs.Err))
			errs = append(errs, fmt.Errorf("%s: %w", obs.Source, obs.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "TEMP %s %s\n", obs.Source, formatTemperature(obs.Temperature))
	}

	return reported(errors.Join(errs...))
}

func formatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
