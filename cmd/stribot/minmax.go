package main

import (
	"fmt"

	"github.com/fwojciec/stribot"
)

// Run executes the minmax command.
func (c *MinMaxCmd) Run(deps *Dependencies) error {
	var filter stribot.ReadingFilter
	if c.Since != "" {
		since, err := stribot.ParseTimestamp(c.Since)
		if err != nil {
			err = stribot.Wrap(stribot.EINVALID, err, "invalid --since %q, expected YYYY-MM-DD HH:MM:SS", c.Since)
			fmt.Fprintf(deps.Stderr, "error: %s\n", stribot.ErrorMessage(err))
			return reported(err)
		}
		filter.NotBefore = &since
	}

	mm, err := deps.MinMax.CurrentMinMax(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stribot.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "MIN %s at %s\n", formatTemperature(mm.Min.Temperature), stribot.FormatTimestamp(mm.Min.Timestamp))
	fmt.Fprintf(deps.Stdout, "MAX %s at %s\n", formatTemperature(mm.Max.Temperature), stribot.FormatTimestamp(mm.Max.Timestamp))

	return nil
}
