package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/stribot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Sources are queried concurrently by the current command, in order.
	Sources []stribot.TemperatureSource
	MinMax  stribot.MinMaxSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool    `short:"v" env:"STRIBOT_VERBOSE" help:"Log fetches to stderr"`
	RateLimit float64 `name:"rate-limit" env:"STRIBOT_RATE_LIMIT" default:"0" help:"Maximum requests per second per source page (0 disables)"`

	NSUURL      string `name:"nsu-url" env:"STRIBOT_NSU_URL" default:"${nsu_url}" help:"NSU weather station page"`
	TGKURL      string `name:"tgk-url" env:"STRIBOT_TGK_URL" default:"${tgk_url}" help:"TGK status page"`
	TGKTableURL string `name:"tgk-table-url" env:"STRIBOT_TGK_TABLE_URL" default:"${tgk_table_url}" help:"TGK reading history table"`

	NSUTimeout   time.Duration `name:"nsu-timeout" env:"STRIBOT_NSU_TIMEOUT" default:"${nsu_timeout}" help:"Timeout for the NSU page"`
	TGKTimeout   time.Duration `name:"tgk-timeout" env:"STRIBOT_TGK_TIMEOUT" default:"${tgk_timeout}" help:"Timeout for the TGK status page"`
	TableTimeout time.Duration `name:"table-timeout" env:"STRIBOT_TABLE_TIMEOUT" default:"${table_timeout}" help:"Timeout for the TGK history table"`

	Current CurrentCmd `cmd:"" help:"Print the current temperature of every station"`
	MinMax  MinMaxCmd  `cmd:"" name:"minmax" help:"Print the coldest and warmest TGK readings"`
}

// CurrentCmd is the "current" subcommand.
type CurrentCmd struct{}

// MinMaxCmd is the "minmax" subcommand.
type MinMaxCmd struct {
	Since string `help:"Ignore readings before this time (YYYY-MM-DD HH:MM:SS)" placeholder:"TIMESTAMP"`
}
