package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/stribot"
	"github.com/fwojciec/stribot/goquery"
	stribothttp "github.com/fwojciec/stribot/http"
	"github.com/fwojciec/stribot/regexp"
	stribotslog "github.com/fwojciec/stribot/slog"
	"github.com/fwojciec/stribot/station"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !ErrorReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	var helped bool
	parser, err := kong.New(cli,
		kong.Name("stribot"),
		kong.Description("Report outdoor temperatures from the NSU and TGK stations"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }), // Don't exit on help
		kong.Vars{
			"nsu_url":       station.DefaultNSUURL,
			"tgk_url":       station.DefaultTGKURL,
			"tgk_table_url": station.DefaultTGKTableURL,
			"nsu_timeout":   station.DefaultNSUTimeout.String(),
			"tgk_timeout":   station.DefaultTGKTimeout.String(),
			"table_timeout": station.DefaultTableTimeout.String(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stribot --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	// Each source owns its fetchers so their timeouts stay independent.
	newFetcher := func(timeout time.Duration) *stribotslog.LoggingFetcher {
		return stribotslog.NewLoggingFetcher(
			stribothttp.NewFetcher(
				stribothttp.WithTimeout(timeout),
				stribothttp.WithRateLimit(cli.RateLimit),
				stribothttp.WithUserAgent(userAgent),
			),
			logger,
		)
	}

	tgk := &station.TGK{
		Fetcher:      newFetcher(cli.TGKTimeout),
		TableFetcher: newFetcher(cli.TableTimeout),
		Extractor:    regexp.NewTGKExtractor(),
		Parser:       goquery.NewReadingParser(),
		URL:          cli.TGKURL,
		TableURL:     cli.TGKTableURL,
	}
	nsu := &station.NSU{
		Fetcher:   newFetcher(cli.NSUTimeout),
		Extractor: regexp.NewNSUExtractor(),
		URL:       cli.NSUURL,
	}

	deps.Sources = []stribot.TemperatureSource{
		stribotslog.NewLoggingTemperatureSource(tgk, logger),
		stribotslog.NewLoggingTemperatureSource(nsu, logger),
	}
	deps.MinMax = stribotslog.NewLoggingMinMaxSource(tgk, logger)

	return kongCtx.Run(deps)
}

// reportedError marks an error whose message a command already wrote to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reported marks err as already written to stderr. It returns nil for nil.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// ErrorReported reports whether a command already printed err to stderr.
func ErrorReported(err error) bool {
	var e *reportedError
	return errors.As(err, &e)
}

const userAgent = "stribot/1.0 (+https://github.com/fwojciec/stribot)"

// newLogger returns a human-readable stderr logger when verbose is set and a
// discarding logger otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}
