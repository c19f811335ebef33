package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/internal/synth"
	"github.com/okian/djtour/pkg/logger"
)

const (
	defaultRows   = 200
	defaultOutput = "data/dj_events.csv"
)

type options struct {
	rows      int
	seed      uint64
	output    string
	start     string
	end       string
	logFormat string
	help      bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("generate-data", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVar(&o.rows, "rows", defaultRows, "Number of rows to generate")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringVar(&o.output, "output", defaultOutput, "CSV file to write")
	fs.StringVar(&o.start, "start", synth.DefaultStart.Format(model.DateLayout), "First date of the window (YYYY-MM-DD)")
	fs.StringVar(&o.end, "end", synth.DefaultEnd.Format(model.DateLayout), "Day after the last date of the window (YYYY-MM-DD)")
	fs.StringVar(&o.logFormat, "log-format", "text", "Log format: text or json")
	fs.BoolVar(&o.help, "help", false, "Show help")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.help {
		fs.Usage()
	}
	return o, nil
}

func run(ctx context.Context, o options) error {
	start, err := model.ParseDate(o.start)
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}
	end, err := model.ParseDate(o.end)
	if err != nil {
		return fmt.Errorf("invalid -end: %w", err)
	}
	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log := logger.Named("generate-data")
	events, err := synth.New(
		synth.WithRows(o.rows),
		synth.WithSeed(seed),
		synth.WithWindow(start, end),
		synth.WithLogger(log),
	).Generate(ctx)
	if err != nil {
		return err
	}
	if err := synth.WriteFile(o.output, events); err != nil {
		return err
	}
	log.Info(ctx, "dataset written",
		logger.String("output", o.output),
		logger.Int("rows", len(events)),
		logger.Any("seed", seed),
	)
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if o.help {
		return
	}

	if err := logger.Init(logger.WithFormat(o.logFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o); err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
