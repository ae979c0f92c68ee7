package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var errInterrupted = errors.New("interrupted")

// cliOptions holds flag values; zero values mean "not given"
type cliOptions struct {
	configFile  string
	width       uint32
	height      uint32
	generations int
	interval    time.Duration
	renderMode  string
	pattern     string
	noColor     bool
	noClear     bool
	trace       bool
}

func parseFlags() cliOptions {
	opts := cliOptions{generations: -1}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a wrapping grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.configFile, "c", "config", "Path to a JSON config file")
	flaggy.UInt32(&opts.width, "x", "width", "Number of columns")
	flaggy.UInt32(&opts.height, "y", "height", "Number of rows")
	flaggy.Int(&opts.generations, "g", "generations", "Stop after this many generations (0 runs forever)")
	flaggy.Duration(&opts.interval, "i", "interval", "Delay between frames, for example 150ms")
	flaggy.String(&opts.renderMode, "r", "render", "Render mode [canvas|text]")
	flaggy.String(&opts.pattern, "p", "pattern", "Initial pattern ["+strings.Join(append([]string{seedPattern}, model.PatternNames()...), "|")+"]")
	flaggy.Bool(&opts.noColor, "", "no-color", "Disable colours in canvas mode")
	flaggy.Bool(&opts.noClear, "", "no-clear", "Do not clear the screen between frames")
	flaggy.Bool(&opts.trace, "t", "trace", "Log every cell evaluation to stderr")
	flaggy.Parse()

	return opts
}

// buildConfig layers the config file, then explicit flags, over the defaults
func buildConfig(opts cliOptions) (utils.Config, error) {
	config := utils.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configFile); err != nil {
			return config, err
		}
	}

	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.generations >= 0 {
		config.MaxGenerations = opts.generations
	}
	if opts.interval > 0 {
		config.FrameRate = opts.interval
	}
	if opts.renderMode != "" {
		mode, err := utils.ParseRenderOptions(opts.renderMode)
		if err != nil {
			return config, err
		}
		config.RenderMode = mode
	}
	if opts.pattern != "" {
		config.Pattern = opts.pattern
	}
	if opts.noColor {
		config.Color = false
	}
	if opts.noClear {
		config.ClearScreen = false
	}

	return config, errors.Wrap(config.Validate(), "[buildConfig] invalid flags")
}

func run(config utils.Config, logger *slog.Logger) error {
	g, err := newGame(config, os.Stdout, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case <-sigChan:
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})

	err = eg.Wait()
	if errors.Is(err, errInterrupted) {
		fmt.Println("\n🛑 Shutting down gracefully...")
		err = nil
	}
	g.displayFinalStats()
	return err
}

func main() {
	opts := parseFlags()

	config, err := buildConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var logger *slog.Logger
	if opts.trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err = run(config, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
