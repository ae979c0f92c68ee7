package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const seedPattern = "seed"

// game drives one universe frame by frame for the terminal
type game struct {
	config   utils.Config
	universe *model.Universe
	renderer model.Renderer
	history  *model.History
	stats    *utils.Stats
	out      io.Writer

	generation    int
	stagnantCount int
	lastFrameTime time.Time
}

// newGame sets up the initial game state
func newGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	universe, err := initialUniverse(config, logger)
	if err != nil {
		return nil, err
	}

	return &game{
		config:        config,
		universe:      universe,
		renderer:      newRenderer(config),
		history:       model.NewHistory(model.DefaultHistorySize),
		stats:         utils.NewStats(),
		out:           out,
		lastFrameTime: time.Now(),
	}, nil
}

// initialUniverse builds the deterministic seed or an empty universe with
// the configured pattern roughly in the middle
func initialUniverse(config utils.Config, logger *slog.Logger) (*model.Universe, error) {
	var opts []model.Option
	if logger != nil {
		opts = append(opts, model.WithLogger(logger))
	}

	if config.Pattern == "" || config.Pattern == seedPattern {
		u, err := model.NewUniverse(config.Width, config.Height, opts...)
		return u, errors.Wrap(err, "[initialUniverse] failed to create seeded universe")
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initialUniverse] failed to resolve pattern")
	}
	u, err := model.NewEmptyUniverse(config.Width, config.Height, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initialUniverse] failed to create empty universe")
	}
	if err = u.Place(pattern, config.Height/2, config.Width/2); err != nil {
		return nil, errors.Wrap(err, "[initialUniverse] failed to place pattern")
	}
	return u, nil
}

func newRenderer(config utils.Config) model.Renderer {
	if config.RenderMode == utils.Canvas {
		return model.NewCanvasRenderer(config.Color)
	}
	return &model.TextRenderer{}
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Grid: %dx%d | Render: %v | Initial living cells: %d\n",
		g.universe.Width(), g.universe.Height(), g.config.RenderMode, g.universe.LiveCells())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState records the current frame and returns status information
func (g *game) updateGameState() (int, float64, string) {
	livingCells := g.universe.LiveCells()
	density := float64(livingCells) / float64(len(g.universe.GetCells())) * 100

	frameStart := time.Now()
	g.stats.Update(g.generation, livingCells, frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	if g.history.IsStagnant(g.universe) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(g.universe)

	status := "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	fmt.Fprintln(g.out)
}

// checkStopConditions determines if the run should end
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// frame renders the current generation and advances the universe.
// It reports false once a stop condition is hit.
func (g *game) frame() (bool, error) {
	if g.config.ClearScreen {
		if err := model.ClearScreen(g.out); err != nil {
			return false, err
		}
	}

	livingCells, density, status := g.updateGameState()
	g.displayGameStatus(livingCells, density, status)
	if err := g.renderer.Display(g.out, g.universe); err != nil {
		return false, errors.Wrapf(err, "[frame] failed to display generation %d", g.generation)
	}

	if stop, reason := checkStopConditions(livingCells, g.stagnantCount, g.generation, g.config); stop {
		fmt.Fprintf(g.out, "\n🏁 Stopped: %s\n", reason)
		return false, nil
	}

	g.universe.Tick()
	g.generation++
	return true, nil
}

// run plays frames until a stop condition or ctx is cancelled
func (g *game) run(ctx context.Context) error {
	g.displayGameInfo()
	for {
		more, err := g.frame()
		if err != nil || !more {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.config.FrameRate):
		}
	}
}

// displayFinalStats prints the summary once the run is over
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
