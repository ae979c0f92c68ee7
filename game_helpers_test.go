package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 8
	config.Height = 8
	config.FrameRate = 0
	config.ClearScreen = false
	config.Color = false
	return config
}

func TestInitialUniverse(t *testing.T) {
	config := testConfig()

	seeded, err := initialUniverse(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	if seeded.LiveCells() == 0 {
		t.Fatal("seeded universe is empty")
	}

	config.Pattern = "block"
	block, err := initialUniverse(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	if block.LiveCells() != 4 {
		t.Fatalf("block universe has %d live cells, want 4", block.LiveCells())
	}

	config.Pattern = "pulsar"
	if _, err = initialUniverse(config, nil); !errors.Is(err, model.ErrUnknownPattern) {
		t.Fatalf("unknown pattern error = %v, want ErrUnknownPattern", err)
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 10
	config.StagnationThreshold = 3

	tests := []struct {
		name                              string
		livingCells, stagnant, generation int
		stop                              bool
		reason                            string
	}{
		{"running", 5, 0, 3, false, ""},
		{"generation limit", 5, 0, 10, true, "reached maximum generations limit (10)"},
		{"extinct", 0, 0, 3, true, "extinction"},
		{"stagnant", 5, 3, 3, true, "stagnation detected"},
		{"not yet stagnant", 5, 2, 3, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, reason := checkStopConditions(tt.livingCells, tt.stagnant, tt.generation, config)
			if stop != tt.stop || reason != tt.reason {
				t.Fatalf("checkStopConditions() = (%v, %q), want (%v, %q)", stop, reason, tt.stop, tt.reason)
			}
		})
	}

	config.StopOnStagnation = false
	if stop, _ := checkStopConditions(5, 100, 3, config); stop {
		t.Fatal("stagnation stopped the run with stop_on_stagnation disabled")
	}
}

func TestGameRunStopsOnGenerationLimit(t *testing.T) {
	config := testConfig()
	config.Pattern = "glider"
	config.MaxGenerations = 3

	var out bytes.Buffer
	g, err := newGame(config, &out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if g.generation != 3 {
		t.Fatalf("ran %d generations, want 3", g.generation)
	}
	text := out.String()
	if strings.Count(text, "Gen: ") != 4 {
		t.Fatalf("expected 4 frames in output:\n%s", text)
	}
	if !strings.Contains(text, "🏁 Stopped: reached maximum generations limit (3)") {
		t.Fatalf("missing stop reason:\n%s", text)
	}
	if !strings.Contains(text, "◼") {
		t.Fatalf("text render missing from output:\n%s", text)
	}
}

func TestGameRunStopsOnStagnation(t *testing.T) {
	config := testConfig()
	config.Pattern = "block"
	config.MaxGenerations = 0
	config.RenderMode = utils.Canvas
	config.StagnationThreshold = 2

	var out bytes.Buffer
	g, err := newGame(config, &out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "🏁 Stopped: stagnation detected") {
		t.Fatalf("missing stagnation stop:\n%s", out.String())
	}
	// three frames fill the history, then two stagnant frames
	if g.generation != 4 {
		t.Fatalf("stopped at generation %d, want 4", g.generation)
	}
}

func TestGameRunHonoursCancel(t *testing.T) {
	config := testConfig()
	config.Pattern = "glider"
	config.MaxGenerations = 0
	config.FrameRate = time.Hour

	var out bytes.Buffer
	g, err := newGame(config, &out, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = g.run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("run error = %v, want context.Canceled", err)
	}
	if g.generation != 1 {
		t.Fatalf("ran %d generations after cancel, want 1", g.generation)
	}
}

func TestBuildConfigFlagsOverride(t *testing.T) {
	config, err := buildConfig(cliOptions{
		width:       20,
		generations: 0,
		renderMode:  "canvas",
		pattern:     "blinker",
		noColor:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	defaults := utils.DefaultConfig()
	if config.Width != 20 || config.Height != defaults.Height {
		t.Errorf("dimensions = %dx%d", config.Width, config.Height)
	}
	if config.MaxGenerations != 0 || config.RenderMode != utils.Canvas || config.Pattern != "blinker" || config.Color {
		t.Errorf("flags not applied: %+v", config)
	}

	if _, err = buildConfig(cliOptions{generations: -1, renderMode: "svg"}); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("bad render flag error = %v, want ErrInvalidConfig", err)
	}
}
