package utils

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid config")

// RenderOptions selects how the host draws the universe
type RenderOptions uint8

const (
	// Canvas paints cells straight from the cell view
	Canvas RenderOptions = iota
	// Text prints the universe's own text rendering
	Text
)

func (r RenderOptions) String() string {
	switch r {
	case Canvas:
		return "canvas"
	case Text:
		return "text"
	}
	return "unknown"
}

// ParseRenderOptions accepts "canvas" or "text", ignoring case
func ParseRenderOptions(s string) (RenderOptions, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canvas":
		return Canvas, nil
	case "text":
		return Text, nil
	}
	return Text, errors.Wrapf(ErrInvalidConfig, "[ParseRenderOptions] unknown render mode %q", s)
}

func (r RenderOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RenderOptions) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "[RenderOptions.UnmarshalJSON] render_mode must be a string")
	}
	parsed, err := ParseRenderOptions(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Width               uint32        `json:"width"`
	Height              uint32        `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	RenderMode          RenderOptions `json:"render_mode"`
	Pattern             string        `json:"pattern"`
	Color               bool          `json:"color"`
	ClearScreen         bool          `json:"clear_screen"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      1000,
		RenderMode:          Text,
		Pattern:             "seed",
		Color:               true,
		ClearScreen:         true,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
	}
}

// Validate checks the values the host cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StopOnStagnation && c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
