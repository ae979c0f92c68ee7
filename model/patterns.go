package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cells given as offsets from a top-left anchor
type Pattern struct {
	Name  string
	Cells []Coord
}

var (
	// Glider travels one cell diagonally (down and right) every four generations
	Glider = Pattern{
		Name: "glider",
		Cells: []Coord{
			{0, 1},
			{1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	}

	// Blinker is a period-two oscillator
	Blinker = Pattern{
		Name:  "blinker",
		Cells: []Coord{{0, 0}, {0, 1}, {0, 2}},
	}

	// Block is a 2x2 still life
	Block = Pattern{
		Name:  "block",
		Cells: []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
)

var patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

// LookupPattern finds a built-in pattern by name, ignoring case
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q, known: %s",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place stamps the pattern onto the universe with its anchor at (row, col).
// Offsets wrap around the edges like neighbors do.
func (u *Universe) Place(p Pattern, row, col uint32) error {
	coords := make([]Coord, len(p.Cells))
	for i, c := range p.Cells {
		coords[i] = Coord{
			Row: uint32((uint64(row) + uint64(c.Row)) % uint64(u.height)),
			Col: uint32((uint64(col) + uint64(c.Col)) % uint64(u.width)),
		}
	}
	return errors.Wrapf(u.SetCells(coords), "[Place] failed to place %s", p.Name)
}
