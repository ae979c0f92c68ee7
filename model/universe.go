package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// MaxCells bounds width*height to the range of an unsigned 32-bit product
const MaxCells = math.MaxUint32

var (
	ErrInvalidDimension = errors.New("dimension must be greater than zero")
	ErrTooManyCells     = errors.New("width * height overflows the cell buffer")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

/*
Universe is a fixed-size Game of Life board whose edges wrap around, so a
cell on the last column neighbors the first column and likewise for rows.

Cells are stored row-major in a single buffer: index = row*width + column.
A Universe is not safe for concurrent use; callers serialize access.
*/
type Universe struct {
	width  uint32
	height uint32
	cells  []Cell

	logger *slog.Logger
}

// Option configures a Universe at construction time
type Option func(*Universe)

// WithLogger attaches a logger; Tick traces every cell at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(u *Universe) {
		u.logger = logger
	}
}

// NewUniverse creates a universe with the given dimensions, seeded with a
// fixed pattern: cell i is alive when i is even or a multiple of seven.
func NewUniverse(width, height uint32, opts ...Option) (*Universe, error) {
	u, err := NewEmptyUniverse(width, height, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewUniverse] failed to allocate universe")
	}
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return u, nil
}

// NewEmptyUniverse creates a universe with every cell dead
func NewEmptyUniverse(width, height uint32, opts ...Option) (*Universe, error) {
	n, err := bufferLen(width, height)
	if err != nil {
		return nil, err
	}
	u := &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, n),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// bufferLen validates the dimensions and returns width*height
func bufferLen(width, height uint32) (int, error) {
	if width == 0 || height == 0 {
		return 0, errors.Wrapf(ErrInvalidDimension, "[bufferLen] got %dx%d", width, height)
	}
	n := uint64(width) * uint64(height)
	if n > MaxCells || n > math.MaxInt {
		return 0, errors.Wrapf(ErrTooManyCells, "[bufferLen] %dx%d = %d cells", width, height, n)
	}
	return int(n), nil
}

// Width returns the number of columns
func (u *Universe) Width() uint32 {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() uint32 {
	return u.height
}

// SetWidth changes the number of columns and resets every cell to Dead.
// Existing cells are not carried over. On error the universe is unchanged.
func (u *Universe) SetWidth(width uint32) error {
	n, err := bufferLen(width, u.height)
	if err != nil {
		return errors.Wrapf(err, "[SetWidth] failed to resize to width %d", width)
	}
	u.width = width
	u.cells = make([]Cell, n)
	return nil
}

// SetHeight changes the number of rows and resets every cell to Dead.
// Existing cells are not carried over. On error the universe is unchanged.
func (u *Universe) SetHeight(height uint32) error {
	n, err := bufferLen(u.width, height)
	if err != nil {
		return errors.Wrapf(err, "[SetHeight] failed to resize to height %d", height)
	}
	u.height = height
	u.cells = make([]Cell, n)
	return nil
}

// Cells returns a read-only view over the live buffer. The view is only
// valid until the next call that mutates the universe.
func (u *Universe) Cells() CellView {
	return CellView{cells: u.cells, width: u.width, height: u.height}
}

// GetCells returns the cell buffer itself, without copying. Callers must
// not modify it or keep it past the next mutating call.
func (u *Universe) GetCells() []Cell {
	return u.cells
}

// SetCells marks every addressed cell Alive and leaves the rest untouched.
// All coordinates are checked first, so a bad coordinate changes nothing.
func (u *Universe) SetCells(coords []Coord) error {
	for _, c := range coords {
		if c.Row >= u.height || c.Col >= u.width {
			return errors.Wrapf(ErrIndexOutOfRange, "[SetCells] (%d, %d) outside %dx%d universe",
				c.Row, c.Col, u.width, u.height)
		}
	}
	for _, c := range coords {
		u.cells[u.index(c.Row, c.Col)] = Alive
	}
	return nil
}

// Clear sets every cell to Dead without changing the dimensions
func (u *Universe) Clear() {
	clear(u.cells)
}

/*
Tick advances the universe by exactly one generation.

The next generation is computed into a fresh buffer from the current one
and swapped in once the whole grid has been evaluated.
*/
func (u *Universe) Tick() {
	var (
		next  = make([]Cell, len(u.cells))
		trace = u.logger != nil && u.logger.Enabled(context.Background(), slog.LevelDebug)
	)

	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			cell := u.cells[idx]
			liveNeighbors := u.liveNeighborCount(row, col)

			alive, outcome := rules.ApplyConwayRules(cell.IsAlive(), liveNeighbors)
			next[idx] = cellOf(alive)

			if trace {
				u.logger.Debug("evaluated cell",
					slog.Uint64("row", uint64(row)),
					slog.Uint64("col", uint64(col)),
					slog.String("state", cell.String()),
					slog.Int("live_neighbors", int(liveNeighbors)),
					slog.String("rule", outcome.String()),
				)
			}
		}
	}

	u.cells = next
}

// Render returns the grid as text, one newline-terminated line per row
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(len(u.cells)*utf8.RuneLen(glyphAlive) + int(u.height))
	for i, cell := range u.cells {
		b.WriteRune(cell.Glyph())
		if (i+1)%int(u.width) == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (u *Universe) String() string {
	return u.Render()
}

// LiveCells returns the number of living cells
func (u *Universe) LiveCells() (count int) {
	for _, cell := range u.cells {
		count += int(cell)
	}
	return
}

// Hash returns an MD5 fingerprint of the dimensions and cell states
func (u *Universe) Hash() string {
	h := md5.New()
	buf := make([]byte, 8+len(u.cells))
	buf[0], buf[1], buf[2], buf[3] = byte(u.width>>24), byte(u.width>>16), byte(u.width>>8), byte(u.width)
	buf[4], buf[5], buf[6], buf[7] = byte(u.height>>24), byte(u.height>>16), byte(u.height>>8), byte(u.height)
	for i, cell := range u.cells {
		buf[8+i] = byte(cell)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (u *Universe) index(row, col uint32) int {
	return int(uint64(row)*uint64(u.width) + uint64(col))
}

// liveNeighborCount sums the eight wrapped neighbors of (row, col).
// Offsets of height-1 and width-1 stand in for -1 modulo the dimension.
func (u *Universe) liveNeighborCount(row, col uint32) uint8 {
	var (
		count  uint8
		height = uint64(u.height)
		width  = uint64(u.width)
	)
	for _, dRow := range [3]uint64{height - 1, 0, 1} {
		for _, dCol := range [3]uint64{width - 1, 0, 1} {
			if dRow == 0 && dCol == 0 {
				continue
			}
			nRow := (uint64(row) + dRow) % height
			nCol := (uint64(col) + dCol) % width
			count += uint8(u.cells[nRow*width+nCol])
		}
	}
	return count
}
