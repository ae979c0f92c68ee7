package model

import "github.com/pkg/errors"

// CellView is a read-only window onto a universe's cell buffer. It shares
// memory with the universe, so it goes stale after the next mutating call.
type CellView struct {
	cells  []Cell
	width  uint32
	height uint32
}

// Len returns the number of cells in the view
func (v CellView) Len() int { return len(v.cells) }

// Width returns the number of columns
func (v CellView) Width() uint32 { return v.width }

// Height returns the number of rows
func (v CellView) Height() uint32 { return v.height }

// At returns the cell at a flat row-major index
func (v CellView) At(i int) (Cell, error) {
	if i < 0 || i >= len(v.cells) {
		return Dead, errors.Wrapf(ErrIndexOutOfRange, "[CellView.At] index %d, len %d", i, len(v.cells))
	}
	return v.cells[i], nil
}

// Get returns the cell at (row, col)
func (v CellView) Get(row, col uint32) (Cell, error) {
	if row >= v.height || col >= v.width {
		return Dead, errors.Wrapf(ErrIndexOutOfRange, "[CellView.Get] (%d, %d) outside %dx%d",
			row, col, v.width, v.height)
	}
	return v.cells[uint64(row)*uint64(v.width)+uint64(col)], nil
}

// Each calls fn for every cell in row-major order
func (v CellView) Each(fn func(row, col uint32, c Cell)) {
	if v.width == 0 {
		return
	}
	for i, c := range v.cells {
		fn(uint32(i/int(v.width)), uint32(i%int(v.width)), c)
	}
}

// LiveCount returns the number of living cells in the view
func (v CellView) LiveCount() (count int) {
	for _, c := range v.cells {
		count += int(c)
	}
	return
}
