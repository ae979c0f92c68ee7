package model

const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

// Cell is the state of one grid position, stored as a single byte so that
// live neighbors can be summed directly.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool { return c == Alive }

// Glyph returns the rune used by the text rendering
func (c Cell) Glyph() rune {
	if c == Dead {
		return glyphDead
	}
	return glyphAlive
}

func (c Cell) String() string {
	if c == Dead {
		return "Dead"
	}
	return "Alive"
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Coord addresses a cell by row and column
type Coord struct {
	Row uint32
	Col uint32
}
