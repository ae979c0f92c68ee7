package rules

// Outcome names which clause of the transition rule decided a cell's next state.
type Outcome uint8

const (
	Unchanged Outcome = iota
	Underpopulation
	Survival
	Overpopulation
	Reproduction
)

var outcomeNames = [...]string{
	Unchanged:       "unchanged",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

  - a live cell with fewer than two live neighbors dies (underpopulation)
  - a live cell with two or three live neighbors lives on (survival)
  - a live cell with more than three live neighbors dies (overpopulation)
  - a dead cell with exactly three live neighbors becomes alive (reproduction)
  - every other cell keeps its state
*/
func ApplyConwayRules(alive bool, neighbors uint8) (bool, Outcome) {
	switch {
	case alive && neighbors < 2:
		return false, Underpopulation
	case alive && (neighbors == 2 || neighbors == 3):
		return true, Survival
	case alive && neighbors > 3:
		return false, Overpopulation
	case !alive && neighbors == 3:
		return true, Reproduction
	}
	return alive, Unchanged
}
