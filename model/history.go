package model

// DefaultHistorySize is how many recent states are kept for cycle detection
const DefaultHistorySize = 5

// History remembers the hashes of recent universe states so a run can tell
// when it has settled into a still life or a short oscillation.
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds the universe's current state and drops the oldest beyond size
func (h *History) Record(u *Universe) {
	h.hashes = append(h.hashes, u.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the universe's current state matches one of the
// last three recorded states (period one, two or three)
func (h *History) IsStagnant(u *Universe) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := u.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}
