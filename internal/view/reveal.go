package view

// RevealThreshold is the visible fraction of a block that triggers its reveal
const RevealThreshold = 0.1

// RevealState is the display state of a fade-in block
type RevealState int

const (
	RevealPending RevealState = iota
	RevealRevealed
)

func (s RevealState) String() string {
	if s == RevealRevealed {
		return "revealed"
	}
	return "pending"
}

// RevealLatch is a one-way latch for a fade-in block. It starts pending and
// moves to revealed the first time at least RevealThreshold of the block is
// visible. Later observations have no effect.
type RevealLatch struct {
	state RevealState
}

// Observe records a visibility notification with the visible fraction of the
// block (0 to 1) and reports whether this call revealed it.
func (l *RevealLatch) Observe(ratio float64) bool {
	if l.state == RevealRevealed {
		return false
	}
	// NaN compares false both ways, so test for the passing case
	if !(ratio >= RevealThreshold) {
		return false
	}
	l.state = RevealRevealed
	return true
}

// State returns the current state of the latch
func (l *RevealLatch) State() RevealState {
	return l.state
}

// Revealed reports whether the latch has fired
func (l *RevealLatch) Revealed() bool {
	return l.state == RevealRevealed
}
