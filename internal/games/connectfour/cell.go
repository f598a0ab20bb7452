package connectfour

// Cell is a single board position.
// Marked is true exactly when Owner is not PlayerNone.
type Cell struct {
	Owner  Player
	Marked bool
}

// Empty reports whether nobody has played in the cell.
func (c Cell) Empty() bool {
	return !c.Marked
}
