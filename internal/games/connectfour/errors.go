package connectfour

import "errors"

// Errors returned by engine operations. Callers match them with errors.Is;
// the returned errors wrap these with the offending coordinates.
var (
	// ErrInvalidMove covers full or out-of-range columns, moves out of turn
	// and moves after the game has ended. State is left unchanged.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInternalConsistency means a cell was placed or cleared while already
	// in the target state. It indicates a bug in the caller.
	ErrInternalConsistency = errors.New("internal consistency violation")
)
