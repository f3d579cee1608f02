// Package match implements the turn state machine that moves characters
// across a board, tracks the cursor and the active targeting mask, and
// reports outcomes as events.
package match

// Phase is where the match is in its turn protocol.
type Phase int

const (
	// PhaseUninitialized is the state before Setup.
	PhaseUninitialized Phase = iota
	// PhaseReady waits for the next request.
	PhaseReady
	// PhaseSelecting is active while a cursor request is handled.
	PhaseSelecting
	// PhaseMoving is active while a move request is handled.
	PhaseMoving
	// PhaseTurnTransition is active while the turn passes to the next character.
	PhaseTurnTransition
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	case PhaseSelecting:
		return "selecting"
	case PhaseMoving:
		return "moving"
	case PhaseTurnTransition:
		return "turn_transition"
	default:
		return "unknown"
	}
}
