// Package event provides the trigger vocabulary exchanged with the host and
// a synchronous dispatcher that routes events to subscribed handlers.
package event

// Trigger identifies an event kind.
type Trigger int

const (
	// Requests coming in from the host.
	TriggerRequestEndTurn Trigger = iota
	TriggerRequestPlayerMove
	TriggerRequestCursorMove
	TriggerCursorSelect

	// Outcomes going out to the host.
	TriggerPlayerMoveSuccess
	TriggerPlayerMoveFailed
	TriggerCharacterMoveSuccess
	TriggerCharacterMoveFailed
	TriggerCursorMoveSuccess
	TriggerCursorMoveFailed
	TriggerStateReady

	triggerCount
)

var triggerNames = [triggerCount]string{
	TriggerRequestEndTurn:       "request_end_turn",
	TriggerRequestPlayerMove:    "request_player_move",
	TriggerRequestCursorMove:    "request_cursor_move",
	TriggerCursorSelect:         "cursor_select",
	TriggerPlayerMoveSuccess:    "player_move_success",
	TriggerPlayerMoveFailed:     "player_move_failed",
	TriggerCharacterMoveSuccess: "character_move_success",
	TriggerCharacterMoveFailed:  "character_move_failed",
	TriggerCursorMoveSuccess:    "cursor_move_success",
	TriggerCursorMoveFailed:     "cursor_move_failed",
	TriggerStateReady:           "state_ready",
}

// String returns the host-facing trigger name.
func (t Trigger) String() string {
	if t < 0 || t >= triggerCount {
		return "unknown"
	}
	return triggerNames[t]
}

// ParseTrigger returns the trigger with the given host-facing name.
func ParseTrigger(name string) (Trigger, bool) {
	for t, n := range triggerNames {
		if n == name {
			return Trigger(t), true
		}
	}
	return 0, false
}

// Triggers returns every trigger in declaration order.
func Triggers() []Trigger {
	out := make([]Trigger, triggerCount)
	for i := range out {
		out[i] = Trigger(i)
	}
	return out
}
