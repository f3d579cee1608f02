package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/bridge"
	"github.com/samdwyer/skirmish/internal/event"
)

// Action is a player command decoded from a key press.
type Action struct {
	Trigger event.Trigger
	Delta   bridge.Vector3
	Quit    bool
}

// ActionFor maps a key press to an action. Arrows move the selected
// character, WASD moves the cursor, Enter ends the turn and q or Esc quits.
// Up is toward lower z.
func ActionFor(key tcell.Key, r rune) (Action, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Quit: true}, true
	case tcell.KeyEnter:
		return Action{Trigger: event.TriggerRequestEndTurn}, true
	case tcell.KeyUp:
		return move(event.TriggerRequestPlayerMove, 0, -1), true
	case tcell.KeyDown:
		return move(event.TriggerRequestPlayerMove, 0, 1), true
	case tcell.KeyLeft:
		return move(event.TriggerRequestPlayerMove, -1, 0), true
	case tcell.KeyRight:
		return move(event.TriggerRequestPlayerMove, 1, 0), true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return Action{Quit: true}, true
		case 'w', 'W':
			return move(event.TriggerRequestCursorMove, 0, -1), true
		case 's', 'S':
			return move(event.TriggerRequestCursorMove, 0, 1), true
		case 'a', 'A':
			return move(event.TriggerRequestCursorMove, -1, 0), true
		case 'd', 'D':
			return move(event.TriggerRequestCursorMove, 1, 0), true
		case ' ':
			return Action{Trigger: event.TriggerRequestEndTurn}, true
		}
	}
	return Action{}, false
}

func move(t event.Trigger, dx, dz int) Action {
	return Action{Trigger: t, Delta: bridge.Vector3{X: dx, Z: dz}}
}

// Args returns the host arguments for the action's request.
func (a Action) Args() []any {
	if a.Trigger == event.TriggerRequestEndTurn {
		return nil
	}
	return []any{a.Delta}
}
