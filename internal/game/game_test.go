package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/bridge"
	"github.com/samdwyer/skirmish/internal/event"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/match"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
		ok   bool
	}{
		{"arrow up", tcell.KeyUp, 0, Action{Trigger: event.TriggerRequestPlayerMove, Delta: bridge.Vector3{Z: -1}}, true},
		{"arrow right", tcell.KeyRight, 0, Action{Trigger: event.TriggerRequestPlayerMove, Delta: bridge.Vector3{X: 1}}, true},
		{"cursor left", tcell.KeyRune, 'a', Action{Trigger: event.TriggerRequestCursorMove, Delta: bridge.Vector3{X: -1}}, true},
		{"cursor down", tcell.KeyRune, 'S', Action{Trigger: event.TriggerRequestCursorMove, Delta: bridge.Vector3{Z: 1}}, true},
		{"end turn", tcell.KeyEnter, 0, Action{Trigger: event.TriggerRequestEndTurn}, true},
		{"quit", tcell.KeyRune, 'q', Action{Quit: true}, true},
		{"escape", tcell.KeyEscape, 0, Action{Quit: true}, true},
		{"unbound", tcell.KeyRune, 'z', Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActionFor(tt.key, tt.r)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ActionFor() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLevelDrivesNode(t *testing.T) {
	levels := gamedata.MustLoadLevelRegistry()
	ctx := context.Background()

	for _, level := range levels.All() {
		t.Run(level.ID, func(t *testing.T) {
			g := &Game{}
			n := bridge.NewNode(match.Config{Seed: 42}, g)
			if err := n.Setup(ctx, LevelDictionary(&level)); err != nil {
				t.Fatalf("Setup() error: %v", err)
			}
			if g.message != "ready" {
				t.Errorf("message after setup = %q, want ready", g.message)
			}

			end, _ := ActionFor(tcell.KeyEnter, 0)
			if err := n.Notify(ctx, end.Trigger.String(), end.Args()...); err != nil {
				t.Fatalf("Notify() error: %v", err)
			}
			if got := n.State()["characters"].(bridge.Array); len(got) != 4 {
				t.Errorf("len(characters) = %d, want 4", len(got))
			}
			if g.message == "ready" {
				t.Error("end turn produced no event")
			}
		})
	}
}
