package bridge

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/event"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/mask"
	"github.com/samdwyer/skirmish/internal/match"
)

var (
	// ErrNotSetup is returned by requests made before Setup or after Destroy.
	ErrNotSetup = errors.New("bridge node not set up")
	// ErrUnknownTrigger is returned for request names outside the trigger vocabulary.
	ErrUnknownTrigger = errors.New("unknown trigger")
)

// Emitter delivers outbound events to the host. Arguments are host values.
type Emitter interface {
	Emit(ctx context.Context, name string, args ...any)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ctx context.Context, name string, args ...any)

// Emit calls f.
func (f EmitterFunc) Emit(ctx context.Context, name string, args ...any) {
	f(ctx, name, args...)
}

// Node binds a match to a host. Requests arrive by trigger name through
// Notify and outcomes leave through the Emitter.
type Node struct {
	cfg        match.Config
	masks      []mask.Pattern
	emitter    Emitter
	dispatcher *event.Dispatcher
	match      *match.Match
	subs       []event.Subscription
}

// Option configures a Node.
type Option func(*Node)

// WithMasks replaces the embedded mask catalog.
func WithMasks(masks []mask.Pattern) Option {
	return func(n *Node) {
		n.masks = masks
	}
}

// NewNode creates a node that reports to e. The match is built by Setup.
func NewNode(cfg match.Config, e Emitter, opts ...Option) *Node {
	n := &Node{cfg: cfg, emitter: e}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Setup builds the match from a host dictionary, subscribes its request
// handlers and runs its setup, which announces the initial state.
//
// Recognized keys: grid (positions or [position, tile] pairs), elevation
// (rows of heights or nulls, indexed [z][x]), characters, teams,
// num_characters_per_team, num_teams, skip_repositioning and
// skip_team_assignment.
func (n *Node) Setup(ctx context.Context, initial Dictionary) error {
	if n.match != nil {
		n.Destroy()
	}

	if n.masks == nil {
		masks, err := gamedata.LoadMasks()
		if err != nil {
			return fmt.Errorf("load masks: %w", err)
		}
		n.masks = masks
	}

	in, _ := FromHost(initial).(map[string]any)
	state, opts, err := initialState(in)
	if err != nil {
		return err
	}

	n.dispatcher = event.NewDispatcher()
	m, err := match.New(n.cfg, state, n.masks, n)
	if err != nil {
		return fmt.Errorf("new match: %w", err)
	}
	n.match = m
	n.subs = n.dispatcher.SubscribeAll(m.Handlers())

	return m.Setup(ctx, opts)
}

// Notify delivers a host request. Arguments are host values.
func (n *Node) Notify(ctx context.Context, name string, args ...any) error {
	if n.match == nil {
		return ErrNotSetup
	}
	t, ok := event.ParseTrigger(name)
	if !ok {
		log.Printf("warning: unknown trigger %q from host", name)
		return fmt.Errorf("%q: %w", name, ErrUnknownTrigger)
	}

	converted := make([]any, len(args))
	for i, a := range args {
		converted[i] = FromHost(a)
	}
	n.dispatcher.Dispatch(ctx, event.New(t, converted...))
	return nil
}

// Broadcast forwards a match event to the host under its trigger name.
func (n *Node) Broadcast(ctx context.Context, ev event.Event) {
	if n.emitter == nil {
		log.Printf("warning: no emitter bound to bridge node, dropping %s", ev.Trigger)
		return
	}
	args := make([]any, len(ev.Args))
	for i, a := range ev.Args {
		args[i] = ToHost(a)
	}
	n.emitter.Emit(ctx, ev.Trigger.String(), args...)
}

// State returns the match state as a host dictionary, or nil before Setup.
func (n *Node) State() Dictionary {
	if n.match == nil {
		return nil
	}
	d, _ := ToHost(n.match.State().Record()).(Dictionary)
	return d
}

// Match returns the bound match, or nil before Setup.
func (n *Node) Match() *match.Match {
	return n.match
}

// Destroy unsubscribes the match handlers. Later requests return ErrNotSetup.
func (n *Node) Destroy() {
	for _, s := range n.subs {
		n.dispatcher.Unsubscribe(s)
	}
	n.subs = nil
	n.match = nil
}

// initialState reads a converted host dictionary.
func initialState(in map[string]any) (match.InitialState, match.SetupOptions, error) {
	var (
		state match.InitialState
		opts  match.SetupOptions
	)

	if grid, ok := in["grid"].([]any); ok {
		for _, e := range grid {
			switch x := e.(type) {
			case board.Position:
				state.Grid = append(state.Grid, x)
			case []any:
				if len(x) != 2 {
					return state, opts, fmt.Errorf("grid entry %v: want [position, tile]", x)
				}
				p, ok := x[0].(board.Position)
				if !ok {
					return state, opts, fmt.Errorf("grid entry %v: want a position key", x)
				}
				if tile, ok := number(x[1]); ok && board.Tile(tile).IsFilled() {
					state.Grid = append(state.Grid, p)
				}
			default:
				return state, opts, fmt.Errorf("grid entry %v: unsupported %T", e, e)
			}
		}
	}

	if rows, ok := in["elevation"].([]any); ok {
		state.Elevation = make([][]*int, len(rows))
		for z, r := range rows {
			row, ok := r.([]any)
			if !ok {
				return state, opts, fmt.Errorf("elevation row %d: unsupported %T", z, r)
			}
			state.Elevation[z] = make([]*int, len(row))
			for x, e := range row {
				if e == nil {
					continue
				}
				h, ok := number(e)
				if !ok {
					return state, opts, fmt.Errorf("elevation (%d, %d): unsupported %T", x, z, e)
				}
				state.Elevation[z][x] = &h
			}
		}
	}

	for _, r := range records(in["characters"]) {
		state.Characters = append(state.Characters, entity.PropertiesFromRecord(r))
	}
	for _, r := range records(in["teams"]) {
		state.Teams = append(state.Teams, entity.TeamPropertiesFromRecord(r))
	}

	state.CharactersPerTeam, _ = number(in["num_characters_per_team"])
	state.NumTeams, _ = number(in["num_teams"])
	opts.SkipRepositioning, _ = in["skip_repositioning"].(bool)
	opts.SkipTeamAssignment, _ = in["skip_team_assignment"].(bool)

	return state, opts, nil
}

func records(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if r, ok := e.(map[string]any); ok {
			out = append(out, r)
		}
	}
	return out
}

func number(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}
