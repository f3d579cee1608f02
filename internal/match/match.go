package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/event"
	"github.com/samdwyer/skirmish/internal/mask"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

var (
	// ErrNotReady is returned by requests made before Setup.
	ErrNotReady = errors.New("match not set up")
	// ErrNoCharacters is returned when the roster would be empty.
	ErrNoCharacters = errors.New("no characters")
	// ErrUnevenTeams is returned when characters cannot be split evenly across teams.
	ErrUnevenTeams = errors.New("characters do not divide evenly across teams")
	// ErrTooManyCharacters is returned when there are more characters than tiles.
	ErrTooManyCharacters = errors.New("more characters than tiles")
	// ErrNoMasks is returned when the mask catalog is empty.
	ErrNoMasks = errors.New("empty mask catalog")
)

// InitialState seeds a match. The board comes from Elevation when set and
// from Grid otherwise. Characters and Teams are used as given when both are
// present; otherwise the roster is generated from the per-team counts.
type InitialState struct {
	Grid       []board.Position
	Elevation  [][]*int
	Characters []entity.Properties
	Teams      []entity.TeamProperties

	// Override the Config counts when positive.
	CharactersPerTeam int
	NumTeams          int
}

// SetupOptions skip parts of Setup for rosters that arrive already placed.
type SetupOptions struct {
	SkipRepositioning  bool
	SkipTeamAssignment bool
}

// MoveResult reports the outcome of a move request. From and To are equal
// when nothing moved.
type MoveResult struct {
	Moved bool
	From  board.Position
	To    board.Position
}

// Match is the state of one skirmish. It is not safe for concurrent use.
type Match struct {
	cfg         Config
	board       *board.Board
	characters  []*entity.Character
	teams       []*entity.Team
	perTeam     int
	selection   Selection
	cursor      board.Position
	movable     []board.Position
	targetable  []board.Position
	masks       []mask.Pattern
	mask        mask.Pattern
	phase       Phase
	rng         *rand.Rand
	broadcaster event.Broadcaster
	tracer      trace.Tracer
}

// New builds the board and roster described by initial. Events are sent to
// b; a nil broadcaster drops them with a warning.
func New(cfg Config, initial InitialState, masks []mask.Pattern, b event.Broadcaster) (*Match, error) {
	cfg = cfg.withDefaults()
	if len(masks) == 0 {
		return nil, ErrNoMasks
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		cfg:         cfg,
		selection:   NoSelection{},
		masks:       slices.Clone(masks),
		phase:       PhaseUninitialized,
		rng:         rand.New(rand.NewSource(seed)),
		broadcaster: b,
		tracer:      telemetry.Tracer("match"),
	}
	m.mask = m.lookupMask(cfg.Mask)

	brd, err := m.buildBoard(initial)
	if err != nil {
		return nil, err
	}
	m.board = brd

	if err := m.buildRoster(initial); err != nil {
		return nil, err
	}
	if len(m.characters) > m.board.Len() {
		return nil, fmt.Errorf("%d characters on %d tiles: %w",
			len(m.characters), m.board.Len(), ErrTooManyCharacters)
	}

	return m, nil
}

func (m *Match) buildBoard(initial InitialState) (*board.Board, error) {
	_, span := m.tracer.Start(context.Background(), "board.build")
	defer span.End()

	var (
		brd *board.Board
		err error
	)
	if initial.Elevation != nil {
		width := 0
		for _, row := range initial.Elevation {
			width = max(width, len(row))
		}
		brd, err = board.NewFromElevation(initial.Elevation, width, len(initial.Elevation))
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("build board: %w", err)
		}
	} else {
		brd = board.New(initial.Grid)
	}

	span.SetAttributes(attribute.Int("board.tiles", brd.Len()))
	return brd, nil
}

func (m *Match) buildRoster(initial InitialState) error {
	perTeam, numTeams := m.cfg.CharactersPerTeam, m.cfg.Teams
	if initial.CharactersPerTeam > 0 {
		perTeam = initial.CharactersPerTeam
	}
	if initial.NumTeams > 0 {
		numTeams = initial.NumTeams
	}
	if len(initial.Teams) > 0 {
		numTeams = len(initial.Teams)
	}
	if len(initial.Characters) > 0 && numTeams > 0 {
		perTeam = len(initial.Characters) / numTeams
	}

	if len(initial.Teams) > 0 {
		for _, props := range initial.Teams {
			m.teams = append(m.teams, entity.NewTeam(props))
		}
	} else {
		for range numTeams {
			m.teams = append(m.teams, entity.NewTeam(entity.TeamProperties{}))
		}
	}

	if len(initial.Characters) > 0 {
		for _, props := range initial.Characters {
			m.characters = append(m.characters, entity.NewCharacter(props))
		}
	} else {
		for range perTeam * len(m.teams) {
			m.characters = append(m.characters, entity.NewCharacter(entity.Properties{}))
		}
	}

	if len(m.characters) == 0 {
		return ErrNoCharacters
	}
	if len(m.characters) != perTeam*len(m.teams) {
		return fmt.Errorf("%d characters, %d teams of %d: %w",
			len(m.characters), len(m.teams), perTeam, ErrUnevenTeams)
	}
	m.perTeam = perTeam
	return nil
}

// lookupMask returns the catalog mask called name, or the first mask.
func (m *Match) lookupMask(name string) mask.Pattern {
	for _, p := range m.masks {
		if p.Name == name {
			return p
		}
	}
	log.Printf("warning: mask %q not in catalog, using %q", name, m.masks[0].Name)
	return m.masks[0]
}

// Setup places the characters, assigns teams, selects the first character
// and announces the initial state.
func (m *Match) Setup(ctx context.Context, opts SetupOptions) error {
	ctx, span := m.tracer.Start(ctx, "match.setup")
	defer span.End()

	if !opts.SkipRepositioning {
		positions := m.board.Positions()
		perm := m.rng.Perm(len(positions))
		for i, c := range m.characters {
			c.Place(positions[perm[i]])
		}
	}

	if !opts.SkipTeamAssignment {
		perm := m.rng.Perm(len(m.characters))
		next := 0
		for _, t := range m.teams {
			for range m.perTeam {
				m.characters[perm[next]].TeamID = t.ID
				next++
			}
		}
	}

	selected := m.characters[0]
	m.selection = CharacterSelection{CharacterID: selected.ID}
	m.movable = m.board.MovableArea(selected.Position, m.cfg.MoveBudget)
	m.targetable = m.board.TargetableFrom(selected.Position, m.mask)
	m.rebuildOverlay()
	m.phase = PhaseReady

	span.SetAttributes(
		attribute.String("character.id", selected.ID),
		attribute.String("character.position", selected.Position.String()),
		attribute.Int("match.characters", len(m.characters)),
		attribute.Int("match.teams", len(m.teams)),
		attribute.String("mask", m.mask.Name),
	)

	m.emit(ctx, event.TriggerPlayerMoveSuccess, selected.Position, selected.Position)
	m.emit(ctx, event.TriggerStateReady, m.State())
	return nil
}

// RequestPlayerMove moves the selected character one step toward
// Position+delta. The delta is snapped onto the terrain, then onto the
// closest neighbor of the character. The move fails when that neighbor is
// too far from the snap point, outside the movable area or the current tile.
// Failures are reported as events, not errors.
func (m *Match) RequestPlayerMove(ctx context.Context, delta board.Position) (MoveResult, error) {
	ctx, span := m.tracer.Start(ctx, "match.move")
	defer span.End()

	c := m.selected()
	if m.phase == PhaseUninitialized || c == nil {
		return MoveResult{}, ErrNotReady
	}
	m.phase = PhaseMoving
	defer func() { m.phase = PhaseReady }()

	from := c.Position
	to, ok := m.moveTarget(from, delta)

	span.SetAttributes(
		attribute.String("character.id", c.ID),
		attribute.String("move.from", from.String()),
		attribute.String("move.to", to.String()),
		attribute.Bool("move.moved", ok),
	)

	if !ok {
		m.emit(ctx, event.TriggerCharacterMoveFailed, c.Snapshot(), from, from)
		m.emit(ctx, event.TriggerPlayerMoveFailed, from, from)
		return MoveResult{From: from, To: from}, nil
	}

	c.MoveTo(to)
	m.targetable = m.board.TargetableFrom(c.Position, m.mask)
	m.rebuildOverlay()

	m.emit(ctx, event.TriggerCharacterMoveSuccess, c.Snapshot(), from, to)
	m.emit(ctx, event.TriggerPlayerMoveSuccess, from, to)
	return MoveResult{Moved: true, From: from, To: to}, nil
}

// moveTarget resolves a move request to a neighbor of from.
func (m *Match) moveTarget(from, delta board.Position) (board.Position, bool) {
	snapped, _, ok := m.board.NearestNode(from.Add(delta))
	if !ok {
		return from, false
	}
	to, distance, ok := board.NearestTo(snapped, m.board.Neighbors(from))
	if !ok {
		return from, false
	}
	if distance >= m.cfg.MaxMoveDistance {
		return to, false
	}
	if !slices.Contains(m.movable, to) || to == from {
		return to, false
	}
	return to, true
}

// RequestCursorMove moves the cursor by delta, snapped onto the terrain.
func (m *Match) RequestCursorMove(ctx context.Context, delta board.Position) (MoveResult, error) {
	ctx, span := m.tracer.Start(ctx, "match.cursor")
	defer span.End()

	if m.phase == PhaseUninitialized {
		return MoveResult{}, ErrNotReady
	}
	m.phase = PhaseSelecting
	defer func() { m.phase = PhaseReady }()

	from := m.cursor
	to, distance, ok := m.board.NearestNode(from.Add(delta))
	ok = ok && validCursorMove(from, to, distance)

	span.SetAttributes(
		attribute.String("cursor.from", from.String()),
		attribute.String("cursor.to", to.String()),
		attribute.Bool("cursor.moved", ok),
	)

	if !ok {
		m.emit(ctx, event.TriggerCursorMoveFailed, from, from)
		return MoveResult{From: from, To: from}, nil
	}

	m.cursor = to
	m.rebuildOverlay()
	m.emit(ctx, event.TriggerCursorMoveSuccess, from, to)
	return MoveResult{Moved: true, From: from, To: to}, nil
}

// validCursorMove accepts every snapped cursor position.
// TODO: restrict the cursor to the targetable set once cursor-select picks targets.
func validCursorMove(from, to board.Position, distance float64) bool {
	return true
}

// EndTurn passes the turn to the next character in roster order and draws
// a new targeting mask for it.
func (m *Match) EndTurn(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "match.end_turn")
	defer span.End()

	c := m.selected()
	if m.phase == PhaseUninitialized || c == nil {
		return ErrNotReady
	}
	m.phase = PhaseTurnTransition
	defer func() { m.phase = PhaseReady }()

	c.EndTurn()

	next := m.characters[(m.indexOf(c.ID)+1)%len(m.characters)]
	m.selection = CharacterSelection{CharacterID: next.ID}
	m.movable = m.board.MovableArea(next.Position, m.cfg.MoveBudget)
	m.targetable = m.board.TargetableFrom(next.Position, m.mask)

	// The drawn mask applies from the character's first move.
	m.mask = m.masks[m.rng.Intn(len(m.masks))]
	m.rebuildOverlay()

	span.SetAttributes(
		attribute.String("character.previous", c.ID),
		attribute.String("character.id", next.ID),
		attribute.String("mask", m.mask.Name),
	)

	m.emit(ctx, event.TriggerPlayerMoveSuccess, next.Position, next.Position)
	return nil
}

// Handlers returns the request handlers to subscribe on a dispatcher.
// Move requests take a board.Position delta as their first argument.
func (m *Match) Handlers() map[event.Trigger][]event.Handler {
	return map[event.Trigger][]event.Handler{
		event.TriggerRequestPlayerMove: {func(ctx context.Context, ev event.Event) {
			delta, ok := deltaArg(ev)
			if !ok {
				return
			}
			if _, err := m.RequestPlayerMove(ctx, delta); err != nil {
				log.Printf("warning: %s: %v", ev.Trigger, err)
			}
		}},
		event.TriggerRequestCursorMove: {func(ctx context.Context, ev event.Event) {
			delta, ok := deltaArg(ev)
			if !ok {
				return
			}
			if _, err := m.RequestCursorMove(ctx, delta); err != nil {
				log.Printf("warning: %s: %v", ev.Trigger, err)
			}
		}},
		event.TriggerRequestEndTurn: {func(ctx context.Context, ev event.Event) {
			if err := m.EndTurn(ctx); err != nil {
				log.Printf("warning: %s: %v", ev.Trigger, err)
			}
		}},
	}
}

func deltaArg(ev event.Event) (board.Position, bool) {
	if len(ev.Args) > 0 {
		switch d := ev.Args[0].(type) {
		case board.Position:
			return d, true
		case []any:
			if p, ok := positionFromList(d); ok {
				return p, true
			}
		}
	}
	log.Printf("warning: %s: want a position delta, got %v", ev.Trigger, ev.Args)
	return board.Position{}, false
}

// positionFromList reads an [x, y, z] list of whole numbers.
func positionFromList(l []any) (board.Position, bool) {
	if len(l) != 3 {
		return board.Position{}, false
	}
	var c [3]int
	for i, v := range l {
		switch n := v.(type) {
		case int:
			c[i] = n
		case float64:
			if n != math.Trunc(n) {
				return board.Position{}, false
			}
			c[i] = int(n)
		default:
			return board.Position{}, false
		}
	}
	return board.Position{X: c[0], Y: c[1], Z: c[2]}, true
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Selection returns the selected character, or NoSelection before Setup.
func (m *Match) Selection() Selection {
	return m.selection
}

// Board returns the match board. Callers must not mutate its overlay.
func (m *Match) Board() *board.Board {
	return m.board
}

func (m *Match) selected() *entity.Character {
	sel, ok := m.selection.(CharacterSelection)
	if !ok {
		return nil
	}
	if i := m.indexOf(sel.CharacterID); i >= 0 {
		return m.characters[i]
	}
	return nil
}

func (m *Match) indexOf(id string) int {
	return slices.IndexFunc(m.characters, func(c *entity.Character) bool {
		return c.ID == id
	})
}

func (m *Match) rebuildOverlay() {
	m.board.SetOverlay(m.movable, m.targetable, nil, nil, nil)
}

func (m *Match) emit(ctx context.Context, t event.Trigger, args ...any) {
	if m.broadcaster == nil {
		log.Printf("warning: no broadcaster bound to match, dropping %s", t)
		return
	}
	m.broadcaster.Broadcast(ctx, event.New(t, args...))
}
