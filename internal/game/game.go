// Package game runs the terminal host: it loads a level, drives the match
// through a bridge node and redraws after every request.
package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skirmish/internal/bridge"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/ui"
)

// helpLine lists the controls.
const helpLine = "arrows: move  wasd: cursor  enter: end turn  q: quit"

// Game holds the terminal host state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	node     *bridge.Node
	level    *gamedata.LevelDef
	message  string // last event from the match
	running  bool
}

// New creates a new game instance for the configured level.
func New(cfg Config) (*Game, error) {
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, err
	}
	level := levels.GetByID(cfg.Level)
	if level == nil {
		return nil, fmt.Errorf("unknown level %q", cfg.Level)
	}
	masks, err := gamedata.LoadMaskRegistry()
	if err != nil {
		return nil, err
	}
	if name := cfg.Match.Mask; name != "" {
		if _, ok := masks.GetByName(name); !ok {
			return nil, fmt.Errorf("unknown mask %q", name)
		}
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		level:    level,
		running:  true,
	}
	g.node = bridge.NewNode(cfg.Match, g, bridge.WithMasks(masks.All()))
	return g, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.node.Setup(ctx, LevelDictionary(g.level))
	initSpan.SetAttributes(
		attribute.String("level.id", g.level.ID),
		attribute.Int("level.tiles", g.level.Tiles()),
	)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return err
	}
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.node.Destroy()
	g.screen.Close()
	return nil
}

// Emit receives match events from the bridge node.
func (g *Game) Emit(_ context.Context, name string, args ...any) {
	if name == "state_ready" {
		g.message = "ready"
		return
	}
	var parts []string
	for _, a := range args {
		switch v := a.(type) {
		case bridge.Vector3:
			parts = append(parts, fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z))
		case bridge.Dictionary:
			if name, ok := v["name"].(string); ok {
				parts = append(parts, name)
			}
		}
	}
	g.message = strings.TrimSpace(name + " " + strings.Join(parts, " "))
}

func (g *Game) render() {
	m := g.node.Match()
	if m == nil {
		return
	}
	status := []string{"", g.message, helpLine}
	lo, hi := m.Board().Bounds()
	if w, h := ui.Footprint(lo, hi, len(status)); !g.screen.Fits(w, h) {
		g.screen.Clear()
		g.renderer.RenderMessage(fmt.Sprintf("terminal too small, need %dx%d", w, h), 0)
		g.screen.Show()
		return
	}
	s := m.State()
	status[0] = ui.StatusLine(s)
	g.renderer.Render(s, status...)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	action, ok := ActionFor(ev.Key(), ev.Rune())
	if !ok {
		return
	}
	if action.Quit {
		g.running = false
		return
	}
	if err := g.node.Notify(ctx, action.Trigger.String(), action.Args()...); err != nil {
		g.message = err.Error()
	}
}

// LevelDictionary converts a level into the host dictionary a bridge node
// is set up from.
func LevelDictionary(level *gamedata.LevelDef) bridge.Dictionary {
	rows := make(bridge.Array, len(level.Elevation))
	for z, row := range level.Elevation {
		r := make(bridge.Array, len(row))
		for x, e := range row {
			if e != nil {
				r[x] = *e
			}
		}
		rows[z] = r
	}
	return bridge.Dictionary{"elevation": rows}
}
