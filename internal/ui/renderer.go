package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/match"
)

// CellWidth is the number of terminal columns per board column.
const CellWidth = 2

// Renderer draws a top-down view of the board: one cell per column showing
// the height of its top tile, tinted by the overlay, with characters and the
// cursor drawn on top.
type Renderer struct {
	canvas  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(canvas Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the match state and the status lines below it.
func (r *Renderer) Render(s match.Snapshot, status ...string) {
	r.canvas.Clear()

	tops := topTiles(s.Terrain)
	lo, hi := bounds(tops)

	for col, p := range tops {
		style := tcell.StyleDefault.Foreground(r.palette.Terrain)
		if p.Y > 0 {
			style = style.Foreground(r.palette.TerrainHigh)
		}
		if tag, ok := s.Overlay[p]; ok {
			if c, ok := r.palette.TagColor(tag); ok {
				style = style.Background(c)
			}
		}
		x, y := screenPos(col, lo)
		r.canvas.SetContent(x, y, HeightRune(p.Y), style)
	}

	for _, c := range s.Characters {
		style := tcell.StyleDefault.Foreground(r.palette.TeamColor(s.TeamIndex(c.TeamID))).Bold(true)
		glyph := TeamRune(s.TeamIndex(c.TeamID))
		if s.Selected != nil && s.Selected.ID == c.ID {
			glyph = '@'
		}
		if tag, ok := s.Overlay[c.Position]; ok {
			if bg, ok := r.palette.TagColor(tag); ok {
				style = style.Background(bg)
			}
		}
		x, y := screenPos(c.Position.Column(), lo)
		r.canvas.SetContent(x, y, glyph, style)
	}

	cx, cy := screenPos(s.Cursor.Column(), lo)
	cursorStyle := tcell.StyleDefault.Foreground(r.palette.Cursor).Bold(true)
	r.canvas.SetContent(cx-1, cy, '[', cursorStyle)
	r.canvas.SetContent(cx+1, cy, ']', cursorStyle)

	line := hi.Z - lo.Z + 2
	for i, msg := range status {
		r.RenderMessage(msg, line+i)
	}

	r.canvas.Show()
}

// RenderMessage writes a message starting at the left edge of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.palette.Selected)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}

// StatusLine summarizes whose turn it is.
func StatusLine(s match.Snapshot) string {
	if s.Selected == nil {
		return "waiting for setup"
	}
	line := fmt.Sprintf("%s (team %c) at %v  hp %d  mask %s",
		s.Selected.Name, TeamRune(s.TeamIndex(s.Selected.TeamID)), s.Selected.Position,
		s.Selected.HitPoints, s.Mask)
	if c, ok := s.CharacterAt(s.Cursor); ok && c.ID != s.Selected.ID {
		line += fmt.Sprintf("  cursor: %s (team %c) hp %d", c.Name, TeamRune(s.TeamIndex(c.TeamID)), c.HitPoints)
	}
	return line
}

// Footprint returns the terminal size needed to draw a board spanning lo..hi
// with the given number of status lines below it.
func Footprint(lo, hi board.Position, statusLines int) (width, height int) {
	width = 1 + (hi.X-lo.X+1)*CellWidth
	height = hi.Z - lo.Z + 2 + statusLines
	return width, height
}

// HeightRune returns the glyph for a tile at height y.
func HeightRune(y int) rune {
	switch {
	case y < 0:
		return '_'
	case y > 9:
		return '^'
	default:
		return rune('0' + y)
	}
}

// TeamRune returns the glyph for the team at roster index i.
func TeamRune(i int) rune {
	if i < 0 || i >= 26 {
		return '?'
	}
	return rune('A' + i)
}

// topTiles returns the highest tile of every column.
func topTiles(terrain map[board.Position]board.Tile) map[board.Column]board.Position {
	tops := make(map[board.Column]board.Position)
	for p := range terrain {
		col := p.Column()
		if t, ok := tops[col]; !ok || p.Y > t.Y {
			tops[col] = p
		}
	}
	return tops
}

func bounds(tops map[board.Column]board.Position) (lo, hi board.Column) {
	first := true
	for col := range tops {
		if first {
			lo, hi = col, col
			first = false
			continue
		}
		lo.X, lo.Z = min(lo.X, col.X), min(lo.Z, col.Z)
		hi.X, hi.Z = max(hi.X, col.X), max(hi.Z, col.Z)
	}
	return lo, hi
}

// screenPos maps a board column to a terminal cell, leaving one cell of
// margin on the left for the cursor bracket.
func screenPos(col, origin board.Column) (x, y int) {
	return 1 + (col.X-origin.X)*CellWidth, col.Z - origin.Z
}
