package board

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no path connects two positions.
	ErrNotFound = errors.New("no path found")
	// ErrOutOfBounds is returned when an elevation source is smaller than its declared shape.
	ErrOutOfBounds = errors.New("elevation index out of bounds")
)

// Board holds the static terrain and the per-turn overlay.
type Board struct {
	terrain map[Position]Tile
	order   []Position // terrain positions in insertion order
	columns map[Column][]Position
	overlay map[Position]Tag
}

// New creates a board from an explicit list of filled positions.
// Duplicate positions are ignored.
func New(positions []Position) *Board {
	b := &Board{overlay: make(map[Position]Tag)}
	b.setTerrain(positions)
	return b
}

// NewFromElevation creates a board from a column elevation map indexed as
// elevation[z][x]. A nil entry leaves that column without a tile.
func NewFromElevation(elevation [][]*int, width, depth int) (*Board, error) {
	if width < 0 || depth < 0 {
		return nil, fmt.Errorf("shape %dx%d: %w", width, depth, ErrOutOfBounds)
	}
	if len(elevation) < depth {
		return nil, fmt.Errorf("want %d rows, got %d: %w", depth, len(elevation), ErrOutOfBounds)
	}
	for z := 0; z < depth; z++ {
		if len(elevation[z]) < width {
			return nil, fmt.Errorf("row %d: want %d columns, got %d: %w",
				z, width, len(elevation[z]), ErrOutOfBounds)
		}
	}

	positions := make([]Position, 0, width*depth)
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			if e := elevation[z][x]; e != nil {
				positions = append(positions, Position{X: x, Y: *e, Z: z})
			}
		}
	}

	return New(positions), nil
}

// setTerrain rebuilds the terrain and its column index.
func (b *Board) setTerrain(positions []Position) {
	b.terrain = make(map[Position]Tile, len(positions))
	b.order = make([]Position, 0, len(positions))
	b.columns = make(map[Column][]Position)

	for _, p := range positions {
		if _, ok := b.terrain[p]; ok {
			continue
		}
		b.terrain[p] = TileFilled
		b.order = append(b.order, p)
		col := p.Column()
		b.columns[col] = append(b.columns[col], p)
	}
}

// TileAt returns the terrain tile at p, or TileEmpty.
func (b *Board) TileAt(p Position) Tile {
	if t, ok := b.terrain[p]; ok {
		return t
	}
	return TileEmpty
}

// Contains returns true if p is a filled terrain position.
func (b *Board) Contains(p Position) bool {
	return b.TileAt(p).IsFilled()
}

// Len returns the number of filled positions.
func (b *Board) Len() int {
	return len(b.order)
}

// Positions returns the filled positions in insertion order.
func (b *Board) Positions() []Position {
	out := make([]Position, len(b.order))
	copy(out, b.order)
	return out
}

// Terrain returns a copy of the terrain grid.
func (b *Board) Terrain() map[Position]Tile {
	out := make(map[Position]Tile, len(b.terrain))
	for p, t := range b.terrain {
		out[p] = t
	}
	return out
}

// ColumnAt returns the positions stacked in column c.
func (b *Board) ColumnAt(c Column) []Position {
	stack := b.columns[c]
	out := make([]Position, len(stack))
	copy(out, stack)
	return out
}

// Top returns the highest position in column c.
func (b *Board) Top(c Column) (Position, bool) {
	stack := b.columns[c]
	if len(stack) == 0 {
		return Position{}, false
	}
	top := stack[0]
	for _, p := range stack[1:] {
		if p.Y > top.Y {
			top = p
		}
	}
	return top, true
}

// Bounds returns the minimum and maximum corners of the terrain.
// Both are zero for an empty board.
func (b *Board) Bounds() (Position, Position) {
	if len(b.order) == 0 {
		return Position{}, Position{}
	}
	lo, hi := b.order[0], b.order[0]
	for _, p := range b.order[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}
	return lo, hi
}

// SetOverlay replaces the overlay. Tags are written in the order movable,
// targetable, friendly, enemy; a later write wins for the same position.
// Self tiles are accepted but not written yet.
func (b *Board) SetOverlay(movable, targetable, friendly, enemy, self []Position) {
	overlay := make(map[Position]Tag, len(movable)+len(targetable))
	for _, p := range movable {
		overlay[p] = TagMovable
	}
	for _, p := range targetable {
		overlay[p] = TagTargetable
	}
	for _, p := range friendly {
		overlay[p] = TagFriendly
	}
	for _, p := range enemy {
		overlay[p] = TagEnemy
	}
	// TODO: write TagSelf once self tiles have a display treatment.
	_ = self

	b.overlay = overlay
}

// Overlay returns a copy of the overlay grid.
func (b *Board) Overlay() map[Position]Tag {
	out := make(map[Position]Tag, len(b.overlay))
	for p, t := range b.overlay {
		out[p] = t
	}
	return out
}

// OverlayAt returns the overlay tag at p, if any.
func (b *Board) OverlayAt(p Position) (Tag, bool) {
	t, ok := b.overlay[p]
	return t, ok
}
