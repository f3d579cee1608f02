package match

import (
	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/entity"
)

// Snapshot is a detached copy of the match state.
type Snapshot struct {
	Terrain    map[board.Position]board.Tile
	Overlay    map[board.Position]board.Tag
	Selected   *entity.CharacterState // nil before Setup
	Characters []entity.CharacterState
	Teams      []entity.TeamState
	Movable    []board.Position
	Targetable []board.Position
	Cursor     board.Position
	Mask       string
	Phase      Phase
}

// State returns a snapshot of the match.
func (m *Match) State() Snapshot {
	s := Snapshot{
		Terrain:    m.board.Terrain(),
		Overlay:    m.board.Overlay(),
		Characters: make([]entity.CharacterState, len(m.characters)),
		Teams:      make([]entity.TeamState, len(m.teams)),
		Movable:    append([]board.Position(nil), m.movable...),
		Targetable: append([]board.Position(nil), m.targetable...),
		Cursor:     m.cursor,
		Mask:       m.mask.Name,
		Phase:      m.phase,
	}
	for i, c := range m.characters {
		s.Characters[i] = c.Snapshot()
	}
	for i, t := range m.teams {
		s.Teams[i] = t.Snapshot()
	}
	if c := m.selected(); c != nil {
		cs := c.Snapshot()
		s.Selected = &cs
	}
	return s
}

// Record returns the snapshot as keyed structural values for the host.
// Grids are keyed by position with integer tile and tag values.
func (s Snapshot) Record() map[string]any {
	grid := make(map[board.Position]any, len(s.Terrain))
	for p, t := range s.Terrain {
		grid[p] = int(t)
	}
	meta := make(map[board.Position]any, len(s.Overlay))
	for p, t := range s.Overlay {
		meta[p] = int(t)
	}

	var selected any
	if s.Selected != nil {
		selected = s.Selected.Record()
	}

	characters := make([]any, len(s.Characters))
	for i, c := range s.Characters {
		characters[i] = c.Record()
	}
	teams := make([]any, len(s.Teams))
	for i, t := range s.Teams {
		teams[i] = t.Record()
	}

	return map[string]any{
		"grid":               grid,
		"meta_grid":          meta,
		"selected_character": selected,
		"characters":         characters,
		"teams":              teams,
		"cursor":             s.Cursor,
		"mask":               s.Mask,
	}
}

// CharacterAt returns the character standing on p.
func (s Snapshot) CharacterAt(p board.Position) (entity.CharacterState, bool) {
	for _, c := range s.Characters {
		if c.Position == p {
			return c, true
		}
	}
	return entity.CharacterState{}, false
}

// TeamIndex returns the roster index of the team with the given id, or -1.
func (s Snapshot) TeamIndex(id string) int {
	for i, t := range s.Teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

