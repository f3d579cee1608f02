// Package entity provides the characters and teams taking part in a match.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/skirmish/internal/board"
)

// Default property values for characters created without them.
const (
	DefaultCharacterName = "Unnamed Character"
	DefaultHitPoints     = 1
)

// Properties describes a character to create. Zero values fall back to defaults.
type Properties struct {
	ID           string
	Name         string
	HitPoints    int
	TeamID       string
	Position     board.Position
	LastPosition board.Position
}

// Character is a unit on the board.
type Character struct {
	ID           string         // Stable for the whole match
	Name         string         // Display name
	HitPoints    int            // Current hit points
	TeamID       string         // Owning team, empty until assigned
	Position     board.Position // Current tile
	LastPosition board.Position // Tile held at the end of the previous turn
}

// NewCharacter creates a character from props, generating an ID when none is given.
func NewCharacter(props Properties) *Character {
	c := &Character{
		ID:           props.ID,
		Name:         props.Name,
		HitPoints:    props.HitPoints,
		TeamID:       props.TeamID,
		Position:     props.Position,
		LastPosition: props.LastPosition,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Name == "" {
		c.Name = DefaultCharacterName
	}
	if c.HitPoints == 0 {
		c.HitPoints = DefaultHitPoints
	}
	return c
}

// MoveTo updates the current position. LastPosition is left untouched.
func (c *Character) MoveTo(p board.Position) {
	c.Position = p
}

// Place puts the character on p as its starting tile.
func (c *Character) Place(p board.Position) {
	c.Position = p
	c.LastPosition = p
}

// EndTurn records the current position as the last position.
func (c *Character) EndTurn() {
	c.LastPosition = c.Position
}

// Snapshot returns a detached copy of the character.
func (c *Character) Snapshot() CharacterState {
	return CharacterState{
		ID:           c.ID,
		Name:         c.Name,
		HitPoints:    c.HitPoints,
		TeamID:       c.TeamID,
		Position:     c.Position,
		LastPosition: c.LastPosition,
	}
}

// CharacterState is a flat, detached view of a character.
type CharacterState struct {
	ID           string
	Name         string
	HitPoints    int
	TeamID       string
	Position     board.Position
	LastPosition board.Position
}

// Record returns the state as a keyed structural value.
func (s CharacterState) Record() map[string]any {
	return map[string]any{
		"id":            s.ID,
		"position":      s.Position,
		"name":          s.Name,
		"hit_points":    s.HitPoints,
		"team_id":       s.TeamID,
		"last_position": s.LastPosition,
	}
}

// PropertiesFromRecord reads character properties from a keyed structural
// value. Missing or mistyped keys keep their zero value.
func PropertiesFromRecord(r map[string]any) Properties {
	var p Properties
	p.ID, _ = r["id"].(string)
	p.Name, _ = r["name"].(string)
	p.TeamID, _ = r["team_id"].(string)
	p.Position, _ = r["position"].(board.Position)
	p.LastPosition, _ = r["last_position"].(board.Position)
	switch hp := r["hit_points"].(type) {
	case int:
		p.HitPoints = hp
	case float64:
		p.HitPoints = int(hp)
	}
	if _, ok := r["last_position"]; !ok {
		p.LastPosition = p.Position
	}
	return p
}
