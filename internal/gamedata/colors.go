package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/board"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// PaletteDef is the authored form of palette.json. Tags are keyed by
// overlay tag name.
type PaletteDef struct {
	Terrain     string            `json:"terrain"`
	TerrainHigh string            `json:"terrainHigh"`
	Cursor      string            `json:"cursor"`
	Selected    string            `json:"selected"`
	Tags        map[string]string `json:"tags"`
	Teams       []string          `json:"teams"`
}

// Palette holds the board display colors.
type Palette struct {
	Terrain     tcell.Color // lowest tiles
	TerrainHigh tcell.Color // highest tiles
	Cursor      tcell.Color
	Selected    tcell.Color
	Tags        map[board.Tag]tcell.Color
	Teams       []tcell.Color // by roster index, cycled
}

var overlayTags = []board.Tag{
	board.TagMovable,
	board.TagFriendly,
	board.TagEnemy,
	board.TagTargetable,
	board.TagSelf,
}

// Resolve parses every color in the definition.
func (d PaletteDef) Resolve() (*Palette, error) {
	p := &Palette{Tags: make(map[board.Tag]tcell.Color)}

	for _, c := range []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"terrain", d.Terrain, &p.Terrain},
		{"terrainHigh", d.TerrainHigh, &p.TerrainHigh},
		{"cursor", d.Cursor, &p.Cursor},
		{"selected", d.Selected, &p.Selected},
	} {
		color, err := ParseHexColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", c.name, err)
		}
		*c.dst = color
	}

	for _, tag := range overlayTags {
		hex, ok := d.Tags[tag.String()]
		if !ok {
			continue
		}
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette tag %s: %w", tag, err)
		}
		p.Tags[tag] = color
	}

	for i, hex := range d.Teams {
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette team %d: %w", i, err)
		}
		p.Teams = append(p.Teams, color)
	}

	return p, nil
}

// TagColor returns the color for an overlay tag, if the palette has one.
func (p *Palette) TagColor(t board.Tag) (tcell.Color, bool) {
	c, ok := p.Tags[t]
	return c, ok
}

// TeamColor returns the color for the team at roster index i.
func (p *Palette) TeamColor(i int) tcell.Color {
	if len(p.Teams) == 0 || i < 0 {
		return tcell.ColorDefault
	}
	return p.Teams[i%len(p.Teams)]
}

// LoadPalette loads and resolves the embedded palette.json.
func LoadPalette() (*Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return nil, err
	}
	return def.Resolve()
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}
