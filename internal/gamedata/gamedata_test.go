package gamedata

import (
	"reflect"
	"testing"

	"github.com/samdwyer/skirmish/internal/board"
	"github.com/samdwyer/skirmish/internal/mask"
)

func TestLoadMasks(t *testing.T) {
	masks, err := LoadMasks()
	if err != nil {
		t.Fatalf("LoadMasks() error: %v", err)
	}

	want := []struct {
		name          string
		width, height int
		cells         int
	}{
		{"cross", 3, 4, 5},
		{"spear", 5, 5, 8},
		{"sword", 3, 3, 4},
		{"x", 5, 5, 8},
	}
	if len(masks) != len(want) {
		t.Fatalf("LoadMasks() returned %d masks, want %d", len(masks), len(want))
	}
	for i, w := range want {
		m := masks[i]
		if m.Name != w.name || m.Width != w.width || m.Height != w.height {
			t.Errorf("mask %d = %s %dx%d, want %s %dx%d", i, m.Name, m.Width, m.Height, w.name, w.width, w.height)
		}
		if n := len(m.Offsets()); n != w.cells {
			t.Errorf("%s has %d cells, want %d", m.Name, n, w.cells)
		}
	}

	cross := []mask.Offset{{DX: 0, DZ: -1}, {DX: -1, DZ: 0}, {DX: 1, DZ: 0}, {DX: 0, DZ: 1}, {DX: 0, DZ: 2}}
	if got := masks[0].Offsets(); !reflect.DeepEqual(got, cross) {
		t.Errorf("cross Offsets() = %v, want %v", got, cross)
	}
}

func TestMaskRegistry(t *testing.T) {
	registry, err := LoadMaskRegistry()
	if err != nil {
		t.Fatalf("LoadMaskRegistry() error: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Count() = %d, want 4", registry.Count())
	}
	if m, ok := registry.GetByName("spear"); !ok || m.PivotX != 2 || m.PivotY != 2 {
		t.Errorf("GetByName(spear) = %+v, %v; want pivot (2,2)", m, ok)
	}
	if _, ok := registry.GetByName("hammer"); ok {
		t.Error("GetByName(hammer) found a mask")
	}
}

func TestLevelRegistry(t *testing.T) {
	registry, err := LoadLevelRegistry()
	if err != nil {
		t.Fatalf("LoadLevelRegistry() error: %v", err)
	}

	level := registry.GetByID("proving-grounds")
	if level == nil {
		t.Fatal("proving-grounds not found")
	}
	if level.Width() != 10 || level.Depth() != 10 || level.Tiles() != 91 {
		t.Errorf("proving-grounds = %dx%d with %d tiles, want 10x10 with 91",
			level.Width(), level.Depth(), level.Tiles())
	}
	if registry.GetByID("nowhere") != nil {
		t.Error("GetByID(nowhere) found a level")
	}

	for _, l := range registry.All() {
		b, err := board.NewFromElevation(l.Elevation, l.Width(), l.Depth())
		if err != nil {
			t.Errorf("level %s: NewFromElevation() error: %v", l.ID, err)
			continue
		}
		if b.Len() != l.Tiles() {
			t.Errorf("level %s: board has %d tiles, want %d", l.ID, b.Len(), l.Tiles())
		}
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error: %v", err)
	}

	for _, tag := range overlayTags {
		if _, ok := p.TagColor(tag); !ok {
			t.Errorf("palette has no color for %s", tag)
		}
	}
	if p.TeamColor(0) == p.TeamColor(1) {
		t.Error("first two teams share a color")
	}
	if p.TeamColor(len(p.Teams)) != p.TeamColor(0) {
		t.Error("TeamColor() does not cycle")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestPaletteResolveError(t *testing.T) {
	def := PaletteDef{Terrain: "#000000", TerrainHigh: "#FFFFFF", Cursor: "nope", Selected: "#FFFFFF"}
	if _, err := def.Resolve(); err == nil {
		t.Error("Resolve() with a bad cursor color succeeded")
	}
}
