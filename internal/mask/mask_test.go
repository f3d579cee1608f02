package mask

import (
	"reflect"
	"testing"
)

func TestParseCross(t *testing.T) {
	p := Parse("cross", []string{
		".#.",
		"#@#",
		".#.",
		".#.",
	})

	if p.Width != 3 || p.Height != 4 {
		t.Errorf("Parse() size = %dx%d, want 3x4", p.Width, p.Height)
	}
	if p.PivotX != 1 || p.PivotY != 1 {
		t.Errorf("Parse() pivot = (%d,%d), want (1,1)", p.PivotX, p.PivotY)
	}

	want := []Offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}, {0, 2}}
	if got := p.Offsets(); !reflect.DeepEqual(got, want) {
		t.Errorf("Offsets() = %v, want %v", got, want)
	}
	if got := p.Size(); got != 5 {
		t.Errorf("Size() = %d, want 5", got)
	}
}

func TestParsePivotFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		wantPivot  [2]int
		wantOffset []Offset
	}{
		{
			name:       "missing pivot defaults to origin",
			rows:       []string{".#", "#."},
			wantPivot:  [2]int{0, 0},
			wantOffset: []Offset{{1, 0}, {0, 1}},
		},
		{
			name:       "duplicate pivot keeps first in row order",
			rows:       []string{"..@", "@#."},
			wantPivot:  [2]int{2, 0},
			wantOffset: []Offset{{-1, 1}},
		},
	}

	for _, tt := range tests {
		p := Parse(tt.name, tt.rows)
		if got := [2]int{p.PivotX, p.PivotY}; got != tt.wantPivot {
			t.Errorf("%s: pivot = %v, want %v", tt.name, got, tt.wantPivot)
		}
		if got := p.Offsets(); !reflect.DeepEqual(got, tt.wantOffset) {
			t.Errorf("%s: Offsets() = %v, want %v", tt.name, got, tt.wantOffset)
		}
	}
}

func TestPatternOn(t *testing.T) {
	p := Parse("sword", []string{".#.", "#@#", ".#."})

	if !p.On(1, 0) {
		t.Error("On(1,0) = false, want true")
	}
	if p.On(1, 1) {
		t.Error("On(1,1) = true for pivot, want false")
	}
	if p.On(5, 5) {
		t.Error("On(5,5) = true outside pattern, want false")
	}
}
