// Package mask provides targeting patterns: small fixed 2D templates with a
// single pivot cell, used to enumerate the cells an ability reaches.
package mask

import "log"

const (
	// CellPivot marks the pattern's anchor cell in authored rows.
	CellPivot = '@'
	// CellOn marks a targeted cell in authored rows.
	CellOn = '#'
)

// Offset is a cell position relative to a pattern's pivot.
// DX runs along the board's x axis, DZ along its z axis.
type Offset struct {
	DX, DZ int
}

// Pattern is an immutable targeting template.
type Pattern struct {
	Name          string
	Width, Height int
	PivotX        int
	PivotY        int
	cells         [][]bool
}

// Parse builds a Pattern from authored text rows. '@' marks the pivot, '#'
// marks an "on" cell and any other rune is off.
//
// Authoring errors are tolerated: with no pivot the pivot defaults to (0,0),
// with several the first one in row-major order wins. Both cases log a warning.
func Parse(name string, rows []string) Pattern {
	p := Pattern{
		Name:   name,
		Height: len(rows),
		cells:  make([][]bool, len(rows)),
	}

	var pivots [][2]int
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) > p.Width {
			p.Width = len(runes)
		}
		p.cells[y] = make([]bool, len(runes))
		for x, r := range runes {
			switch r {
			case CellPivot:
				pivots = append(pivots, [2]int{x, y})
			case CellOn:
				p.cells[y][x] = true
			}
		}
	}

	switch {
	case len(pivots) == 0:
		log.Printf("warning: mask %q has no pivot, using (0,0)", name)
	case len(pivots) > 1:
		p.PivotX, p.PivotY = pivots[0][0], pivots[0][1]
		log.Printf("warning: mask %q has %d pivots, using first at (%d,%d)",
			name, len(pivots), p.PivotX, p.PivotY)
	default:
		p.PivotX, p.PivotY = pivots[0][0], pivots[0][1]
	}

	return p
}

// On reports whether the cell at (x, y) of the pattern grid is targeted.
func (p Pattern) On(x, y int) bool {
	if y < 0 || y >= len(p.cells) || x < 0 || x >= len(p.cells[y]) {
		return false
	}
	return p.cells[y][x]
}

// Offsets returns the targeted cells relative to the pivot, scanning the
// pattern row by row. The pivot itself is never included.
func (p Pattern) Offsets() []Offset {
	offsets := make([]Offset, 0, p.Width*p.Height)
	for y := range p.cells {
		for x, on := range p.cells[y] {
			if on {
				offsets = append(offsets, Offset{DX: x - p.PivotX, DZ: y - p.PivotY})
			}
		}
	}
	return offsets
}

// Size returns the number of targeted cells.
func (p Pattern) Size() int {
	n := 0
	for y := range p.cells {
		for _, on := range p.cells[y] {
			if on {
				n++
			}
		}
	}
	return n
}
