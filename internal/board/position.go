package board

import (
	"fmt"
	"math"
)

// VerticalWeight scales vertical steps in Dist.
const VerticalWeight = 2.0

// Position is a tile coordinate. X and Z are horizontal, Y is the level.
type Position struct {
	X, Y, Z int
}

// Add returns the component-wise sum of p and d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z + d.Z}
}

// Column returns the (x, z) column containing p.
func (p Position) Column() Column {
	return Column{X: p.X, Z: p.Z}
}

// String formats the position as (x, y, z).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Less orders positions by x, then y, then z.
func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}

// Column is a vertical stack of positions sharing x and z.
type Column struct {
	X, Z int
}

// Offset returns the column shifted by dx along x and dz along z.
func (c Column) Offset(dx, dz int) Column {
	return Column{X: c.X + dx, Z: c.Z + dz}
}

// Dist returns the weighted Manhattan distance between a and b.
// It is both the A* heuristic and the edge cost between neighbors.
func Dist(a, b Position) float64 {
	return math.Abs(float64(b.X-a.X)) +
		math.Abs(float64(b.Y-a.Y))*VerticalWeight +
		math.Abs(float64(b.Z-a.Z))
}

// PlanarDist returns the straight-line distance between a and b in the
// horizontal plane. The vertical component is ignored.
func PlanarDist(a, b Position) float64 {
	dx := float64(b.X - a.X)
	dz := float64(b.Z - a.Z)
	return math.Sqrt(dx*dx + dz*dz)
}
