package board

import (
	"fmt"
	"math"

	"github.com/samdwyer/skirmish/internal/mask"
)

// neighborOffsets lists candidate steps in the order they are tried:
// forward, backward, left, right on the same level, then one level up,
// then one level down. Path tie-breaking depends on this order.
var neighborOffsets = [12]Position{
	{1, 0, 0}, {0, 0, 1}, {-1, 0, 0}, {0, 0, -1},
	{1, 1, 0}, {0, 1, 1}, {-1, 1, 0}, {0, 1, -1},
	{1, -1, 0}, {0, -1, 1}, {-1, -1, 0}, {0, -1, -1},
}

// NeighborOffsets returns the 12 candidate steps in enumeration order.
func NeighborOffsets() []Position {
	out := make([]Position, len(neighborOffsets))
	copy(out, neighborOffsets[:])
	return out
}

// Neighbors returns the filled positions one step away from p, allowing a
// single level of climb or drop per step.
func (b *Board) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d)
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Path returns the cheapest route from start to goal, both inclusive, using
// A* with Dist as heuristic and edge cost.
func (b *Board) Path(start, goal Position) ([]Position, error) {
	if start == goal {
		return []Position{start}, nil
	}

	nodes := make(map[Position]*searchNode)
	node := func(p Position) *searchNode {
		n, ok := nodes[p]
		if !ok {
			n = &searchNode{pos: p, gscore: math.Inf(1), fscore: math.Inf(1)}
			nodes[p] = n
		}
		return n
	}

	first := node(start)
	first.gscore = 0
	first.fscore = Dist(start, goal)
	first.open = true

	open := openSet{}
	open.push(first)

	for len(open) > 0 {
		current := open.pop()
		if current.pos == goal {
			return reconstruct(current), nil
		}
		current.open = false
		current.closed = true

		for _, np := range b.Neighbors(current.pos) {
			n := node(np)
			if n.closed {
				continue
			}
			tentative := current.gscore + Dist(current.pos, n.pos)
			if tentative >= n.gscore {
				continue
			}
			n.cameFrom = current
			n.gscore = tentative
			n.fscore = tentative + Dist(n.pos, goal)
			if !n.open {
				n.open = true
				open.push(n)
			} else {
				open.requeue(n)
			}
		}
	}

	return nil, fmt.Errorf("%v to %v: %w", start, goal, ErrNotFound)
}

func reconstruct(n *searchNode) []Position {
	var path []Position
	for ; n != nil; n = n.cameFrom {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MovableArea expands a FIFO frontier from root and returns every position
// discovered, in discovery order. Expansion stops at the first popped
// position whose Dist from root reaches budget.
func (b *Board) MovableArea(root Position, budget float64) []Position {
	queue := []Position{root}
	discovered := map[Position]bool{root: true}
	area := []Position{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if Dist(v, root) >= budget {
			break
		}
		for _, n := range b.Neighbors(v) {
			if discovered[n] {
				continue
			}
			discovered[n] = true
			area = append(area, n)
			queue = append(queue, n)
		}
	}

	return area
}

// NearestTo returns the candidate closest to target by PlanarDist and its
// distance. Ties keep the earliest candidate. ok is false when candidates is empty.
func NearestTo(target Position, candidates []Position) (nearest Position, distance float64, ok bool) {
	distance = math.Inf(1)
	for _, c := range candidates {
		if d := PlanarDist(target, c); d < distance {
			nearest, distance, ok = c, d, true
		}
	}
	return nearest, distance, ok
}

// NearestNode snaps target onto the terrain.
func (b *Board) NearestNode(target Position) (Position, float64, bool) {
	return NearestTo(target, b.order)
}

// TargetableFrom projects m around pivot's column and lifts each cell onto
// the top of its column. Cells over empty columns are dropped.
func (b *Board) TargetableFrom(pivot Position, m mask.Pattern) []Position {
	origin := pivot.Column()
	offsets := m.Offsets()
	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		if p, ok := b.Top(origin.Offset(o.DX, o.DZ)); ok {
			out = append(out, p)
		}
	}
	return out
}
