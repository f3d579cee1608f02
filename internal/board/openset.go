package board

// searchNode is the per-position bookkeeping of a path search.
type searchNode struct {
	pos      Position
	gscore   float64
	fscore   float64
	closed   bool
	open     bool
	cameFrom *searchNode
}

// openSet is a binary min-heap on fscore.
//
// Equal scores are common on a grid, so the exact sift sequence decides which
// of several shortest paths is returned. push sifts toward the root on strict
// less, pop sifts the hole down to a leaf (right child on ties) before sifting
// back up, and requeue removes the node from the backing slice and pushes it
// again without re-heapifying. Paths are pinned by tests; keep this sequence.
type openSet []*searchNode

func (h *openSet) push(n *searchNode) {
	*h = append(*h, n)
	h.siftDown(0, len(*h)-1)
}

func (h *openSet) pop() *searchNode {
	s := *h
	last := s[len(s)-1]
	s = s[:len(s)-1]
	*h = s
	if len(s) == 0 {
		return last
	}
	top := s[0]
	s[0] = last
	h.siftUp(0)
	return top
}

func (h *openSet) requeue(n *searchNode) {
	s := *h
	for i, m := range s {
		if m == n {
			s = append(s[:i], s[i+1:]...)
			break
		}
	}
	*h = s
	h.push(n)
}

// siftDown moves the node at pos toward start while it is smaller than its parent.
func (h openSet) siftDown(start, pos int) {
	item := h[pos]
	for pos > start {
		parent := (pos - 1) >> 1
		if item.fscore < h[parent].fscore {
			h[pos] = h[parent]
			pos = parent
			continue
		}
		break
	}
	h[pos] = item
}

// siftUp bubbles the smaller child into the hole at pos until a leaf is
// reached, then places the displaced node and sifts it back toward pos.
func (h openSet) siftUp(pos int) {
	end := len(h)
	start := pos
	item := h[pos]
	child := 2*pos + 1
	for child < end {
		right := child + 1
		if right < end && !(h[child].fscore < h[right].fscore) {
			child = right
		}
		h[pos] = h[child]
		pos = child
		child = 2*pos + 1
	}
	h[pos] = item
	h.siftDown(start, pos)
}
