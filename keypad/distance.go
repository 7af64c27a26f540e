package keypad

import "fmt"

// walker holds the mutable state of one breadth-first search over a pad.
type walker struct {
	pad   *Pad
	queue []int
	dist  []int // -1 until reached
}

// Distance returns the fewest single-cell steps an arm needs to travel from
// one key to another without hovering over the gap.
// Returns ErrKeyNotOnPad if either key is not printed on p.
// Complexity: O(Rows×Cols).
func (p *Pad) Distance(from, to Key) (int, error) {
	if !p.Has(from) {
		return 0, fmt.Errorf("%w: %s on %s", ErrKeyNotOnPad, from, p.name)
	}
	if !p.Has(to) {
		return 0, fmt.Errorf("%w: %s on %s", ErrKeyNotOnPad, to, p.name)
	}
	w := p.walk(p.coords[from])
	return w.dist[p.index(p.coords[to])], nil
}

// walk runs BFS from start over every non-gap cell.
func (p *Pad) walk(start Coordinate) *walker {
	w := &walker{
		pad:   p,
		queue: make([]int, 0, len(p.cells)),
		dist:  make([]int, len(p.cells)),
	}
	for i := range w.dist {
		w.dist[i] = -1
	}
	w.enqueue(p.index(start), 0)
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		w.enqueueNeighbors(idx)
	}
	return w
}

func (w *walker) enqueue(idx, d int) {
	w.dist[idx] = d
	w.queue = append(w.queue, idx)
}

// enqueueNeighbors visits the orthogonal neighbours of idx that are on the
// grid, not the gap, and not yet reached.
func (w *walker) enqueueNeighbors(idx int) {
	cur := w.pad.coordinate(idx)
	for _, d := range w.pad.neighborOffsets {
		next := cur.Add(d)
		if !w.pad.InBounds(next) || w.pad.IsGap(next) {
			continue
		}
		ni := w.pad.index(next)
		if w.dist[ni] >= 0 {
			continue
		}
		w.enqueue(ni, w.dist[idx]+1)
	}
}
