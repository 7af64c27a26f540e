package planner

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// Visits replays seq on p starting at from and returns every cell the arm
// rests on, the start included. Activate does not move the arm.
// Returns ErrOffPad or ErrGapVisited at the first invalid step.
func Visits(p *keypad.Pad, from keypad.Key, seq Sequence) ([]keypad.Coordinate, error) {
	cur := p.CoordinateOf(from)
	cells := make([]keypad.Coordinate, 1, len(seq)+1)
	cells[0] = cur
	for i, m := range seq {
		if m == Activate {
			continue
		}
		cur = cur.Add(m.Offset())
		if !p.InBounds(cur) {
			return cells, fmt.Errorf("%w: move %d (%s) to %s", ErrOffPad, i, m, cur)
		}
		if p.IsGap(cur) {
			return cells, fmt.Errorf("%w: move %d (%s) to %s", ErrGapVisited, i, m, cur)
		}
		cells = append(cells, cur)
	}
	return cells, nil
}

// Verify checks Path for every ordered pair of keys on p: the arm never
// crosses the gap, ends on the target, presses exactly once at the end, and
// travels no further than the breadth-first distance.
func Verify(p *keypad.Pad) error {
	for _, e := range Table(p) {
		if err := verifyEntry(p, e); err != nil {
			return fmt.Errorf("%s %s→%s %q: %w", p, e.From, e.To, e.Path, err)
		}
	}
	return nil
}

func verifyEntry(p *keypad.Pad, e Entry) error {
	if len(e.Path) == 0 || e.Path[len(e.Path)-1] != Activate {
		return fmt.Errorf("%w: missing trailing activate", ErrWrongTarget)
	}
	cells, err := Visits(p, e.From, e.Path)
	if err != nil {
		return err
	}
	if end, _ := p.KeyAt(cells[len(cells)-1]); end != e.To {
		return fmt.Errorf("%w: ended on %s", ErrWrongTarget, end)
	}
	d, err := p.Distance(e.From, e.To)
	if err != nil {
		return err
	}
	if moves := len(e.Path) - 1; moves != d {
		return fmt.Errorf("%w: %d moves, distance %d", ErrNotShortest, moves, d)
	}
	return nil
}
