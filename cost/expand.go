package cost

import (
	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/planner"
)

// Expand returns the literal sequence the human types so that the arm at the
// bottom of a depth-layer chain emits seq. len(Expand(d, s)) == Cost(d, s).
// The result grows exponentially with depth; use it for display and checks
// at small depths only.
func Expand(depth int, seq planner.Sequence) planner.Sequence {
	mustDepth(depth)
	if depth == 0 {
		return append(planner.Sequence(nil), seq...)
	}
	dir := keypad.Directional()
	var out planner.Sequence
	prev := keypad.KeyA
	for _, m := range seq {
		next := m.Key()
		out = append(out, Expand(depth-1, planner.Path(dir, prev, next))...)
		prev = next
	}
	return out
}
