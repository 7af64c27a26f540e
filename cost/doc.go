// Package cost computes how many human presses it takes to make the arm at
// the bottom of a chain of directional-keypad robots emit a given sequence.
//
// What:
//
//   - Engine.Cost(depth, seq): minimum human presses for seq at depth.
//   - Engine.MoveCountDirectional(from, to, depth): one directional
//     transition plus its press, memoized on (depth, from, to).
//   - Engine.MoveCountNumeric(from, to, depth): one door-keypad transition
//     driven by a depth-layer directional chain.
//   - Expand(depth, seq): the literal human press string, for small depths.
//
// Model:
//
//	Every arm rests on A before and after a full move+press sequence, so a
//	sequence at depth d splits into independent transitions prev→next,
//	each of which the arm one layer up must realize as
//	planner.Path(prev, next). Depth 0 is the human: one press per symbol.
//
//	Cost(0, s)   = len(s)
//	Cost(d, s)   = Σ move(prev, next, d) over consecutive pairs of A+s
//	move(p, n, d) = 1                                       if p == n
//	             = Cost(d-1, planner.Path(dir, p, n))       otherwise
//
// Complexity:
//
//	Without memoization the expansion grows exponentially with depth. The
//	Cache holds at most depth×5×5 entries, so Cost is O(depth×25) the first
//	time and O(len(seq)) once warm.
//
// Concurrency:
//
//	Cache is guarded by a mutex and may be shared by engines running on
//	different goroutines. Two goroutines may compute the same entry; the
//	value is a pure function of its key, so the second store is a no-op.
//
// Errors:
//
//	The engine has no recoverable errors. A negative depth or a key that
//	is not on the expected pad is a programming error and panics, as does
//	a press count that overflows uint64 (ErrOverflow).
package cost
