// Package solver turns door codes into human press counts and complexity
// scores, one code at a time or over a whole batch.
//
// What:
//
//   - ParseCode / ParseCodes: validate codes against the numeric keypad.
//   - Solver.Solve(code, depth): presses for one code through depth
//     directional robots, its numeric value and complexity.
//   - Sum / SumResults: complexity summed over a batch, sharing one cache.
//
// A code is typed starting from A: the door arm rests on A, moves to the
// first key, presses it, and so on. The presses for a code are the sum of
// cost.Engine.MoveCountNumeric over consecutive pairs of "A"+code.
// Complexity is presses × the code's digits read as a base-10 number.
//
// Options:
//
//   - WithContext(ctx): cancel a batch between codes.
//   - WithWorkers(n):   solve n codes concurrently over the shared cache.
//   - WithCache(c):     reuse a cost.Cache across calls.
//   - WithOnMiss(fn):   forwarded to the cost engine.
//   - WithOnResult(fn): called for every solved code.
//
// Errors:
//
//   - ErrEmptyCode:       code has no keys.
//   - ErrInvalidCode:     code is not digits followed by one trailing A,
//     or has more digits than fit in a uint64.
//   - ErrNegativeDepth:   depth < 0.
//   - ErrOptionViolation: invalid option such as WithWorkers(0).
package solver
