// Package planner chooses, for a single arm, the exact button sequence that
// moves it from one key to another on a keypad and presses the target.
//
// What:
//
//   - Move is one press on a directional pad: Up, Down, Left, Right or Activate.
//   - Path returns the canonical shortest move sequence plus the trailing
//     Activate. From == to yields just [Activate].
//   - Verify replays every ordered pair of a pad and checks the result.
//
// Why a canonical path:
//
//	Several Manhattan-shortest paths usually exist, but they are not equally
//	cheap for the arm one layer up, which has to travel between its own keys
//	to issue each move. Grouping equal moves together and ordering the two
//	runs well is what keeps the higher layers cheap.
//
// Ordering rule:
//
//   - Never hover over the gap.
//   - Moving left: horizontal run first, then vertical.
//   - Otherwise: vertical run first, then horizontal.
//   - If the preferred order would cross the gap, use the other one.
//
// The directional pad is small enough that its 20 paths are stored as an
// explicit table; the numeric pad applies the rule above.
package planner
