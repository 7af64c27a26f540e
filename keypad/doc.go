// Package keypad defines the two fixed keypad layouts driven by the robot
// chain: the numeric door pad and the directional control pad.
//
// What:
//
//   - Key is a closed enumeration of every symbol printed on either pad.
//   - Coordinate is a (Row, Col) cell on a pad grid, Row growing downwards.
//   - Pad is an immutable bidirectional Key ↔ Coordinate table plus the one
//     forbidden gap cell that no arm may ever hover over.
//   - Distance runs a breadth-first search over the pad grid, skipping the
//     gap, and is the reference for "shortest" used by the planner.
//
// Layouts:
//
//	Numeric          Directional
//	+---+---+---+        +---+---+
//	| 7 | 8 | 9 |        | ^ | A |
//	+---+---+---+    +---+---+---+
//	| 4 | 5 | 6 |    | < | v | > |
//	+---+---+---+    +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Errors:
//
//   - ErrUnknownKey: a rune that is not printed on either pad.
//   - ErrKeyNotOnPad: a valid key asked of the wrong pad.
//
// CoordinateOf panics on a key that is not on the pad: both enumerations are
// closed, so such a call is a programming error rather than bad input.
package keypad
