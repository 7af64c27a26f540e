// Package padchain counts the key presses a human needs to type a door code
// through a chain of robots, each robot pressing buttons on the directional
// keypad of the next, the last one typing on a numeric keypad.
//
// Under the hood, everything is organized under four subpackages:
//
//	keypad/  : the two fixed layouts, key ↔ cell lookup and gap-aware distance
//	planner/ : the canonical shortest press sequence between two keys
//	cost/    : memoized press counts through any number of robot layers
//	solver/  : door codes, complexity scores and batch sums
//
// Quick example:
//
//	codes, _ := solver.ParseCodes(strings.NewReader("029A\n980A\n"))
//	total, _ := solver.Sum(codes, 25)
//
// The padchain command (cmd/padchain) wraps the same API with config
// files, structured logging and a SQLite run history.
package padchain
