package planner

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// dirIndex orders the directional keys for directionalTable.
func dirIndex(k keypad.Key) int {
	switch k {
	case keypad.KeyA:
		return 0
	case keypad.KeyUp:
		return 1
	case keypad.KeyDown:
		return 2
	case keypad.KeyLeft:
		return 3
	case keypad.KeyRight:
		return 4
	}
	panic(fmt.Sprintf("planner: key %s is not on the directional pad", k))
}

// directionalTable[from][to] holds the optimal moves, without the trailing
// Activate, between two directional keys. Rows and columns follow dirIndex.
var directionalTable = [5][5]Sequence{
	//        A                    ^                    v                    <                       >
	/* A */ {nil, mustSequence("<"), mustSequence("<v"), mustSequence("v<<"), mustSequence("v")},
	/* ^ */ {mustSequence(">"), nil, mustSequence("v"), mustSequence("v<"), mustSequence("v>")},
	/* v */ {mustSequence("^>"), mustSequence("^"), nil, mustSequence("<"), mustSequence(">")},
	/* < */ {mustSequence(">>^"), mustSequence(">^"), mustSequence(">"), nil, mustSequence(">>")},
	/* > */ {mustSequence("^"), mustSequence("<^"), mustSequence("<"), mustSequence("<<"), nil},
}

// Path returns the moves that take an arm on p from one key to another,
// followed by the Activate that presses the target.
// It panics if either key is not printed on p.
func Path(p *keypad.Pad, from, to keypad.Key) Sequence {
	var moves Sequence
	if p == keypad.Directional() {
		moves = directionalTable[dirIndex(from)][dirIndex(to)]
	} else {
		moves = ruleMoves(p, from, to)
	}
	seq := make(Sequence, 0, len(moves)+1)
	seq = append(seq, moves...)
	return append(seq, Activate)
}

// ruleMoves applies the ordering rule on any pad: left-moving paths take the
// horizontal run first, everything else the vertical run first, and the
// order flips whenever the chosen corner is the gap.
func ruleMoves(p *keypad.Pad, from, to keypad.Key) Sequence {
	a, b := p.CoordinateOf(from), p.CoordinateOf(to)
	dr, dc := b.Row-a.Row, b.Col-a.Col

	horizontalFirst := dc < 0
	if horizontalFirst && p.IsGap(keypad.Coordinate{Row: a.Row, Col: b.Col}) {
		horizontalFirst = false
	} else if !horizontalFirst && p.IsGap(keypad.Coordinate{Row: b.Row, Col: a.Col}) {
		horizontalFirst = true
	}

	vertical := run(Up, Down, dr)
	horizontal := run(Left, Right, dc)
	moves := make(Sequence, 0, len(vertical)+len(horizontal))
	if horizontalFirst {
		return append(append(moves, horizontal...), vertical...)
	}
	return append(append(moves, vertical...), horizontal...)
}

// run repeats neg or pos |n| times depending on the sign of n.
func run(neg, pos Move, n int) Sequence {
	m := pos
	if keypad.Sign(n) < 0 {
		m, n = neg, -n
	}
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = m
	}
	return seq
}

// RulePath is Path computed from the ordering rule alone, bypassing the
// directional table.
func RulePath(p *keypad.Pad, from, to keypad.Key) Sequence {
	return append(ruleMoves(p, from, to), Activate)
}

// Table returns Path for every ordered pair of keys on p, in row-major key order.
func Table(p *keypad.Pad) []Entry {
	keys := p.Keys()
	entries := make([]Entry, 0, len(keys)*len(keys))
	for _, from := range keys {
		for _, to := range keys {
			entries = append(entries, Entry{From: from, To: to, Path: Path(p, from, to)})
		}
	}
	return entries
}
