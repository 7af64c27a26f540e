package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

// Sentinel errors reported by Visits and Verify.
var (
	// ErrGapVisited indicates a sequence that hovers over the pad's gap.
	ErrGapVisited = errors.New("planner: path crosses the gap")
	// ErrOffPad indicates a sequence that leaves the pad grid.
	ErrOffPad = errors.New("planner: path leaves the pad")
	// ErrWrongTarget indicates a sequence that does not end on the requested key.
	ErrWrongTarget = errors.New("planner: path ends on the wrong key")
	// ErrNotShortest indicates a sequence longer than the gap-aware distance.
	ErrNotShortest = errors.New("planner: path is not shortest")
	// ErrUnknownMove indicates a symbol that is not a directional move.
	ErrUnknownMove = errors.New("planner: unknown move")
)

// Move is a single press on a directional pad.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
	Activate
	numMoves
)

var moveKeys = [numMoves]keypad.Key{
	Up:       keypad.KeyUp,
	Down:     keypad.KeyDown,
	Left:     keypad.KeyLeft,
	Right:    keypad.KeyRight,
	Activate: keypad.KeyA,
}

var moveOffsets = [numMoves]keypad.Coordinate{
	Up:    {Row: -1},
	Down:  {Row: 1},
	Left:  {Col: -1},
	Right: {Col: 1},
}

// Key returns the directional key that issues m.
func (m Move) Key() keypad.Key { return moveKeys[m] }

// Offset returns the grid step of m; Activate does not move.
func (m Move) Offset() keypad.Coordinate { return moveOffsets[m] }

// String implements fmt.Stringer.
func (m Move) String() string { return m.Key().String() }

// FromKey maps a directional key back to the move it issues.
func FromKey(k keypad.Key) (Move, bool) {
	for m := Up; m < numMoves; m++ {
		if moveKeys[m] == k {
			return m, true
		}
	}
	return 0, false
}

// Sequence is an ordered list of presses for one arm.
type Sequence []Move

// ParseSequence reads a sequence printed with the symbols ^ v < > A.
func ParseSequence(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		k, err := keypad.ParseKey(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMove, r)
		}
		m, ok := FromKey(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMove, r)
		}
		seq = append(seq, m)
	}
	return seq, nil
}

func mustSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Keys returns the directional keys that must be pressed to issue seq.
func (s Sequence) Keys() []keypad.Key {
	keys := make([]keypad.Key, len(s))
	for i, m := range s {
		keys[i] = m.Key()
	}
	return keys
}

// String renders s with the symbols ^ v < > A.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, m := range s {
		b.WriteRune(m.Key().Rune())
	}
	return b.String()
}

// Entry is one row of a pad's path table.
type Entry struct {
	From, To keypad.Key
	Path     Sequence
}
