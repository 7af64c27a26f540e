package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad lookups.
var (
	// ErrUnknownKey indicates a rune that is printed on neither pad.
	ErrUnknownKey = errors.New("keypad: unknown key")
	// ErrKeyNotOnPad indicates a key that exists but not on the requested pad.
	ErrKeyNotOnPad = errors.New("keypad: key not on pad")
)

// Key is one button symbol. The zero value is not a valid key.
type Key uint8

const (
	keyInvalid Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA // activate, present on both pads
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	numKeys
)

var keyRunes = [numKeys]rune{
	keyInvalid: '?',
	Key0:       '0',
	Key1:       '1',
	Key2:       '2',
	Key3:       '3',
	Key4:       '4',
	Key5:       '5',
	Key6:       '6',
	Key7:       '7',
	Key8:       '8',
	Key9:       '9',
	KeyA:       'A',
	KeyUp:      '^',
	KeyDown:    'v',
	KeyLeft:    '<',
	KeyRight:   '>',
}

// ParseKey maps a printed symbol to its Key.
func ParseKey(r rune) (Key, error) {
	for k := Key0; k < numKeys; k++ {
		if keyRunes[k] == r {
			return k, nil
		}
	}
	return keyInvalid, fmt.Errorf("%w: %q", ErrUnknownKey, r)
}

// Rune returns the printed symbol of k.
func (k Key) Rune() rune {
	if k >= numKeys {
		return keyRunes[keyInvalid]
	}
	return keyRunes[k]
}

// String implements fmt.Stringer.
func (k Key) String() string { return string(k.Rune()) }

// IsDigit reports whether k is one of Key0..Key9.
func (k Key) IsDigit() bool { return k >= Key0 && k <= Key9 }

// Digit returns the numeric value of a digit key and false for any other key.
func (k Key) Digit() (int, bool) {
	if !k.IsDigit() {
		return 0, false
	}
	return int(k - Key0), true
}

// Coordinate is a cell on a pad grid. Row 0 is the top row, Col 0 the left column.
type Coordinate struct {
	Row, Col int
}

// Add returns c shifted by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
