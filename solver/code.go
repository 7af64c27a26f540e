package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

// maxDigits is the longest digit run whose value always fits in a uint64.
const maxDigits = 19

// Code is a validated door code: one or more digits followed by a single A.
type Code struct {
	raw  string
	keys []keypad.Key
}

// ParseCode validates s against the numeric keypad.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	pad := keypad.Numeric()
	keys := make([]keypad.Key, 0, len(s))
	digits := 0
	for i, r := range s {
		k, err := keypad.ParseKey(r)
		if err != nil {
			return Code{}, fmt.Errorf("%w %q at %d: %v", ErrInvalidCode, s, i, err)
		}
		if !pad.Has(k) {
			return Code{}, fmt.Errorf("%w %q at %d: %s is not on the numeric pad", ErrInvalidCode, s, i, k)
		}
		last := i == len(s)-1
		switch {
		case k.IsDigit() && !last:
			digits++
		case k == keypad.KeyA && last:
		case last:
			return Code{}, fmt.Errorf("%w %q: must end with A", ErrInvalidCode, s)
		default:
			return Code{}, fmt.Errorf("%w %q at %d: %s before the end", ErrInvalidCode, s, i, k)
		}
		keys = append(keys, k)
	}
	if digits == 0 {
		return Code{}, fmt.Errorf("%w %q: no digits", ErrInvalidCode, s)
	}
	if digits > maxDigits {
		return Code{}, fmt.Errorf("%w %q: %d digits exceed %d", ErrInvalidCode, s, digits, maxDigits)
	}
	return Code{raw: s, keys: keys}, nil
}

// MustParseCode is ParseCode that panics on error. Intended for tests and constants.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCodes reads one code per line. Surrounding whitespace and blank lines
// are skipped; the first invalid line aborts with its line number.
func ParseCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		c, err := ParseCode(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("solver: read codes: %w", err)
	}
	return codes, nil
}

// String returns the code as typed.
func (c Code) String() string { return c.raw }

// Keys returns a copy of the code's keys.
func (c Code) Keys() []keypad.Key { return append([]keypad.Key(nil), c.keys...) }

// Value reads the code's digit prefix as a base-10 number: 029A → 29.
func (c Code) Value() uint64 {
	var v uint64
	for _, k := range c.keys {
		if d, ok := k.Digit(); ok {
			v = v*10 + uint64(d)
		}
	}
	return v
}
