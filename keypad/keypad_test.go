package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/keypad"
)

//----------------------------------------------------------------------------//
// Key Tests
//----------------------------------------------------------------------------//

// TestParseKey_RoundTrip checks that every printed symbol maps back to itself.
func TestParseKey_RoundTrip(t *testing.T) {
	for _, r := range "0123456789A^v<>" {
		k, err := keypad.ParseKey(r)
		require.NoError(t, err, "ParseKey(%q)", r)
		assert.Equal(t, r, k.Rune())
		assert.Equal(t, string(r), k.String())
	}
}

// TestParseKey_Unknown verifies ErrUnknownKey for symbols on neither pad.
func TestParseKey_Unknown(t *testing.T) {
	for _, r := range "B#x *" {
		_, err := keypad.ParseKey(r)
		assert.ErrorIs(t, err, keypad.ErrUnknownKey, "ParseKey(%q)", r)
	}
}

// TestKey_Digit covers digit extraction.
func TestKey_Digit(t *testing.T) {
	d, ok := keypad.Key7.Digit()
	assert.True(t, ok)
	assert.Equal(t, 7, d)

	_, ok = keypad.KeyA.Digit()
	assert.False(t, ok)
	assert.False(t, keypad.KeyUp.IsDigit())
}

//----------------------------------------------------------------------------//
// Pad Tests
//----------------------------------------------------------------------------//

// TestNumeric_Layout pins every numeric key to its cell.
func TestNumeric_Layout(t *testing.T) {
	p := keypad.Numeric()
	want := map[keypad.Key]keypad.Coordinate{
		keypad.Key7: {Row: 0, Col: 0}, keypad.Key8: {Row: 0, Col: 1}, keypad.Key9: {Row: 0, Col: 2},
		keypad.Key4: {Row: 1, Col: 0}, keypad.Key5: {Row: 1, Col: 1}, keypad.Key6: {Row: 1, Col: 2},
		keypad.Key1: {Row: 2, Col: 0}, keypad.Key2: {Row: 2, Col: 1}, keypad.Key3: {Row: 2, Col: 2},
		keypad.Key0: {Row: 3, Col: 1}, keypad.KeyA: {Row: 3, Col: 2},
	}
	require.Len(t, p.Keys(), len(want))
	for k, c := range want {
		assert.Equal(t, c, p.CoordinateOf(k), "CoordinateOf(%s)", k)
		got, ok := p.KeyAt(c)
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, keypad.Coordinate{Row: 3, Col: 0}, p.Gap())
	assert.Equal(t, 4, p.Rows())
	assert.Equal(t, 3, p.Cols())
}

// TestDirectional_Layout pins every directional key to its cell.
func TestDirectional_Layout(t *testing.T) {
	p := keypad.Directional()
	want := map[keypad.Key]keypad.Coordinate{
		keypad.KeyUp: {Row: 0, Col: 1}, keypad.KeyA: {Row: 0, Col: 2},
		keypad.KeyLeft: {Row: 1, Col: 0}, keypad.KeyDown: {Row: 1, Col: 1}, keypad.KeyRight: {Row: 1, Col: 2},
	}
	require.Len(t, p.Keys(), len(want))
	for k, c := range want {
		assert.Equal(t, c, p.CoordinateOf(k), "CoordinateOf(%s)", k)
	}
	assert.Equal(t, keypad.Coordinate{Row: 0, Col: 0}, p.Gap())
}

// TestKeyAt_GapAndOutOfBounds verifies that the gap and off-grid cells hold no key.
func TestKeyAt_GapAndOutOfBounds(t *testing.T) {
	for _, p := range []*keypad.Pad{keypad.Numeric(), keypad.Directional()} {
		_, ok := p.KeyAt(p.Gap())
		assert.False(t, ok, "%s gap", p)
		assert.True(t, p.InBounds(p.Gap()))
		for _, c := range []keypad.Coordinate{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: p.Rows(), Col: 1}} {
			assert.False(t, p.InBounds(c), "%s InBounds%s", p, c)
			_, ok := p.KeyAt(c)
			assert.False(t, ok)
		}
	}
}

// TestCoordinateOf_PanicsOffPad documents that foreign keys are programming errors.
func TestCoordinateOf_PanicsOffPad(t *testing.T) {
	assert.Panics(t, func() { keypad.Numeric().CoordinateOf(keypad.KeyUp) })
	assert.Panics(t, func() { keypad.Directional().CoordinateOf(keypad.Key5) })
}

//----------------------------------------------------------------------------//
// Distance Tests
//----------------------------------------------------------------------------//

// TestDistance_MatchesManhattan checks that the gap never lengthens a shortest
// route on either pad: every pair is reachable in Manhattan distance.
func TestDistance_MatchesManhattan(t *testing.T) {
	for _, p := range []*keypad.Pad{keypad.Numeric(), keypad.Directional()} {
		for _, from := range p.Keys() {
			for _, to := range p.Keys() {
				d, err := p.Distance(from, to)
				require.NoError(t, err)
				assert.Equal(t, p.CoordinateOf(from).Manhattan(p.CoordinateOf(to)), d,
					"%s Distance(%s,%s)", p, from, to)
			}
		}
	}
}

// TestDistance_KeyNotOnPad verifies ErrKeyNotOnPad.
func TestDistance_KeyNotOnPad(t *testing.T) {
	_, err := keypad.Numeric().Distance(keypad.KeyLeft, keypad.KeyA)
	assert.ErrorIs(t, err, keypad.ErrKeyNotOnPad)
	_, err = keypad.Directional().Distance(keypad.KeyA, keypad.Key0)
	assert.ErrorIs(t, err, keypad.ErrKeyNotOnPad)
}

// TestSign covers the three branches.
func TestSign(t *testing.T) {
	assert.Equal(t, -1, keypad.Sign(-7))
	assert.Equal(t, 0, keypad.Sign(0))
	assert.Equal(t, 1, keypad.Sign(3))
}
