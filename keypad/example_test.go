package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// ExamplePad_Distance shows the gap-aware step count between two numeric keys.
func ExamplePad_Distance() {
	p := keypad.Numeric()
	d, _ := p.Distance(keypad.Key7, keypad.KeyA)
	fmt.Println(p.CoordinateOf(keypad.Key7), p.CoordinateOf(keypad.KeyA), d)
	// Output:
	// (0,0) (3,2) 5
}
