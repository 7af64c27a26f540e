package cost_test

import (
	"fmt"

	"github.com/katalvlaran/padchain/cost"
	"github.com/katalvlaran/padchain/planner"
)

// ExampleEngine_Cost counts human presses for the 029A door sequence as more
// directional robots are stacked between the human and the door.
func ExampleEngine_Cost() {
	seq, _ := planner.ParseSequence("<A^A^^>AvvvA")
	eng := cost.New()
	for _, depth := range []int{0, 1, 2} {
		fmt.Printf("depth %d: %d\n", depth, eng.Cost(depth, seq))
	}
	// Output:
	// depth 0: 12
	// depth 1: 28
	// depth 2: 68
}
