package solver_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/padchain/solver"
)

// ExampleSum totals the complexities of five door codes typed through two
// and then twenty-five directional robots.
func ExampleSum() {
	codes, err := solver.ParseCodes(strings.NewReader("029A\n980A\n179A\n456A\n379A\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, depth := range []int{2, 25} {
		total, _ := solver.Sum(codes, depth)
		fmt.Printf("depth %d: %d\n", depth, total)
	}
	// Output:
	// depth 2: 126384
	// depth 25: 154115708116294
}

// ExampleSolver_Solve shows the per-code breakdown.
func ExampleSolver_Solve() {
	s, _ := solver.New()
	r, _ := s.Solve(solver.MustParseCode("029A"), 2)
	fmt.Println(r.Code, r.Presses, r.Value, r.Complexity)
	// Output:
	// 029A 68 29 1972
}
