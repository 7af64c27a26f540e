package solver

import (
	"github.com/katalvlaran/padchain/cost"
	"github.com/katalvlaran/padchain/keypad"
)

// Solver computes press counts for door codes through a chain of
// directional robots. It is safe for concurrent use.
type Solver struct {
	eng      *cost.Engine
	onResult func(Result)
}

// New returns a Solver. Only WithCache, WithOnMiss and WithOnResult apply.
func New(opts ...Option) (*Solver, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newSolver(o), nil
}

func newSolver(o Options) *Solver {
	return &Solver{
		eng:      cost.New(cost.WithCache(o.Cache), cost.WithOnMiss(o.OnMiss)),
		onResult: o.OnResult,
	}
}

// Cache returns the memo table shared by every code this Solver handles.
func (s *Solver) Cache() *cost.Cache { return s.eng.Cache() }

// Solve returns the presses, value and complexity of code through depth
// directional robots.
func (s *Solver) Solve(code Code, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, ErrNegativeDepth
	}
	if len(code.keys) == 0 {
		return Result{}, ErrEmptyCode
	}
	var presses uint64
	prev := keypad.KeyA
	for _, k := range code.keys {
		presses = cost.Add(presses, s.eng.MoveCountNumeric(prev, k, depth))
		prev = k
	}
	value := code.Value()
	r := Result{
		Code:       code,
		Depth:      depth,
		Presses:    presses,
		Value:      value,
		Complexity: cost.Mul(presses, value),
	}
	s.onResult(r)
	return r, nil
}

// Presses returns the human presses needed to type code through depth
// directional robots.
func Presses(code string, depth int) (uint64, error) {
	r, err := solveString(code, depth)
	return r.Presses, err
}

// Complexity returns presses × value for code through depth directional robots.
func Complexity(code string, depth int) (uint64, error) {
	r, err := solveString(code, depth)
	return r.Complexity, err
}

func solveString(code string, depth int) (Result, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Result{}, err
	}
	s, err := New()
	if err != nil {
		return Result{}, err
	}
	return s.Solve(c, depth)
}
