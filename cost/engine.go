package cost

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/planner"
)

// Engine evaluates press counts through a chain of directional keypads.
type Engine struct {
	cache  *Cache
	onMiss func(Entry)
	dir    *keypad.Pad
	num    *keypad.Pad
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cache == nil {
		o.Cache = NewCache()
	}
	return &Engine{
		cache:  o.Cache,
		onMiss: o.OnMiss,
		dir:    keypad.Directional(),
		num:    keypad.Numeric(),
	}
}

// Cache returns the engine's memo table.
func (e *Engine) Cache() *Cache { return e.cache }

// Cost returns the minimum number of human presses that make the arm at the
// bottom of a depth-layer directional chain emit seq, every arm starting and
// ending on A. Cost(0, seq) == len(seq).
func (e *Engine) Cost(depth int, seq planner.Sequence) uint64 {
	mustDepth(depth)
	if depth == 0 {
		return uint64(len(seq))
	}
	var total uint64
	prev := keypad.KeyA
	for _, m := range seq {
		next := m.Key()
		total = Add(total, e.MoveCountDirectional(prev, next, depth))
		prev = next
	}
	return total
}

// MoveCountDirectional returns the presses needed for the arm at depth to
// move from one directional key to another and press it.
func (e *Engine) MoveCountDirectional(from, to keypad.Key, depth int) uint64 {
	mustDepth(depth)
	if from == to {
		return 1
	}
	if depth == 0 {
		// a finger, not an arm: any key is one press away
		return 1
	}
	k := cacheKey{depth: depth, from: from, to: to}
	if v, ok := e.cache.load(k); ok {
		return v
	}
	v := e.Cost(depth-1, planner.Path(e.dir, from, to))
	e.cache.store(k, v)
	e.onMiss(Entry{Depth: depth, From: from, To: to, Presses: v})
	return v
}

// MoveCountNumeric returns the presses needed for the door arm to move from
// one numeric key to another and press it, driven by depth directional layers.
func (e *Engine) MoveCountNumeric(from, to keypad.Key, depth int) uint64 {
	mustDepth(depth)
	if from == to {
		return 1
	}
	return e.Cost(depth, planner.Path(e.num, from, to))
}

func mustDepth(depth int) {
	if depth < 0 {
		panic(fmt.Sprintf("cost: negative depth %d", depth))
	}
}

// Add returns a+b and panics with ErrOverflow on carry.
func Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(ErrOverflow)
	}
	return s
}

// Mul returns a*b and panics with ErrOverflow if the product exceeds uint64.
func Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(ErrOverflow)
	}
	return lo
}
