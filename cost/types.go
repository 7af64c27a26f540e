package cost

import (
	"errors"

	"github.com/katalvlaran/padchain/keypad"
)

// ErrOverflow is the panic value raised when a press count exceeds uint64.
var ErrOverflow = errors.New("cost: press count overflows uint64")

// Entry is one memoized transition: realizing From→To plus a press on the
// directional pad at Depth costs Presses human presses.
type Entry struct {
	Depth    int
	From, To keypad.Key
	Presses  uint64
}

// Option configures an Engine.
type Option func(*Options)

// Options holds the Engine configuration.
type Options struct {
	// Cache is the memo table. A nil Cache gets a fresh one.
	Cache *Cache

	// OnMiss is called once for every transition computed rather than
	// loaded from the cache.
	OnMiss func(e Entry)
}

// DefaultOptions returns Options with a nil Cache, which New replaces with a
// fresh one, and a no-op OnMiss hook.
func DefaultOptions() Options {
	return Options{
		Cache:  nil,
		OnMiss: func(Entry) {},
	}
}

// WithCache shares c with the engine, e.g. across several codes in a batch.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithOnMiss registers a hook called for every computed transition.
func WithOnMiss(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMiss = fn
		}
	}
}
