package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/padchain/cost"
)

// Sentinel errors for solver operations.
var (
	// ErrEmptyCode is returned for a code with no keys.
	ErrEmptyCode = errors.New("solver: empty code")
	// ErrInvalidCode is returned for a code that cannot be typed on the door keypad.
	ErrInvalidCode = errors.New("solver: invalid code")
	// ErrNegativeDepth is returned for a chain depth below zero.
	ErrNegativeDepth = errors.New("solver: depth must be non-negative")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Result is the outcome of solving one code.
type Result struct {
	Code       Code
	Depth      int
	Presses    uint64
	Value      uint64
	Complexity uint64
}

// Option configures a Solver or a batch run.
type Option func(*Options)

// Options holds solver parameters and callbacks.
type Options struct {
	// Ctx cancels a batch between codes.
	Ctx context.Context

	// Workers is the number of codes solved concurrently by a batch.
	Workers int

	// Cache is the memo table shared by every code. Nil means a fresh one.
	Cache *cost.Cache

	// OnMiss is forwarded to the cost engine.
	OnMiss func(e cost.Entry)

	// OnResult is called after each code is solved. With more than one
	// worker it may be called concurrently.
	OnResult func(r Result)

	err error
}

// DefaultOptions returns Options with a background context, one worker,
// no-op hooks and a nil Cache, replaced by a fresh one at construction.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		Cache:    nil,
		OnMiss:   func(cost.Entry) {},
		OnResult: func(Result) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets how many codes a batch solves at once.
//
//	n > 0:  use n goroutines
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCache reuses c for every code.
func WithCache(c *cost.Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithOnMiss registers a hook for every transition the engine computes.
func WithOnMiss(fn func(e cost.Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMiss = fn
		}
	}
}

// WithOnResult registers a hook called for every solved code.
func WithOnResult(fn func(r Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Cache == nil {
		o.Cache = cost.NewCache()
	}
	return o, nil
}
