package solver

import (
	"sync"

	"github.com/katalvlaran/padchain/cost"
)

// Sum returns the total complexity of codes through depth directional
// robots. Every code shares one cache.
func Sum(codes []Code, depth int, opts ...Option) (uint64, error) {
	_, total, err := SumResults(codes, depth, opts...)
	return total, err
}

// SumResults is Sum that also returns each code's Result, in input order.
// The codes are never modified.
func SumResults(codes []Code, depth int, opts ...Option) ([]Result, uint64, error) {
	if depth < 0 {
		return nil, 0, ErrNegativeDepth
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	s := newSolver(o)

	results := make([]Result, len(codes))
	if o.Workers == 1 || len(codes) < 2 {
		err = s.solveSequential(o, codes, depth, results)
	} else {
		err = s.solveParallel(o, codes, depth, results)
	}
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	for _, r := range results {
		total = cost.Add(total, r.Complexity)
	}
	return results, total, nil
}

func (s *Solver) solveSequential(o Options, codes []Code, depth int, results []Result) error {
	for i, c := range codes {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		r, err := s.Solve(c, depth)
		if err != nil {
			return err
		}
		results[i] = r
	}
	return nil
}

// solveParallel feeds code indices to o.Workers goroutines. The first error
// stops the feed; workers drain what was already queued.
func (s *Solver) solveParallel(o Options, codes []Code, depth int, results []Result) error {
	workers := o.Workers
	if workers > len(codes) {
		workers = len(codes)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	idxCh := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idxCh {
				r, err := s.Solve(codes[i], depth)
				if err != nil {
					fail(err)
					continue
				}
				results[i] = r
			}
		}()
	}

feed:
	for i := range codes {
		if failed() {
			break
		}
		if err := o.Ctx.Err(); err != nil {
			fail(err)
			break
		}
		select {
		case <-o.Ctx.Done():
			fail(o.Ctx.Err())
			break feed
		case idxCh <- i:
		}
	}
	close(idxCh)
	wg.Wait()

	return firstErr
}
