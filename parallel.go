package mandel

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultStripFactor is how many strips each worker gets on average. Splitting
// finer than the worker count keeps everyone busy even when one strip (a slice
// through the interior of the set) is much slower than the rest.
const DefaultStripFactor = 10

// Calculator evaluates a SetDefinition on a fixed-size worker pool.
//
// The definition is split into Workers*StripFactor horizontal strips, each
// strip is calculated independently and the results are reassembled in strip
// order, so the output is byte-identical to a single-threaded Calc of the
// same definition regardless of worker count or completion order.
type Calculator struct {
	// Workers is the number of strips calculated concurrently. Must be
	// positive.
	Workers int
	// StripFactor overrides DefaultStripFactor when positive.
	StripFactor int
	// OnStripDone, when set, is called once per finished strip with the
	// number of strips finished so far and the total. It is called from
	// worker goroutines, so it must be safe for concurrent use.
	OnStripDone func(done, total int)
}

type stripResult struct {
	idx  int
	data []uint32
}

// Calc calculates the set data for def in parallel. A strip that fails to
// report aborts the whole calculation; there are no partial results.
func (c Calculator) Calc(def SetDefinition) (SetData, error) {
	if c.Workers < 1 {
		return SetData{}, fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	factor := c.StripFactor
	if factor < 1 {
		factor = DefaultStripFactor
	}

	strips := def.Split(c.Workers * factor)
	results := make(chan stripResult, len(strips))

	var done atomic.Int64
	var eg errgroup.Group
	eg.SetLimit(c.Workers)
	for idx, strip := range strips {
		idx, strip := idx, strip
		eg.Go(func() error {
			results <- stripResult{idx: idx, data: strip.Calc().Data}
			if c.OnStripDone != nil {
				c.OnStripDone(int(done.Add(1)), len(strips))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return SetData{}, fmt.Errorf("strip calculation: %w", err)
	}
	close(results)

	collected := make([]stripResult, 0, len(strips))
	for res := range results {
		collected = append(collected, res)
	}
	if len(collected) != len(strips) {
		return SetData{}, fmt.Errorf("expected %d strip results, got %d", len(strips), len(collected))
	}

	// Completion order is nondeterministic; strip index order is what makes
	// the assembled buffer match the unsplit calculation.
	slices.SortFunc(collected, func(a, b stripResult) int { return cmp.Compare(a.idx, b.idx) })

	data := make([]uint32, 0, def.Samples())
	for _, res := range collected {
		data = append(data, res.data...)
	}
	return SetData{Def: def, Data: data}, nil
}
