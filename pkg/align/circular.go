// Rotation search for circular-topology query sequences.

package align

import (
	"fmt"
	"runtime"
	"sync"
)

// Rotate returns query shifted left by k positions, wrapping the prefix to
// the end. The original index of post-rotation position p is
// (p + k) mod len(query).
func Rotate(query string, k int) string {
	if k == 0 || len(query) == 0 {
		return query
	}
	return query[k:] + query[:k]
}

// AlignCircular aligns ref against every cyclic rotation of query and keeps
// the best-scoring alignment, returning it together with the winning
// rotation offset. Ties resolve to the lowest rotation index, so the result
// is independent of scheduling.
//
// This is len(query) full alignments, O(m*n^2) overall. Rotations are
// independent, so they are scored on a small worker pool; correctness does
// not depend on the concurrency.
func AlignCircular(ref, query string, mode Mode, sc Scoring) (Alignment, int, error) {
	if len(ref) == 0 || len(query) == 0 {
		return Alignment{}, 0, fmt.Errorf("align circular %s: %w", mode, ErrEmptySequence)
	}

	n := len(query)
	results := make([]Alignment, n)

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for k := range jobs {
				// Inputs are non-empty, so Align cannot fail here.
				aln, _ := Align(ref, Rotate(query, k), mode, sc)
				results[k] = aln
			}
		}()
	}
	for k := 0; k < n; k++ {
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	best := 0
	for k := 1; k < n; k++ {
		if results[k].Score > results[best].Score {
			best = k
		}
	}
	return results[best], best, nil
}
