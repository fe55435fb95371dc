package url2pdf

import "sync"

// Aggregator accumulates Results from concurrent workers.
// It is the only state mutated by multiple workers during a run; all
// access goes through the mutex. Each slot corresponds to one target
// and is counted at most once, so succeeded+failed always equals the
// number of recorded slots.
type Aggregator struct {
	mu        sync.Mutex
	recorded  []bool
	results   []Result
	succeeded int
	failed    int
}

// NewAggregator creates an Aggregator for the given number of targets.
func NewAggregator(total int) *Aggregator {
	return &Aggregator{
		recorded: make([]bool, total),
		results:  make([]Result, total),
	}
}

// Record finalizes the result for one target slot.
// A second record for the same slot is ignored.
func (a *Aggregator) Record(slot int, r Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if slot < 0 || slot >= len(a.results) || a.recorded[slot] {
		return
	}

	a.recorded[slot] = true
	a.results[slot] = r
	if r.Succeeded() {
		a.succeeded++
	} else {
		a.failed++
	}
}

// Summary returns the aggregate outcome with results in input order.
func (a *Aggregator) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	results := make([]Result, len(a.results))
	copy(results, a.results)

	return Summary{
		Total:     len(a.results),
		Succeeded: a.succeeded,
		Failed:    a.failed,
		Results:   results,
	}
}
