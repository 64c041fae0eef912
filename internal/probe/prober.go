package probe

import (
	"context"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/hamed0406/healthcheck/internal/domain"
)

// DefaultWorkers sizes the pool from the CPU count, capped at 32.
func DefaultWorkers() int {
	return min(32, runtime.NumCPU()+4)
}

// Prober fans a URL list out to a Checker on a bounded pool.
type Prober struct {
	Checker Checker
	Workers int
}

func NewProber(checker Checker, workers int) *Prober {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	return &Prober{Checker: checker, Workers: workers}
}

// Run checks every target once and returns after all checks finished.
// Results are in completion order. Cancelling ctx does not stop probes
// already dispatched; each one is bounded by the checker's own timeout.
func (p *Prober) Run(ctx context.Context, targets []string) []domain.ProbeResult {
	ctx = context.WithoutCancel(ctx)

	workers := p.Workers
	if workers < 1 {
		workers = DefaultWorkers()
	}

	var (
		mu      sync.Mutex
		results = make([]domain.ProbeResult, 0, len(targets))
	)

	wp := pool.New().WithMaxGoroutines(workers)
	for _, target := range targets {
		wp.Go(func() {
			res := p.Checker.Check(ctx, target)

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		})
	}
	wp.Wait()

	return results
}
