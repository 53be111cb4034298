// Package team provides a shared-memory thread-team runtime: a fixed set of
// workers that execute a parallel region or a scheduled parallel loop.
//
// A Team forks one goroutine per worker for the duration of a region or loop
// and joins them all before returning. Loop iterations are partitioned among
// the workers according to a Schedule, either statically before the loop
// starts or dynamically on demand while it runs.
package team

import (
	"fmt"
	"sync"

	"github.com/parlab/parlab"
	"github.com/parlab/parlab/internal"
)

// A Team is a fixed set of workers, numbered 0 through Workers()-1.
//
// A Team holds no resources between regions; the zero value is not usable,
// use New.
type Team struct {
	workers int
}

// New returns a Team with the given number of workers.
//
// New panics if workers < 1. Worker counts come from configuration, not from
// the environment, so an invalid count is a programming error.
func New(workers int) *Team {
	if workers < 1 {
		panic(fmt.Sprintf("invalid number of workers: %v", workers))
	}
	return &Team{workers: workers}
}

// Workers returns the number of workers in the team.
func (t *Team) Workers() int {
	return t.workers
}

// Region invokes body once per worker, each in its own goroutine, passing the
// worker number. Region returns only when all workers have terminated.
//
// If one or more workers panic, the corresponding goroutines recover the
// panics, and Region eventually panics with the panic value of the
// lowest-numbered panicking worker.
func (t *Team) Region(body parlab.WorkerFunc) {
	ps := make([]interface{}, t.workers)
	var wg sync.WaitGroup
	wg.Add(t.workers - 1)
	for w := 1; w < t.workers; w++ {
		go func(w int) {
			defer func() {
				ps[w] = internal.WrapPanic(recover())
				wg.Done()
			}()
			body(w)
		}(w)
	}
	func() {
		defer func() {
			ps[0] = internal.WrapPanic(recover())
		}()
		body(0)
	}()
	wg.Wait()
	for _, p := range ps {
		if p != nil {
			panic(p)
		}
	}
}

// A Critical is an explicit mutual-exclusion region for state shared by the
// workers of a team, typically the console output stream.
//
// The zero Critical is ready to use and must not be copied after first use.
type Critical struct {
	mu sync.Mutex
}

// Do invokes body while holding the critical section. At most one worker
// executes inside the same Critical at any time.
func (c *Critical) Do(body func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body()
}
