package team

import (
	"fmt"
	"sync/atomic"

	"github.com/parlab/parlab"
	"github.com/parlab/parlab/internal"
)

// A Policy selects how the iterations of a parallel loop are partitioned
// among the workers of a team.
type Policy int

const (
	// Static partitions the iteration range before the loop starts. With the
	// default chunk size every worker receives one contiguous subrange of
	// near-equal size; with an explicit chunk size the chunks are dealt to
	// the workers round-robin (block-cyclic).
	Static Policy = iota

	// Dynamic hands out chunks on demand: a worker claims the next unclaimed
	// chunk whenever it finishes its current one. The default chunk size
	// is 1.
	Dynamic
)

// String returns the lower-case name of the policy.
func (p Policy) String() string {
	switch p {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// A Schedule pairs a scheduling policy with a chunk size. A Chunk of 0
// selects the policy's default chunk size.
type Schedule struct {
	Policy Policy
	Chunk  int
}

// For invokes body for every index in the half-open interval from low to
// high, including low but excluding high, partitioning the indices among the
// team's workers according to the schedule. The body receives the number of
// the worker executing the iteration and the iteration index.
//
// Every index is executed exactly once, whatever the policy, chunk size, and
// worker count. Iterations assigned to the same worker run in increasing
// index order for static schedules and in increasing chunk-claim order for
// dynamic schedules; iterations on different workers run concurrently, and
// body must synchronize any access to shared state, for example with a
// Critical.
//
// For panics if high < low, if s.Chunk < 0, or if s.Policy is unknown. If
// one or more iterations panic, For panics with the panic value of the
// lowest-numbered panicking worker after all workers have terminated.
func (t *Team) For(low, high int, s Schedule, body parlab.IterFunc) {
	internal.CheckRange(low, high)
	if high == low {
		return
	}
	switch s.Policy {
	case Static:
		if s.Chunk == 0 {
			t.Region(func(worker int) {
				begin, end := internal.StaticSpan(low, high, worker, t.workers)
				for i := begin; i < end; i++ {
					body(worker, i)
				}
			})
			return
		}
		chunk := internal.EffectiveChunk(s.Chunk)
		stride := chunk * t.workers
		t.Region(func(worker int) {
			for begin := low + worker*chunk; begin < high; begin += stride {
				end := begin + chunk
				if end > high {
					end = high
				}
				for i := begin; i < end; i++ {
					body(worker, i)
				}
			}
		})
	case Dynamic:
		chunk := internal.EffectiveChunk(s.Chunk)
		next := int64(low)
		t.Region(func(worker int) {
			for {
				begin := int(atomic.AddInt64(&next, int64(chunk))) - chunk
				if begin >= high {
					return
				}
				end := begin + chunk
				if end > high {
					end = high
				}
				for i := begin; i < end; i++ {
					body(worker, i)
				}
			}
		})
	default:
		panic(fmt.Sprintf("unknown scheduling policy: %v", s.Policy))
	}
}
