// Package cluster provides a process-parallel runtime: a launcher that runs
// the same program on a fixed set of ranks, which communicate solely through
// fire-and-forget sends and blocking receives with source and tag matching.
//
// Ranks are goroutines, not operating-system processes, but the programming
// model is the message-passing one: a rank owns no state of another rank and
// learns about the others only through messages, barriers, and aborts.
package cluster

import (
	"fmt"
	"os"
	"sync"

	"github.com/parlab/parlab/internal"
)

// Wildcards for Recv. AnySource matches a message from any rank, AnyTag a
// message with any tag.
const (
	AnySource = -1
	AnyTag    = -1
)

// A Message is a delivered message, carrying the rank that sent it and the
// tag it was sent under.
type Message struct {
	Source  int
	Tag     int
	Payload interface{}
}

// An AbortError reports that a rank terminated the run for all ranks.
type AbortError struct {
	Rank   int
	Code   int
	Reason string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("rank %d aborted the run with code %d: %s", e.Rank, e.Code, e.Reason)
}

// A Proc is one rank's view of a running cluster. A Proc is only valid
// inside the program invocation it was passed to.
type Proc struct {
	rank  int
	world *world
}

type world struct {
	size  int
	host  string
	boxes []*mailbox

	mu      sync.Mutex
	cond    *sync.Cond // barrier arrivals and abort
	arrived int
	round   int
	abort   *AbortError
}

// Run launches a cluster of the given size and invokes program once per
// rank, each in its own goroutine. Run returns only when all ranks have
// terminated.
//
// Run returns the error of the lowest-numbered rank that returned a non-nil
// error, except that when any rank aborted the run, the abort error is
// returned instead. Run panics if size < 1. If one or more program
// invocations panic, Run eventually panics with the panic value of the
// lowest-numbered panicking rank.
func Run(size int, program func(p *Proc) error) error {
	if size < 1 {
		panic(fmt.Sprintf("invalid cluster size: %v", size))
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	w := &world{size: size, host: host, boxes: make([]*mailbox, size)}
	w.cond = sync.NewCond(&w.mu)
	for i := range w.boxes {
		w.boxes[i] = newMailbox()
	}

	errs := make([]error, size)
	ps := make([]interface{}, size)
	var wg sync.WaitGroup
	wg.Add(size - 1)
	for rank := 1; rank < size; rank++ {
		go func(rank int) {
			defer func() {
				ps[rank] = internal.WrapPanic(recover())
				wg.Done()
			}()
			errs[rank] = program(&Proc{rank: rank, world: w})
		}(rank)
	}
	func() {
		defer func() {
			ps[0] = internal.WrapPanic(recover())
		}()
		errs[0] = program(&Proc{rank: 0, world: w})
	}()
	wg.Wait()
	for _, p := range ps {
		if p != nil {
			panic(p)
		}
	}

	w.mu.Lock()
	abort := w.abort
	w.mu.Unlock()
	if abort != nil {
		return abort
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Rank returns the rank of this process, between 0 and Size()-1.
func (p *Proc) Rank() int {
	return p.rank
}

// Size returns the number of ranks in the run.
func (p *Proc) Size() int {
	return p.world.size
}

// Host returns the name of the host all ranks run on.
func (p *Proc) Host() string {
	return p.world.host
}

// Send delivers payload to the mailbox of rank dest under the given tag and
// returns immediately; it never waits for a matching receive. Messages
// between the same pair of ranks are delivered in send order.
//
// Send returns an error if dest is not a valid rank, if tag is negative, or
// if the run has been aborted.
func (p *Proc) Send(dest, tag int, payload interface{}) error {
	if dest < 0 || dest >= p.world.size {
		return fmt.Errorf("send from rank %d: invalid destination rank %d", p.rank, dest)
	}
	if tag < 0 {
		return fmt.Errorf("send from rank %d: invalid tag %d", p.rank, tag)
	}
	if err := p.world.aborted(); err != nil {
		return err
	}
	p.world.boxes[dest].put(Message{Source: p.rank, Tag: tag, Payload: payload})
	return nil
}

// Recv waits for a message sent to this rank from the given source with the
// given tag, and returns it. AnySource matches any sending rank and AnyTag
// any tag; the returned Message carries the actual source and tag. Among
// matching pending messages the earliest-sent one is returned.
//
// Recv returns an error if the run is aborted while waiting.
func (p *Proc) Recv(source, tag int) (Message, error) {
	if (source != AnySource) && (source < 0 || source >= p.world.size) {
		return Message{}, fmt.Errorf("recv on rank %d: invalid source rank %d", p.rank, source)
	}
	return p.world.boxes[p.rank].take(source, tag, p.world)
}

// Barrier blocks until every rank of the run has called Barrier. Barriers
// may be used repeatedly; all ranks must take part in every round.
//
// Barrier returns an error if the run is aborted before all ranks arrive.
func (p *Proc) Barrier() error {
	w := p.world
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.abort != nil {
		return w.abort
	}
	round := w.round
	w.arrived++
	if w.arrived == w.size {
		w.arrived = 0
		w.round++
		w.cond.Broadcast()
		return nil
	}
	for w.round == round && w.abort == nil {
		w.cond.Wait()
	}
	if w.abort != nil {
		return w.abort
	}
	return nil
}

// Abort terminates the run for all ranks: every blocked and future Recv,
// Barrier, and Send observes the abort. Abort returns the abort error of the
// run, so a program can finish with
//
//	return p.Abort(1, "this program must be run with 4 processes")
//
// If the run is already aborted, the first abort wins and is returned.
func (p *Proc) Abort(code int, reason string) error {
	w := p.world
	w.mu.Lock()
	if w.abort == nil {
		w.abort = &AbortError{Rank: p.rank, Code: code, Reason: reason}
		w.cond.Broadcast()
	}
	abort := w.abort
	w.mu.Unlock()
	for _, b := range w.boxes {
		b.interrupt()
	}
	return abort
}

// aborted returns the abort error of the run, or nil.
func (w *world) aborted() *AbortError {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.abort
}
