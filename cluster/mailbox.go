package cluster

import (
	"sync"

	"github.com/eapache/queue"
)

// A mailbox holds the messages sent to one rank until a matching receive
// takes them. Sends never block: the pending queue grows as needed.
type mailbox struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue // of Message
}

func newMailbox() *mailbox {
	b := &mailbox{pending: queue.New()}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *mailbox) put(m Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending.Add(m)
	b.cond.Broadcast()
}

// take returns the earliest pending message matching source and tag, waiting
// for one to arrive if necessary. It returns the world's abort error if the
// run is aborted before a match arrives.
func (b *mailbox) take(source, tag int, w *world) (Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for {
		if m, ok := b.match(source, tag); ok {
			return m, nil
		}
		if err := w.aborted(); err != nil {
			return Message{}, err
		}
		b.cond.Wait()
	}
}

// match removes and returns the earliest pending message matching source and
// tag. The queue is rotated once so that non-matching messages keep their
// arrival order. Callers must hold b.mu.
func (b *mailbox) match(source, tag int) (Message, bool) {
	var found Message
	ok := false
	for n := b.pending.Length(); n > 0; n-- {
		m := b.pending.Remove().(Message)
		if !ok &&
			(source == AnySource || m.Source == source) &&
			(tag == AnyTag || m.Tag == tag) {
			found, ok = m, true
			continue
		}
		b.pending.Add(m)
	}
	return found, ok
}

// interrupt wakes all receives blocked on the mailbox, typically after an
// abort. The lock is taken so that a receive between its abort check and its
// wait cannot miss the wakeup.
func (b *mailbox) interrupt() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cond.Broadcast()
}
