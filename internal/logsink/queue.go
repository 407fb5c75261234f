package logsink

import (
	"errors"
	"sync"
)

// errQueueClosed is returned by push after the queue has been closed.
// The sink reports it to stderr and drops the record; callers never see it.
var errQueueClosed = errors.New("log queue is closed")

// queue is an unbounded FIFO of records with a single consumer.
// push never blocks; pop blocks until a record arrives or the queue is
// closed and drained. Order is strictly the enqueue order.
type queue struct {
	mu     sync.Mutex
	ready  *sync.Cond
	recs   []Record
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.ready = sync.NewCond(&q.mu)

	return q
}

func (q *queue) push(rec Record) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errQueueClosed
	}

	q.recs = append(q.recs, rec)
	q.ready.Signal()

	return nil
}

// pop returns the oldest record. After close it keeps returning queued
// records until the queue is drained, then reports ok=false.
func (q *queue) pop() (Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.recs) == 0 && !q.closed {
		q.ready.Wait()
	}

	if len(q.recs) == 0 {
		return nil, false
	}

	rec := q.recs[0]
	q.recs = q.recs[1:]

	return rec, true
}

func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.ready.Broadcast()
}
