package handler

import (
	"errors"
	"sync"

	"github.com/hushlog/hush/core"
)

// ErrQueueClosed is returned by Queue.Send once the queue has been closed.
// Producers treat it as "logging has shut down" and drop the record.
var ErrQueueClosed = errors.New("hush: dispatch queue closed")

// Queue is an unbounded multi-producer/single-consumer FIFO carrying log
// entries from producer goroutines to the console worker. Send never blocks
// (it may allocate); Recv blocks only the worker. Backpressure is deliberately
// absent: logging must not throttle the producing application.
//
// A nil entry is the shutdown sentinel. Recv distinguishes it from
// end-of-stream through its second return value.
type Queue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []*core.Entry
	head     int
	closed   bool
}

// NewQueue creates an empty open queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Send appends an entry to the queue. It is safe to call from any number of
// goroutines concurrently; each goroutine's own submission order is
// preserved. Returns ErrQueueClosed after Close, leaving the entry
// undelivered.
func (q *Queue) Send(entry *core.Entry) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.items = append(q.items, entry)
	q.mu.Unlock()
	q.nonEmpty.Signal()
	return nil
}

// Recv removes and returns the oldest entry, blocking while the queue is
// empty and open. After Close it keeps returning buffered entries until the
// queue is drained, then reports end-of-stream with ok == false.
func (q *Queue) Recv() (entry *core.Entry, ok bool) {
	q.mu.Lock()
	for q.head == len(q.items) && !q.closed {
		q.nonEmpty.Wait()
	}
	if q.head == len(q.items) {
		q.mu.Unlock()
		return nil, false
	}
	entry = q.pop()
	q.mu.Unlock()
	return entry, true
}

// TryRecv is the non-blocking variant of Recv, used by the worker while
// draining. ok == false means the queue is currently empty.
func (q *Queue) TryRecv() (entry *core.Entry, ok bool) {
	q.mu.Lock()
	if q.head == len(q.items) {
		q.mu.Unlock()
		return nil, false
	}
	entry = q.pop()
	q.mu.Unlock()
	return entry, true
}

// pop removes the head element. Called with mu held.
func (q *Queue) pop() *core.Entry {
	entry := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > 256 && q.head*2 >= len(q.items):
		// Reclaim the consumed prefix once it dominates the backing array
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return entry
}

// Close marks the queue as closed for sending and wakes the worker. Entries
// already buffered remain receivable; further Send calls fail with
// ErrQueueClosed. Closing twice is a no-op.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		q.nonEmpty.Broadcast()
	}
	q.mu.Unlock()
}

// Len returns the number of buffered entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	n := len(q.items) - q.head
	q.mu.Unlock()
	return n
}
