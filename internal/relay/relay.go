// Package relay carries download events from the worker goroutine to the
// UI goroutine. The queue is ordered, unbounded and never blocks a
// producer; the consumer drains at its own cadence with a blocking wait
// or a non-blocking poll. With a single active download there is at most
// one producer at a time, so per-download ordering is FIFO end to end.
package relay

import (
	"sync"

	"ydownloader/internal/model"
)

// Kind tags the event variants
type Kind int

const (
	// KindProgress carries a progress update for the active download
	KindProgress Kind = iota

	// KindComplete carries the terminal snapshot of a download that
	// completed or was cancelled
	KindComplete

	// KindError carries a user-presentable failure message
	KindError
)

// Event is one tagged message from the worker to the consumer
type Event struct {
	Kind Kind

	// Progress fields
	Percent int
	Status  model.Status
	Title   string

	// Complete payload
	Download model.Download

	// Error payload
	Message string
}

// Queue is an ordered, unbounded, multi-producer single-consumer queue
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	closed bool
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an event. It never blocks. Pushes after Close are dropped.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, ev)
	q.cond.Signal()
}

// PushProgress enqueues a progress event
func (q *Queue) PushProgress(percent int, status model.Status, title string) {
	q.Push(Event{Kind: KindProgress, Percent: percent, Status: status, Title: title})
}

// PushComplete enqueues the terminal snapshot of a download
func (q *Queue) PushComplete(d model.Download) {
	q.Push(Event{Kind: KindComplete, Download: d})
}

// PushError enqueues a failure message
func (q *Queue) PushError(message string) {
	q.Push(Event{Kind: KindError, Message: message})
}

// Next blocks until an event is available or the queue is closed. The
// second return value is false only when the queue is closed and fully
// drained.
func (q *Queue) Next() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.pop(), true
}

// TryNext returns the next event without blocking
func (q *Queue) TryNext() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.pop(), true
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close wakes the consumer; queued events can still be drained
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) pop() Event {
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}
