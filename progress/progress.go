// Package progress carries optimizer progress snapshots from the swarm
// engine to zero or more subscribers, and carries cancellation the other
// way via a single write-once boolean latch.
package progress

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is an immutable point-in-time report of a run's state.
type Snapshot struct {
	RunIndex   int
	TotalRuns  int
	Iteration  int
	Elapsed    time.Duration
	GlobalBest float64
	Finished   bool
}

// Broadcaster fans Snapshots out to every current subscriber. A subscriber
// that joins after a snapshot was published never sees it; this mirrors a
// live broadcast, not a replay log.
type Broadcaster struct {
	mu   sync.Mutex
	subs []chan Snapshot
}

// NewBroadcaster returns an empty broadcaster, ready to publish to
// subscribers as they join.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a new listener and returns its channel. The channel
// is buffered so a slow subscriber never blocks Publish; while a
// subscriber's buffer of 16 is full, Publish drops further snapshots for it.
func (b *Broadcaster) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 16)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish sends s to every subscriber registered so far.
func (b *Broadcaster) Publish(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- s:
		default:
			// Drop rather than block a slow subscriber; progress is
			// best-effort, never a correctness requirement.
		}
	}
}

// Close closes every subscriber channel, signaling that no further
// snapshots will arrive.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}

// StopFlag is a cooperative cancellation latch: one writer calls Stop, any
// number of readers poll Stopped between iterations.
type StopFlag struct {
	stopped atomic.Bool
}

// Stop requests cancellation. Safe to call more than once.
func (f *StopFlag) Stop() {
	f.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (f *StopFlag) Stopped() bool {
	return f.stopped.Load()
}
