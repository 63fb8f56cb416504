package capz

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// Collector is the in-process sink: it buffers emitted events for
// batch export. Safe for concurrent use by multiple goroutines.
//
// A Collector reports no consumer until Attach is called; events
// emitted before that are still buffered. Under load, events may be
// dropped instead of blocking the emitting goroutine - monitor
// DroppedCount.
//
//nolint:govet // Field alignment optimized for readability over memory efficiency
type Collector struct {
	eventSink
	events   []Event
	eventsCh chan Event
	stopCh   chan struct{}
	done     chan struct{}
	dropped  atomic.Int64
	attached atomic.Bool
	closed   atomic.Bool
	name     string
	clock    clockz.Clock
	mu       sync.Mutex
	syncMode bool // Bypass channel for synchronous collection.
}

// NewCollector creates a collector with the given name and channel
// buffer size.
func NewCollector(name string, bufferSize int) *Collector {
	c := &Collector{
		name:     name,
		events:   make([]Event, 0, 8), // Start with small capacity.
		eventsCh: make(chan Event, bufferSize),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
		clock:    clockz.RealClock,
	}
	c.eventSink.submit = c.collect
	go c.run()
	return c
}

// WithClock replaces the collector's clock for deterministic testing.
// Call before any event is emitted.
func (c *Collector) WithClock(clock clockz.Clock) *Collector {
	c.clock = clock
	return c
}

// Name returns the collector's name.
func (c *Collector) Name() string { return c.name }

// run receives events from the channel until the collector shuts down.
func (c *Collector) run() {
	defer close(c.done)

	for {
		select {
		case <-c.stopCh:
			// Drain remaining events before shutdown.
			for {
				select {
				case ev := <-c.eventsCh:
					c.buffer(ev)
				default:
					return
				}
			}
		case ev := <-c.eventsCh:
			c.buffer(ev)
		}
	}
}

// collect stamps and buffers one event with backpressure protection.
// If the channel is full the event is dropped and the drop counter is
// incremented. In sync mode events are buffered directly, which makes
// tests deterministic.
func (c *Collector) collect(ev Event) {
	ev.Time = c.clock.Now()

	if c.syncMode {
		if c.closed.Load() {
			c.dropped.Add(1)
			return
		}
		c.buffer(ev)
		return
	}

	select {
	case c.eventsCh <- ev:
	default:
		// Channel full - drop rather than block the emitting goroutine.
		c.dropped.Add(1)
	}
}

// buffer appends an event, growing the slice in steps that avoid
// per-event allocation churn.
func (c *Collector) buffer(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) >= cap(c.events) {
		currentCap := cap(c.events)
		newCap := currentCap * 2
		if currentCap >= 1024 {
			newCap = currentCap + currentCap/2
		}
		if newCap < 32 {
			newCap = 32
		}
		grown := make([]Event, len(c.events), newCap)
		copy(grown, c.events)
		c.events = grown
	}
	c.events = append(c.events, ev)
}

// Attach marks a consumer as present, flipping Connected to true.
func (c *Collector) Attach() {
	c.attached.Store(true)
}

// Export returns a copy of all buffered events in emission order and
// clears the internal buffer.
func (c *Collector) Export() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.events) == 0 {
		return nil
	}

	result := make([]Event, len(c.events))
	copy(result, c.events)

	// Shrink only when the buffer is very oversized, to avoid
	// allocation churn.
	if cap(c.events) > 256 && len(c.events) < cap(c.events)/8 {
		newCap := cap(c.events) / 4
		if newCap < 32 {
			newCap = 32
		}
		c.events = make([]Event, 0, newCap)
	} else {
		c.events = c.events[:0]
	}

	return result
}

// Count returns the number of currently buffered events.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// DroppedCount returns the number of events dropped due to
// backpressure.
func (c *Collector) DroppedCount() int64 {
	return c.dropped.Load()
}

// SetSyncMode makes collection synchronous, bypassing the channel.
// Deterministic test ordering at the cost of contention.
func (c *Collector) SetSyncMode(sync bool) {
	c.syncMode = sync
}

// Reset clears buffered events and the drop counter. The receiving
// goroutine keeps running.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.dropped.Store(0)
}

// Startup implements Sink. The receive loop already runs from
// NewCollector on, so there is nothing to do.
func (c *Collector) Startup() {}

// Shutdown implements Sink: stop the receive loop after draining.
func (c *Collector) Shutdown() {
	if c.closed.Swap(true) {
		return
	}
	close(c.stopCh)
	select {
	case <-c.done:
	case <-time.After(100 * time.Millisecond):
		// Receive loop is stuck; give up rather than hang Stop.
	}
}

// Connected implements Sink.
func (c *Collector) Connected() bool {
	return c.attached.Load()
}
