//go:build !capzoff

package integration

import (
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/capz"
)

// MockSink wraps a real collector with test utilities.
// Provides synchronous collection and verification helpers.
//
//nolint:govet // Field alignment optimized for test helper readability
type MockSink struct {
	exported []capz.Event
	*capz.Collector
	t  *testing.T
	mu sync.Mutex
}

// NewMockSink creates a collector for testing.
func NewMockSink(t *testing.T, name string, bufferSize int) *MockSink {
	collector := capz.NewCollector(name, bufferSize)
	collector.SetSyncMode(true) // Enable synchronous collection for testing.
	return &MockSink{
		Collector: collector,
		t:         t,
		exported:  make([]capz.Event, 0),
	}
}

// Export returns collected events and clears the buffer.
func (m *MockSink) Export() []capz.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := m.Collector.Export()
	m.exported = append(m.exported, events...)
	return events
}

// GetAll returns every event seen so far without clearing.
func (m *MockSink) GetAll() []capz.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.Collector.Export()
	if len(current) > 0 {
		m.exported = append(m.exported, current...)
	}

	all := make([]capz.Event, len(m.exported))
	copy(all, m.exported)
	return all
}

// WaitForEvents waits for an expected number of events with timeout.
func (m *MockSink) WaitForEvents(expected int, timeout time.Duration) []capz.Event {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		events := m.GetAll()
		if len(events) >= expected {
			return events[:expected]
		}
		<-ticker.C
	}

	events := m.GetAll()
	m.t.Errorf("Timeout waiting for events: expected %d, got %d", expected, len(events))
	return events
}

// OfKind filters the accumulated events by kind.
func (m *MockSink) OfKind(kind capz.EventKind) []capz.Event {
	var out []capz.Event
	for _, ev := range m.GetAll() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// AssertZoneNamed checks that a zone with the given name was opened.
func (m *MockSink) AssertZoneNamed(name string) *capz.Event {
	events := m.GetAll()
	for i := range events {
		ev := &events[i]
		if ev.Kind == capz.EventZoneBegin && ev.Name == name {
			return ev
		}
	}
	m.t.Errorf("Zone named '%s' not found", name)
	return nil
}

// ZoneSpan is the reassembled lifetime of a single zone token: its
// begin and end events plus any data attached in between.
type ZoneSpan struct {
	Begin  capz.Event
	End    *capz.Event
	Values []uint64
	Texts  []string
}

// BuildZoneSpans pairs zone events by token. Events for unknown
// tokens (data before begin, end without begin) fail the test.
func BuildZoneSpans(t *testing.T, events []capz.Event) map[uint32]*ZoneSpan {
	spans := make(map[uint32]*ZoneSpan)
	for _, ev := range events {
		switch ev.Kind {
		case capz.EventZoneBegin:
			if _, dup := spans[ev.Zone]; dup {
				t.Errorf("Zone token %d opened twice", ev.Zone)
			}
			spans[ev.Zone] = &ZoneSpan{Begin: ev}
		case capz.EventZoneEnd:
			span, ok := spans[ev.Zone]
			if !ok {
				t.Errorf("Zone token %d closed without begin", ev.Zone)
				continue
			}
			if span.End != nil {
				t.Errorf("Zone token %d closed twice", ev.Zone)
			}
			end := ev
			span.End = &end
		case capz.EventZoneValue:
			span, ok := spans[ev.Zone]
			if !ok {
				t.Errorf("Value attached to unknown zone token %d", ev.Zone)
				continue
			}
			span.Values = append(span.Values, ev.Number)
		case capz.EventZoneText:
			span, ok := spans[ev.Zone]
			if !ok {
				t.Errorf("Text attached to unknown zone token %d", ev.Zone)
				continue
			}
			span.Texts = append(span.Texts, ev.Text)
		}
	}
	return spans
}

// AssertAllPaired verifies every opened zone was also closed.
func AssertAllPaired(t *testing.T, spans map[uint32]*ZoneSpan) {
	for token, span := range spans {
		if span.End == nil {
			t.Errorf("Zone token %d (%s) never closed", token, span.Begin.Name)
		}
	}
}

// startCapture starts a capture backed by a fresh MockSink and
// registers cleanup. Tests share the process-wide capture slot, so
// they must not run in parallel.
func startCapture(t *testing.T, bufferSize int) (*capz.Capture, *MockSink) {
	t.Helper()
	sink := NewMockSink(t, t.Name(), bufferSize)
	capture := capz.Start(capz.WithSink(sink))
	t.Cleanup(capture.Stop)
	return capture, sink
}
