//go:build !capzoff

package capz

import (
	"testing"
)

// newTestCapture starts a capture backed by a sync-mode collector and
// registers cleanup. Tests share the process-wide started flag, so
// none of them run in parallel.
func newTestCapture(t *testing.T) (*Capture, *Collector) {
	t.Helper()
	collector := NewCollector("test", 64)
	collector.SetSyncMode(true)
	capture := Start(WithSink(collector))
	t.Cleanup(capture.Stop)
	return capture, collector
}

func TestStartStopStart(t *testing.T) {
	first := Start()
	first.Stop()

	second := Start()
	second.Stop()
}

func TestDoubleStartPanics(t *testing.T) {
	capture := Start()
	defer capture.Stop()

	defer func() {
		if recover() == nil {
			t.Error("expected second Start to panic while a capture is live")
		}
	}()
	Start()
}

func TestStopIdempotent(t *testing.T) {
	capture := Start()
	capture.Stop()
	capture.Stop()

	// The flag must have been released exactly once.
	next := Start()
	next.Stop()
}

func TestConnectedBeforeAttach(t *testing.T) {
	capture, collector := newTestCapture(t)

	if capture.Connected() {
		t.Error("expected Connected to be false before a consumer attaches")
	}

	collector.Attach()

	if !capture.Connected() {
		t.Error("expected Connected to be true after Attach")
	}
}

func TestConnectedAfterStop(t *testing.T) {
	collector := NewCollector("test", 64)
	collector.Attach()
	capture := Start(WithSink(collector))
	capture.Stop()

	if capture.Connected() {
		t.Error("expected Connected to be false after Stop")
	}
}

func TestStopSilencesEmission(t *testing.T) {
	capture, collector := newTestCapture(t)

	Message("before stop")
	capture.Stop()
	Message("after stop")

	events := collector.Export()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Text != "before stop" {
		t.Errorf("unexpected event text %q", events[0].Text)
	}
}

func TestAppInfoOption(t *testing.T) {
	collector := NewCollector("test", 64)
	collector.SetSyncMode(true)
	capture := Start(WithSink(collector), WithAppInfo("demo app", "rev deadbeef"))
	defer capture.Stop()

	events := collector.Export()
	if len(events) != 2 {
		t.Fatalf("expected 2 app info events, got %d", len(events))
	}
	for i, want := range []string{"demo app", "rev deadbeef"} {
		if events[i].Kind != EventAppInfo || events[i].Text != want {
			t.Errorf("event %d: got %v %q, want app-info %q", i, events[i].Kind, events[i].Text, want)
		}
	}
}
