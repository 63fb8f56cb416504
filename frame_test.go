//go:build !capzoff

package capz

import "testing"

func TestContinuousFrameMark(t *testing.T) {
	_, collector := newTestCapture(t)

	FrameMark()
	FrameMarkNamed("render")
	FrameMark()

	events := collector.Export()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Kind != EventFrameMark {
			t.Errorf("unexpected kind %v", ev.Kind)
		}
	}
	if events[0].Name != "" || events[2].Name != "" {
		t.Error("main frame marks should carry no name")
	}
	if events[1].Name != "render" {
		t.Errorf("named frame mark carries %q", events[1].Name)
	}
}

func TestDiscontinuousFrame(t *testing.T) {
	_, collector := newTestCapture(t)

	func() {
		f := StartFrame("IO")
		defer f.End()

		// No frame end may be emitted before scope exit.
		events := collector.Export()
		if len(events) != 1 || events[0].Kind != EventFrameStart {
			t.Fatalf("expected only frame-start while open, got %v", kinds(events))
		}
		if events[0].Name != "IO" {
			t.Errorf("frame start carries %q", events[0].Name)
		}
	}()

	events := collector.Export()
	if len(events) != 1 || events[0].Kind != EventFrameEnd {
		t.Fatalf("expected exactly one frame-end after scope exit, got %v", kinds(events))
	}
	if events[0].Name != "IO" {
		t.Errorf("frame end carries %q", events[0].Name)
	}
}

func TestDiscontinuousFrameEndIdempotent(t *testing.T) {
	_, collector := newTestCapture(t)

	f := StartFrame("audio")
	f.End()
	f.End()

	events := collector.Export()
	if len(events) != 2 {
		t.Fatalf("expected start+end, got %v", kinds(events))
	}
}
