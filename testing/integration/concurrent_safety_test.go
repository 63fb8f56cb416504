//go:build !capzoff

package integration

import (
	"fmt"
	"sync"
	"testing"

	"github.com/zoobzio/capz"
)

// TestConcurrentZoneTokens verifies that zones opened from many
// goroutines receive unique tokens and all pair up.
func TestConcurrentZoneTokens(t *testing.T) {
	_, sink := startCapture(t, 100000)

	var wg sync.WaitGroup
	numGoroutines := 20
	zonesPerGoroutine := 50

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < zonesPerGoroutine; j++ {
				outer := capz.Begin("outer")
				outer.Number(uint64(worker))
				inner := capz.Begin("inner")
				inner.End()
				outer.End()
			}
		}(i)
	}
	wg.Wait()

	spans := BuildZoneSpans(t, sink.GetAll())
	AssertAllPaired(t, spans)

	want := numGoroutines * zonesPerGoroutine * 2
	if len(spans) != want {
		t.Errorf("Expected %d zones, got %d", want, len(spans))
	}
}

// TestConcurrentEmissionMix hammers every emission path at once.
// Run with -race; the assertions only sanity-check delivery counts.
func TestConcurrentEmissionMix(t *testing.T) {
	_, sink := startCapture(t, 100000)

	depth := capz.NewPlot("depth")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				switch worker % 4 {
				case 0:
					zone := capz.Func()
					zone.Text(fmt.Sprintf("w%d", worker))
					zone.End()
				case 1:
					depth.EmitFloat64(float64(j))
					capz.PlotNumber("count", int64(j))
				case 2:
					capz.FrameMarkNamed("worker frames")
					capz.Message("tick")
				case 3:
					addr := uintptr(0x10000*worker + j)
					capz.Alloc("scratch", addr, 16)
					capz.Free("scratch", addr)
				}
			}
		}(i)
	}
	wg.Wait()

	events := sink.GetAll()
	counts := make(map[capz.EventKind]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}

	if counts[capz.EventZoneBegin] != counts[capz.EventZoneEnd] {
		t.Errorf("Begin/end mismatch: %d vs %d",
			counts[capz.EventZoneBegin], counts[capz.EventZoneEnd])
	}
	if counts[capz.EventAlloc] != counts[capz.EventFree] {
		t.Errorf("Alloc/free mismatch: %d vs %d",
			counts[capz.EventAlloc], counts[capz.EventFree])
	}
	if counts[capz.EventFrameMark] != 50 {
		t.Errorf("Expected 50 frame marks, got %d", counts[capz.EventFrameMark])
	}
}

// TestStopDuringEmission verifies that stopping the capture while
// goroutines are still emitting never corrupts the stream: events
// after Stop simply vanish.
func TestStopDuringEmission(t *testing.T) {
	sink := NewMockSink(t, "stop-race", 100000)
	capture := capz.Start(capz.WithSink(sink))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				zone := capz.Begin("racing")
				zone.End()
			}
		}()
	}

	capture.Stop()
	close(stop)
	wg.Wait()

	// Zones that began before the stop may have ended after it, so
	// dangling begins are acceptable; double events are not.
	seen := make(map[uint32]int)
	for _, ev := range sink.GetAll() {
		if ev.Kind == capz.EventZoneBegin {
			seen[ev.Zone]++
			if seen[ev.Zone] > 1 {
				t.Fatalf("Zone token %d issued twice", ev.Zone)
			}
		}
	}
}
