//go:build !capzoff

package capz

import (
	"testing"
)

// Operations invoked without a live capture must be silent no-ops, not
// errors: the nop sink swallows everything.
func TestOpsWithoutCaptureAreNoOps(t *testing.T) {
	z := Begin("orphan")
	z.Number(1)
	z.Text("ignored")
	z.End()

	FrameMark()
	f := StartFrame("orphan")
	f.End()

	ConfigurePlot("orphan", PlotConfig{}).EmitFloat64(1)
	PlotNumber("orphan", int64(1))

	Alloc("orphan", 0x1, 1)
	Free("orphan", 0x1)

	Message("orphan")
	AppInfo("orphan")
	SetThreadName("orphan")
}

// Events emitted before Start must not leak into a sink attached
// later.
func TestPreStartEventsNotDelivered(t *testing.T) {
	Message("too early")

	_, collector := newTestCapture(t)
	if got := collector.Export(); got != nil {
		t.Errorf("pre-start events leaked into capture: %v", kinds(got))
	}
}

func BenchmarkZoneWithoutCapture(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		z := Begin("bench")
		z.End()
	}
}

func BenchmarkZoneWithCollector(b *testing.B) {
	collector := NewCollector("bench", 1024)
	capture := Start(WithSink(collector))
	defer capture.Stop()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z := Begin("bench")
		z.End()
	}
}

func BenchmarkPlotEmit(b *testing.B) {
	collector := NewCollector("bench", 1024)
	capture := Start(WithSink(collector))
	defer capture.Stop()

	plot := NewPlot("bench")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plot.EmitInt64(int64(i))
	}
}
