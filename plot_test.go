//go:build !capzoff

package capz

import "testing"

func TestPlotConfigureThenEmit(t *testing.T) {
	_, collector := newTestCapture(t)

	plot := ConfigurePlot("load", PlotConfig{
		Format: PlotPercentage,
		Style:  PlotSmooth,
		Filled: true,
	})
	plot.EmitFloat64(0)
	plot.EmitFloat64(50)
	plot.EmitFloat64(100)

	events := collector.Export()
	if len(events) != 4 {
		t.Fatalf("expected config + 3 samples, got %v", kinds(events))
	}

	cfg := events[0]
	if cfg.Kind != EventPlotConfig || cfg.Name != "load" {
		t.Fatalf("unexpected config event: %v %q", cfg.Kind, cfg.Name)
	}
	if cfg.Format != PlotPercentage || cfg.Style != PlotSmooth || !cfg.Filled {
		t.Errorf("config not forwarded: %+v", cfg)
	}

	for i, want := range []float64{0, 50, 100} {
		ev := events[i+1]
		if ev.Kind != EventPlotF64 {
			t.Errorf("sample %d routed to %v, want %v", i, ev.Kind, EventPlotF64)
		}
		if ev.Name != "load" || ev.Float != want {
			t.Errorf("sample %d: got %q=%v, want load=%v", i, ev.Name, ev.Float, want)
		}
	}
}

func TestPlotTypedRouting(t *testing.T) {
	_, collector := newTestCapture(t)

	plot := NewPlot("mixed")
	Emit(plot, float64(1.5))
	Emit(plot, float32(2.5))
	Emit(plot, int64(-3))

	events := collector.Export()
	want := []EventKind{EventPlotF64, EventPlotF32, EventPlotI64}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d routed to %v, want %v", i, got[i], want[i])
		}
	}
	if events[0].Float != 1.5 || events[1].Float != 2.5 || events[2].Int != -3 {
		t.Errorf("values not forwarded as-is: %+v", events)
	}
}

func TestPlotOneOffEmission(t *testing.T) {
	_, collector := newTestCapture(t)

	PlotNumber("draws", int64(128))

	events := collector.Export()
	if len(events) != 1 || events[0].Kind != EventPlotI64 {
		t.Fatalf("expected a single int sample, got %v", kinds(events))
	}
	if events[0].Name != "draws" || events[0].Int != 128 {
		t.Errorf("got %q=%d", events[0].Name, events[0].Int)
	}
}

func TestPlotNegativePercentageAccepted(t *testing.T) {
	_, collector := newTestCapture(t)

	plot := ConfigurePlot("delta", PlotConfig{Format: PlotPercentage})
	plot.EmitFloat64(-25)

	events := collector.Export()
	if events[1].Float != -25 {
		t.Errorf("negative value altered: %v", events[1].Float)
	}
}

func TestPlotIdentityIsCopyable(t *testing.T) {
	_, collector := newTestCapture(t)

	original := NewPlot("shared")
	duplicate := original
	original.EmitInt64(1)
	duplicate.EmitInt64(2)

	events := collector.Export()
	if len(events) != 2 || events[0].Name != events[1].Name {
		t.Errorf("copies diverged: %+v", events)
	}
}
