package capz

import "sync/atomic"

// eventSink adapts the per-operation Sink surface onto a single-event
// submit function. The in-process sinks embed it and provide submit;
// only lifecycle and transport differ between them.
type eventSink struct {
	submit   func(Event)
	nextZone atomic.Uint32
}

// ZoneBegin issues a fresh token per zone; filtered zones get one too,
// so every End pairs the same way.
func (e *eventSink) ZoneBegin(loc *ZoneLocation, active bool) ZoneCtx {
	id := e.nextZone.Add(1)
	e.submit(Event{
		Kind:     EventZoneBegin,
		Name:     loc.Name,
		Function: loc.Function,
		File:     loc.File,
		Line:     loc.Line,
		Color:    loc.Color,
		Zone:     id,
		Active:   active,
	})
	return ZoneCtx{ID: id, Active: active}
}

func (e *eventSink) ZoneEnd(ctx ZoneCtx) {
	e.submit(Event{Kind: EventZoneEnd, Zone: ctx.ID})
}

func (e *eventSink) ZoneValue(ctx ZoneCtx, value uint64) {
	e.submit(Event{Kind: EventZoneValue, Zone: ctx.ID, Number: value})
}

func (e *eventSink) ZoneText(ctx ZoneCtx, text string) {
	e.submit(Event{Kind: EventZoneText, Zone: ctx.ID, Text: text})
}

func (e *eventSink) ZoneColor(ctx ZoneCtx, color Color) {
	e.submit(Event{Kind: EventZoneColor, Zone: ctx.ID, Color: color})
}

func (e *eventSink) FrameMark(name string) {
	e.submit(Event{Kind: EventFrameMark, Name: name})
}

func (e *eventSink) FrameStart(name string) {
	e.submit(Event{Kind: EventFrameStart, Name: name})
}

func (e *eventSink) FrameEnd(name string) {
	e.submit(Event{Kind: EventFrameEnd, Name: name})
}

func (e *eventSink) PlotConfig(name string, cfg PlotConfig) {
	e.submit(Event{
		Kind:   EventPlotConfig,
		Name:   name,
		Format: cfg.Format,
		Style:  cfg.Style,
		Color:  cfg.Color,
		Filled: cfg.Filled,
	})
}

func (e *eventSink) PlotFloat64(name string, value float64) {
	e.submit(Event{Kind: EventPlotF64, Name: name, Float: value})
}

func (e *eventSink) PlotFloat32(name string, value float32) {
	e.submit(Event{Kind: EventPlotF32, Name: name, Float: float64(value)})
}

func (e *eventSink) PlotInt64(name string, value int64) {
	e.submit(Event{Kind: EventPlotI64, Name: name, Int: value})
}

func (e *eventSink) Message(text string, color Color) {
	e.submit(Event{Kind: EventMessage, Text: text, Color: color})
}

func (e *eventSink) AppInfo(text string) {
	e.submit(Event{Kind: EventAppInfo, Text: text})
}

func (e *eventSink) ThreadName(name string) {
	e.submit(Event{Kind: EventThreadName, Name: name})
}

func (e *eventSink) Alloc(pool Pool, addr uintptr, size uint64) {
	e.submit(Event{Kind: EventAlloc, Name: pool, Addr: uint64(addr), Size: size})
}

func (e *eventSink) Free(pool Pool, addr uintptr) {
	e.submit(Event{Kind: EventFree, Name: pool, Addr: uint64(addr)})
}
