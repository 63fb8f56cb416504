// Package capz is a thin instrumentation binding for a profiling event
// sink. It exposes zones, plots, frames, memory events, messages and
// thread naming through scoped guard values.
//
// Core Components:.
//   - Capture: process-wide handle owning the sink lifecycle.
//   - Zone: a named, timed interval closed exactly once at scope exit.
//   - Plot: a named numeric time series identity.
//   - Frame: discontinuous frame guard; FrameMark marks continuous frames.
//   - Collector: in-process sink buffering emitted events for export.
//   - StreamSink: TCP sink streaming events to an external consumer.
//
// Basic Usage:.
//
//	capture := capz.Start()
//	defer capture.Stop()
//
//	z := capz.Begin("load-assets")
//	defer z.End()
//
//	z.Text("level-1.dat")
//	z.Number(42)
//
// Build Modes:.
//
// Instrumentation is enabled by default. Building with -tags capzoff
// compiles every operation down to a no-op while keeping all call sites
// valid; guards become inert values and Connected always reports true.
// Building with -tags capzdebug adds text-length assertions and an
// allocation shadow table that catches pairing violations before they
// reach the sink.
//
// Thread Safety:.
//
// Capture, Plot, Collector and StreamSink are safe for concurrent use.
// A Zone is confined to the goroutine that opened it: it must be ended
// on that goroutine and must not be shared. Zones opened on one
// goroutine nest in strict stack order; the sink attributes zones from
// different goroutines to independent timelines.
//
// Delivery:.
//
// Every emission is a single fire-and-forget call into the sink. There
// are no retries; events emitted while no consumer is attached are
// silently lost. Use Capture.Connected to poll for a consumer before
// doing profiled work that must be observed.
package capz

// Pool identifies an independent tracked memory address space, such as
// a custom allocator or arena.
type Pool = string

// FuncUnavailable is the placeholder substituted when the enclosing
// function name of a call site cannot be resolved.
const FuncUnavailable = "<unavailable>"
