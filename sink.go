package capz

// ZoneCtx is the opaque token a sink issues when a zone begins. It is
// only valid for stack-discipline closing on the goroutine that
// obtained it.
type ZoneCtx struct {
	ID     uint32
	Active bool
}

// Sink is the event-emission boundary. Every operation in this package
// funnels into exactly one Sink call; none of them block, return errors
// or retry. Implementations must be safe for concurrent use.
//
// Delivery guarantees are the sink's own. Zone tokens pair each End
// with its Begin; alloc/free pairing per pool is the caller's contract
// and is forwarded unverified.
type Sink interface {
	// Startup and Shutdown bracket one capture session. They are never
	// called concurrently with each other; the single-Capture invariant
	// guarantees that.
	Startup()
	Shutdown()

	// Connected reports whether a consumer is currently attached.
	// Non-blocking.
	Connected() bool

	// ZoneBegin opens a zone at the given interned location. A filtered
	// zone (active == false) still receives a token so the close path
	// stays uniform.
	ZoneBegin(loc *ZoneLocation, active bool) ZoneCtx
	ZoneEnd(ctx ZoneCtx)
	ZoneValue(ctx ZoneCtx, value uint64)
	ZoneText(ctx ZoneCtx, text string)
	ZoneColor(ctx ZoneCtx, color Color)

	// FrameMark marks a continuous frame boundary; name "" is the main
	// frame. FrameStart/FrameEnd bracket a discontinuous frame.
	FrameMark(name string)
	FrameStart(name string)
	FrameEnd(name string)

	PlotConfig(name string, cfg PlotConfig)
	PlotFloat64(name string, value float64)
	PlotFloat32(name string, value float32)
	PlotInt64(name string, value int64)

	Message(text string, color Color)
	AppInfo(text string)
	ThreadName(name string)

	Alloc(pool Pool, addr uintptr, size uint64)
	Free(pool Pool, addr uintptr)
}

// nopSink is the sink in effect before Start and after Stop. It
// swallows everything and reports no consumer.
type nopSink struct{}

func (nopSink) Startup()                              {}
func (nopSink) Shutdown()                             {}
func (nopSink) Connected() bool                       { return false }
func (nopSink) ZoneBegin(*ZoneLocation, bool) ZoneCtx { return ZoneCtx{} }
func (nopSink) ZoneEnd(ZoneCtx)                       {}
func (nopSink) ZoneValue(ZoneCtx, uint64)             {}
func (nopSink) ZoneText(ZoneCtx, string)              {}
func (nopSink) ZoneColor(ZoneCtx, Color)              {}
func (nopSink) FrameMark(string)                      {}
func (nopSink) FrameStart(string)                     {}
func (nopSink) FrameEnd(string)                       {}
func (nopSink) PlotConfig(string, PlotConfig)         {}
func (nopSink) PlotFloat64(string, float64)           {}
func (nopSink) PlotFloat32(string, float32)           {}
func (nopSink) PlotInt64(string, int64)               {}
func (nopSink) Message(string, Color)                 {}
func (nopSink) AppInfo(string)                        {}
func (nopSink) ThreadName(string)                     {}
func (nopSink) Alloc(Pool, uintptr, uint64)           {}
func (nopSink) Free(Pool, uintptr)                    {}
