package capz

import (
	"sync/atomic"
)

// started guards the single-live-Capture invariant.
var started atomic.Bool

// current is the sink all package-level operations emit into. It is
// the nop sink whenever no capture is live.
var current atomic.Pointer[sinkHolder]

type sinkHolder struct {
	sink Sink
}

func loadSink() Sink {
	if h := current.Load(); h != nil {
		return h.sink
	}
	return nopSink{}
}

// Capture represents one active profiling session. Obtaining a Capture
// is required before any emitted event can be observed; operations
// invoked without one are silently dropped.
//
// A Capture must not be copied. Stop it exactly where its owning scope
// ends:
//
//	capture := capz.Start()
//	defer capture.Stop()
type Capture struct {
	sink    Sink
	stopped atomic.Bool
	noCopy  noCopy //nolint:unused // vet copylocks marker
}

// Option configures Start.
type Option func(*captureConfig)

type captureConfig struct {
	sink    Sink
	appInfo []string
}

// WithSink selects the sink for this capture. The default is an
// unattached Collector with a 4096-event buffer.
func WithSink(s Sink) Option {
	return func(c *captureConfig) { c.sink = s }
}

// WithAppInfo emits the given metadata strings right after sink
// startup. May be given multiple times; the sink accumulates all of
// them.
func WithAppInfo(info ...string) Option {
	return func(c *captureConfig) { c.appInfo = append(c.appInfo, info...) }
}

// Start begins a capture and initializes the sink exactly once.
//
// At most one Capture may be live at a time. A second Start while one
// is live is a fatal usage error and panics immediately; after Stop a
// new Start succeeds. In disabled builds Start returns an inert handle
// and never panics.
func Start(opts ...Option) *Capture {
	if !enabled {
		return &Capture{sink: nopSink{}}
	}
	if started.Swap(true) {
		panic("capz: capture already started")
	}

	var cfg captureConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sink == nil {
		cfg.sink = NewCollector("capture", 4096)
	}

	c := &Capture{sink: cfg.sink}
	c.sink.Startup()
	for _, info := range cfg.appInfo {
		c.sink.AppInfo(info)
	}
	current.Store(&sinkHolder{sink: c.sink})
	return c
}

// Connected reports whether a consumer is currently attached to the
// sink. Non-blocking; returns false until one attaches. Callers that
// must not lose events can poll it before doing profiled work. In
// disabled builds it always reports true.
func (c *Capture) Connected() bool {
	if !enabled {
		return true
	}
	if c.stopped.Load() {
		return false
	}
	return c.sink.Connected()
}

// Stop shuts the sink down and releases the capture, permitting a
// subsequent Start. Safe to call multiple times; only the first call
// has an effect.
func (c *Capture) Stop() {
	if !enabled {
		return
	}
	if c.stopped.Swap(true) {
		return
	}
	current.Store(&sinkHolder{sink: nopSink{}})
	c.sink.Shutdown()
	started.Store(false)
}

// noCopy triggers the go vet copylocks check when embedded in a struct
// that must not be copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
