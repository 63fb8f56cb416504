package capz

import "runtime"

// Zone is a scope-bound guard over one open interval in the event
// stream. End it exactly once, on the goroutine that opened it, in
// reverse order relative to any zone opened later in the same scope:
//
//	z := capz.Begin("parse")
//	defer z.End()
//
// Zones nest; they cannot partially overlap within a goroutine. A Zone
// must not be sent to another goroutine or shared by reference - the
// underlying sink token is only valid for stack-discipline closing on
// its origin goroutine.
type Zone struct {
	ctx    ZoneCtx
	sink   Sink
	ended  bool
	noCopy noCopy //nolint:unused // vet copylocks marker
}

// inertZone backs every guard handed out in disabled builds. Its
// methods bail out before touching any field, so sharing it is safe.
var inertZone = &Zone{}

// ZoneOption configures Begin and Func.
type ZoneOption func(*zoneSettings)

type zoneSettings struct {
	color  Color
	active bool
}

// WithColor assigns a constant display color to the zone's call site.
// The color is baked into the site's location record on first use;
// later invocations of the same site keep the first color.
func WithColor(c Color) ZoneOption {
	return func(s *zoneSettings) { s.color = c }
}

// WithEnabled filters the zone at runtime. A filtered zone still
// obtains a token from the sink, marked inactive, so the call-site
// shape and the close path stay identical:
//
//	z := capz.Begin("jobs", capz.WithEnabled(profileJobs))
//	defer z.End()
func WithEnabled(on bool) ZoneOption {
	return func(s *zoneSettings) { s.active = on }
}

// Begin opens a zone named name at the calling source location. The
// location record (name, function, file, line, color) is built once per
// distinct call site and reused for every later invocation of that
// site.
func Begin(name string, opts ...ZoneOption) *Zone {
	return begin(name, 2, opts)
}

// Func opens a zone named after the enclosing function. It is the
// function-wrapping convenience: one line at the top of a function
// instruments its whole body.
//
//	func loadAssets() {
//	    defer capz.Func().End()
//	    ...
//	}
func Func(opts ...ZoneOption) *Zone {
	if !enabled {
		return inertZone
	}
	return begin(callerFuncName(1), 2, opts)
}

func begin(name string, skip int, opts []ZoneOption) *Zone {
	if !enabled {
		return inertZone
	}
	settings := zoneSettings{active: true}
	for _, opt := range opts {
		opt(&settings)
	}

	var loc *ZoneLocation
	if pc, file, line, ok := runtime.Caller(skip); ok {
		loc = locationFor(pc, name, file, line, settings.color)
	} else {
		loc = &ZoneLocation{Name: name, Function: FuncUnavailable, Color: settings.color}
	}

	sink := loadSink()
	return &Zone{
		ctx:  sink.ZoneBegin(loc, settings.active),
		sink: sink,
	}
}

// Number attaches a numeric datum to the open zone. May be called
// multiple times; values accumulate in emission order.
func (z *Zone) Number(value uint64) {
	if !enabled || z.ended {
		return
	}
	z.sink.ZoneValue(z.ctx, value)
}

// Text attaches a text datum to the open zone. May be called multiple
// times. The text must stay under 64 KB; that ceiling is asserted only
// in capzdebug builds.
func (z *Zone) Text(text string) {
	if !enabled || z.ended {
		return
	}
	assertTextLen("zone text", text)
	z.sink.ZoneText(z.ctx, text)
}

// SetColor overrides the zone's display color after the fact. Last
// call wins.
func (z *Zone) SetColor(color Color) {
	if !enabled || z.ended {
		return
	}
	z.sink.ZoneColor(z.ctx, color)
}

// End closes the zone, emitting the end event. Subsequent calls are
// no-ops. Must run on the goroutine that opened the zone.
func (z *Zone) End() {
	if !enabled || z.ended {
		return
	}
	z.ended = true
	z.sink.ZoneEnd(z.ctx)
}
