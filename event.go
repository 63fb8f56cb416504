package capz

import "time"

// EventKind indicates what kind of profiling event was emitted.
type EventKind uint8

const (
	EventBad        EventKind = iota
	EventZoneBegin            // Zone opened.
	EventZoneEnd              // Zone closed.
	EventZoneValue            // Numeric datum attached to an open zone.
	EventZoneText             // Text datum attached to an open zone.
	EventZoneColor            // Color override for an open zone.
	EventFrameMark            // Continuous frame boundary.
	EventFrameStart           // Discontinuous frame opened.
	EventFrameEnd             // Discontinuous frame closed.
	EventPlotConfig           // Plot display configuration.
	EventPlotF64              // 64-bit float plot sample.
	EventPlotF32              // 32-bit float plot sample.
	EventPlotI64              // 64-bit signed integer plot sample.
	EventMessage              // Log-style text message.
	EventAppInfo              // Free-form capture metadata.
	EventThreadName           // Thread name announcement.
	EventAlloc                // Memory allocation in a named pool.
	EventFree                 // Memory free in a named pool.
)

var eventKindNames = [...]string{
	EventBad:        "bad",
	EventZoneBegin:  "zone-begin",
	EventZoneEnd:    "zone-end",
	EventZoneValue:  "zone-value",
	EventZoneText:   "zone-text",
	EventZoneColor:  "zone-color",
	EventFrameMark:  "frame-mark",
	EventFrameStart: "frame-start",
	EventFrameEnd:   "frame-end",
	EventPlotConfig: "plot-config",
	EventPlotF64:    "plot-f64",
	EventPlotF32:    "plot-f32",
	EventPlotI64:    "plot-i64",
	EventMessage:    "message",
	EventAppInfo:    "app-info",
	EventThreadName: "thread-name",
	EventAlloc:      "alloc",
	EventFree:       "free",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is a single emitted profiling event as recorded by the
// in-process sinks. Fields are valid only for the kinds noted.
//
//nolint:govet // Field order optimized for JSON readability over memory
type Event struct {
	// Time is the sink-side timestamp of the emission.
	Time time.Time `json:"time"`

	// Kind discriminates the event.
	Kind EventKind `json:"kind"`

	// Name is the zone, frame set, plot, pool or thread name.
	// Empty for an unnamed (main) frame mark.
	Name string `json:"name,omitempty"`

	// Function, File and Line identify the originating call site.
	// Valid when Kind == EventZoneBegin.
	Function string `json:"function,omitempty"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`

	// Zone is the sink-issued token pairing begin/end and any attached
	// data. Valid for the EventZone* kinds.
	Zone uint32 `json:"zone,omitempty"`

	// Active is false for zones opened in filtered mode. Valid when
	// Kind == EventZoneBegin.
	Active bool `json:"active,omitempty"`

	// Color carries zone, message or plot colors.
	Color Color `json:"color,omitempty"`

	// Number is the attached zone datum. Valid when Kind == EventZoneValue.
	Number uint64 `json:"number,omitempty"`

	// Float carries plot samples for EventPlotF64 and EventPlotF32.
	Float float64 `json:"float,omitempty"`

	// Int carries plot samples for EventPlotI64.
	Int int64 `json:"int,omitempty"`

	// Text carries zone text, messages and app info.
	Text string `json:"text,omitempty"`

	// Format, Style and Filled describe a plot configuration.
	// Valid when Kind == EventPlotConfig.
	Format PlotFormat `json:"format,omitempty"`
	Style  PlotStyle  `json:"style,omitempty"`
	Filled bool       `json:"filled,omitempty"`

	// Addr and Size describe memory events. Size is valid only when
	// Kind == EventAlloc.
	Addr uint64 `json:"addr,omitempty"`
	Size uint64 `json:"size,omitempty"`
}
