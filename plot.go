package capz

// Plot is a lightweight identity for a named numeric time series. It
// is just the name; copy it freely, nothing needs to be released.
type Plot struct {
	name string
}

// NewPlot returns the identity for the named series without touching
// its configuration.
func NewPlot(name string) Plot {
	return Plot{name: name}
}

// ConfigurePlot registers or overwrites the display configuration for
// the named series and returns its identity. Configuration is global
// per name; values emitted afterward, from any goroutine, use the same
// identity.
func ConfigurePlot(name string, cfg PlotConfig) Plot {
	if enabled {
		loadSink().PlotConfig(name, cfg)
	}
	return Plot{name: name}
}

// Name returns the series name.
func (p Plot) Name() string { return p.name }

// EmitFloat64 emits a 64-bit float sample.
func (p Plot) EmitFloat64(value float64) {
	if !enabled {
		return
	}
	loadSink().PlotFloat64(p.name, value)
}

// EmitFloat32 emits a 32-bit float sample.
func (p Plot) EmitFloat32(value float32) {
	if !enabled {
		return
	}
	loadSink().PlotFloat32(p.name, value)
}

// EmitInt64 emits a 64-bit signed integer sample.
func (p Plot) EmitInt64(value int64) {
	if !enabled {
		return
	}
	loadSink().PlotInt64(p.name, value)
}

// Number is the set of value types a plot accepts. Each type routes to
// its own sink entry point; there is no runtime tag on the value.
type Number interface {
	float32 | float64 | int64
}

// Emit routes value to the entry point matching its type. The switch
// below is resolved per instantiated type; no branch survives into the
// compiled call.
func Emit[N Number](p Plot, value N) {
	if !enabled {
		return
	}
	switch v := any(value).(type) {
	case float64:
		p.EmitFloat64(v)
	case float32:
		p.EmitFloat32(v)
	case int64:
		p.EmitInt64(v)
	}
}

// PlotNumber is the one-off form: it emits into the named series
// without a prior ConfigurePlot, under the default identity.
func PlotNumber[N Number](name string, value N) {
	Emit(Plot{name: name}, value)
}

// PlotConfig controls how a plot is displayed. It does not restrict
// emitted values: any number is forwarded as-is, a negative
// "percentage" is simply displayed negative.
type PlotConfig struct {
	// Format controls how plot values are displayed.
	Format PlotFormat
	// Style controls how plot lines are displayed.
	Style PlotStyle
	// Color of the plot.
	Color Color
	// Filled fills the area below the plot with a solid color.
	Filled bool
}

// PlotFormat is the plot value display format.
type PlotFormat int32

const (
	// PlotNumberFormat displays values as plain numbers.
	PlotNumberFormat PlotFormat = 0
	// PlotMemory treats values as memory sizes: kilobytes, megabytes...
	PlotMemory PlotFormat = 1
	// PlotPercentage displays values as percentages, 100 being 100%.
	PlotPercentage PlotFormat = 2
	// PlotWatts displays values as watts: 5 reads as "5 W".
	PlotWatts PlotFormat = 3
)

// PlotStyle is the plot line style.
type PlotStyle int32

const (
	// PlotSmooth changes smoothly between points.
	PlotSmooth PlotStyle = 0
	// PlotStaircase displays a step function.
	PlotStaircase PlotStyle = 1
)
