package capz

// FrameMark marks the end of the main continuous frame; the next one
// starts immediately. Fully optional - many programs have no frame
// concept at all.
func FrameMark() {
	if !enabled {
		return
	}
	loadSink().FrameMark("")
}

// FrameMarkNamed marks the end of the named continuous frame set.
//
// A frame set name must stick to one variant for the life of the
// program: either continuous (FrameMarkNamed) or discontinuous
// (StartFrame). Mixing variants under one name is undefined from the
// sink's perspective and is not detected here.
func FrameMarkNamed(name string) {
	if !enabled {
		return
	}
	loadSink().FrameMark(name)
}

// StartFrame opens a discontinuous frame under the given name. The
// returned guard's End emits the matching frame end:
//
//	f := capz.StartFrame("IO")
//	defer f.End()
func StartFrame(name string) *Frame {
	if !enabled {
		return inertFrame
	}
	sink := loadSink()
	sink.FrameStart(name)
	return &Frame{name: name, sink: sink}
}

// Frame is the guard for one discontinuous frame.
type Frame struct {
	name  string
	sink  Sink
	ended bool
}

var inertFrame = &Frame{}

// End closes the discontinuous frame. Subsequent calls are no-ops.
func (f *Frame) End() {
	if !enabled || f.ended {
		return
	}
	f.ended = true
	f.sink.FrameEnd(f.name)
}
