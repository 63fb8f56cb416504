package capz

import (
	"fmt"
	"math"
)

// maxTextLen is the sink's ceiling for message, zone text and app info
// payloads. Checked only in capzdebug builds; in release it is a
// caller contract.
const maxTextLen = math.MaxUint16

func assertTextLen(what, text string) {
	if debugging && len(text) >= maxTextLen {
		panic(fmt.Sprintf("capz: %s exceeds %d bytes", what, maxTextLen))
	}
}

// Message sends a log-style text message to the sink. Useful for
// correlating zones with what the application was doing.
func Message(text string) {
	if !enabled {
		return
	}
	assertTextLen("message", text)
	loadSink().Message(text, ColorUnspecified)
}

// MessageColor sends a message with a custom display color.
func MessageColor(text string, color Color) {
	if !enabled {
		return
	}
	assertTextLen("message", text)
	loadSink().Message(text, color)
}

// AppInfo attaches free-form metadata to the capture: source revision,
// build version, environment. May be called multiple times; the sink
// accumulates and displays all of it.
func AppInfo(text string) {
	if !enabled {
		return
	}
	assertTextLen("app info", text)
	loadSink().AppInfo(text)
}

// SetThreadName names the calling goroutine's timeline in the sink. It
// is recommended in every goroutine that emits events; unnamed
// timelines get numeric labels.
//
// On Linux the name is additionally applied to the current OS thread,
// which is only meaningful if the caller has locked it with
// runtime.LockOSThread.
func SetThreadName(name string) {
	if !enabled {
		return
	}
	setOSThreadName(name)
	loadSink().ThreadName(name)
}
