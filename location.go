package capz

import (
	"runtime"
	"strings"
	"sync"
)

// ZoneLocation is the immutable per-call-site record backing a zone:
// display name, best-effort enclosing function, file, line and color.
// Exactly one record exists per distinct call site; it is built on
// first use, lives for the rest of the process and is safe to share
// across goroutines.
type ZoneLocation struct {
	Name     string
	Function string
	File     string
	Line     int
	Color    Color
}

// locations interns ZoneLocation records keyed by the call site's
// program counter. Never evicted.
var locations sync.Map // uintptr -> *ZoneLocation

// locationFor returns the interned record for the call site identified
// by pc, building it on first use. Name and color are taken from the
// first invocation of a site; later invocations reuse the record
// untouched.
func locationFor(pc uintptr, name, file string, line int, color Color) *ZoneLocation {
	if v, ok := locations.Load(pc); ok {
		return v.(*ZoneLocation)
	}

	function := FuncUnavailable
	if f := runtime.FuncForPC(pc); f != nil {
		function = f.Name()
	}
	loc := &ZoneLocation{
		Name:     name,
		Function: function,
		File:     file,
		Line:     line,
		Color:    color,
	}
	v, _ := locations.LoadOrStore(pc, loc)
	return v.(*ZoneLocation)
}

// callerFuncName resolves the short name of the function that is skip
// frames above the caller, or FuncUnavailable.
func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return FuncUnavailable
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return FuncUnavailable
	}
	return shortFuncName(f.Name())
}

// shortFuncName strips the package path from a fully qualified function
// name: "github.com/x/y.(*T).Work" becomes "(*T).Work".
func shortFuncName(full string) string {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.IndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return full
}
