//go:build linux

package capz

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// setOSThreadName applies name to the current OS thread via prctl.
// Best-effort: failures are ignored, the sink-side name is what
// actually matters. The kernel caps thread names at 15 bytes.
func setOSThreadName(name string) {
	if len(name) > 15 {
		name = name[:15]
	}
	ptr, err := unix.BytePtrFromString(name)
	if err != nil {
		return
	}
	_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(ptr)), 0, 0, 0)
}
