//go:build !linux

package capz

// OS-level thread naming is only wired up on Linux; elsewhere the
// sink-side name is all there is.
func setOSThreadName(string) {}
