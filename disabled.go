//go:build capzoff

package capz

// enabled is false under the capzoff tag: every operation short-circuits
// before touching a sink and compiles down to nothing.
const enabled = false
