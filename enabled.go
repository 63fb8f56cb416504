//go:build !capzoff

package capz

// enabled selects the instrumented build. Guarding every operation with
// this constant lets the compiler delete the sink paths entirely when
// the capzoff tag flips it to false, while call sites stay identical in
// both modes.
const enabled = true
