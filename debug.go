//go:build capzdebug

package capz

// debugging enables caller-contract checks that are too expensive for
// release builds: text-length assertions and the allocation shadow
// table.
const debugging = true
