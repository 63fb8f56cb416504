//go:build capzdebug && !capzoff

package capz

import "testing"

func TestShadowTableCatchesDoubleAlloc(t *testing.T) {
	_, _ = newTestCapture(t)

	Alloc("shadowed", 0x5000, 8)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double alloc in debug build")
		}
		Free("shadowed", 0x5000)
	}()
	Alloc("shadowed", 0x5000, 8)
}

func TestShadowTableCatchesUnpairedFree(t *testing.T) {
	_, _ = newTestCapture(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on unpaired free in debug build")
		}
	}()
	Free("shadowed", 0x6000)
}

func TestShadowTableAllowsProperPairing(t *testing.T) {
	_, _ = newTestCapture(t)

	Alloc("paired", 0x7000, 32)
	Free("paired", 0x7000)
	Alloc("paired", 0x7000, 32)
	Free("paired", 0x7000)
}
