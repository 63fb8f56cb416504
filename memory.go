package capz

import (
	"fmt"
	"sync"
)

// Alloc reports a memory allocation of size bytes at addr inside the
// named pool. Fire-and-forget; nothing is validated here.
//
// Every address reported freed under a pool must have been reported
// allocated under that same pool exactly once, with no duplicate
// allocation of a live address. The sink terminates the capture
// session on violations; this layer forwards blindly. Build with
// -tags capzdebug to catch pairing violations locally before they
// reach the sink.
func Alloc(pool Pool, addr uintptr, size uint64) {
	if !enabled {
		return
	}
	if debugging {
		shadowAlloc(pool, addr)
	}
	loadSink().Alloc(pool, addr, size)
}

// Free reports that the allocation at addr inside the named pool was
// released. Same contract as Alloc.
func Free(pool Pool, addr uintptr) {
	if !enabled {
		return
	}
	if debugging {
		shadowFree(pool, addr)
	}
	loadSink().Free(pool, addr)
}

// shadow is the capzdebug pairing net: live addresses per pool. The
// release build never touches it; the debugging const above makes the
// calls dead code.
var shadow struct {
	mu    sync.Mutex
	pools map[Pool]map[uintptr]struct{}
}

func shadowAlloc(pool Pool, addr uintptr) {
	shadow.mu.Lock()
	defer shadow.mu.Unlock()
	if shadow.pools == nil {
		shadow.pools = make(map[Pool]map[uintptr]struct{})
	}
	live := shadow.pools[pool]
	if live == nil {
		live = make(map[uintptr]struct{})
		shadow.pools[pool] = live
	}
	if _, ok := live[addr]; ok {
		panic(fmt.Sprintf("capz: double alloc of %#x in pool %q", addr, pool))
	}
	live[addr] = struct{}{}
}

func shadowFree(pool Pool, addr uintptr) {
	shadow.mu.Lock()
	defer shadow.mu.Unlock()
	live := shadow.pools[pool]
	if _, ok := live[addr]; !ok {
		panic(fmt.Sprintf("capz: free of untracked %#x in pool %q", addr, pool))
	}
	delete(live, addr)
}
