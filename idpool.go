package capz

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// IDPool hands out pre-generated consumer session IDs, amortizing
// crypto/rand overhead across batched refills.
type IDPool struct {
	factory func() string
	ids     []string
	batch   int
	mu      sync.Mutex
}

// NewIDPool creates a pool refilling batch IDs at a time. A nil factory
// uses 8 random bytes, hex encoded.
func NewIDPool(batch int, factory func() string) *IDPool {
	if batch < 1 {
		batch = 1
	}
	if factory == nil {
		factory = randomID
	}
	return &IDPool{
		factory: factory,
		batch:   batch,
	}
}

// Get returns the next ID, refilling the pool when it runs dry.
func (p *IDPool) Get() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.ids) == 0 {
		p.ids = make([]string, p.batch)
		for i := range p.ids {
			p.ids[i] = p.factory()
		}
	}
	id := p.ids[len(p.ids)-1]
	p.ids = p.ids[:len(p.ids)-1]
	return id
}

func randomID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fall back to a time-based ID if crypto/rand fails.
		return hex.EncodeToString([]byte(time.Now().Format("15:04:05.000000")))
	}
	return hex.EncodeToString(bytes)
}
