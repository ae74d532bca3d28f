package pets

import (
	"sync"
	"time"
)

// IDGenerator entrega ids int64 estrictamente crecientes, derivados del reloj
// (ms) pero sin colisiones aunque se creen dos mascotas en el mismo tick.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe registra un id existente (p.ej. cargado del snapshot)
// para que Next nunca lo repita.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
