// Package timer abstrae los callbacks diferidos (animaciones de salida)
// para poder cancelarlos y testearlos sin dormir.
package timer

import (
	"sort"
	"sync"
	"time"
)

// Timer es un callback pendiente. Stop devuelve false si ya corrió o ya se canceló.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real usa time.AfterFunc.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual es un reloj controlado a mano: nada corre hasta Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	m       *Manual
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance mueve el reloj y ejecuta, en orden de vencimiento, los callbacks vencidos.
// Los callbacks corren sin el lock tomado (pueden programar otros timers).
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	target := m.now
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			return
		}
		t.f()
	}
}

// Pending cuenta los timers no disparados ni cancelados.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (m *Manual) popDue(target time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.pending[:0]
	for _, t := range m.pending {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.pending = live

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due == m.pending[j].due {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].due < m.pending[j].due
	})

	if len(m.pending) == 0 || m.pending[0].due > target {
		return nil
	}
	t := m.pending[0]
	t.fired = true
	m.pending = m.pending[1:]
	return t
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
