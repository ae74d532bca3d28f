// Package deletion modela el borrado en dos fases: primero la salida visual
// (PendingRemoval) y recién al vencer el timer, el borrado de datos (Removed).
package deletion

import (
	"sort"
	"sync"
	"time"

	"pet-manager/internal/ui/timer"
)

type Phase int

const (
	None Phase = iota
	PendingRemoval
	Removed
)

func (p Phase) String() string {
	switch p {
	case PendingRemoval:
		return "pending_removal"
	case Removed:
		return "removed"
	default:
		return "none"
	}
}

// Marker marca/desmarca un item como "saliendo" en la vista.
type Marker interface {
	MarkRemoving(id int64, removing bool)
}

type Remover struct {
	mu      sync.Mutex
	sched   timer.Scheduler
	delay   time.Duration
	marker  Marker
	commit  func(id int64)
	pending map[int64]timer.Timer
	removed map[int64]struct{}
}

// New: commit corre al vencer el delay y hace el borrado real.
func New(sched timer.Scheduler, delay time.Duration, marker Marker, commit func(id int64)) *Remover {
	if sched == nil {
		sched = timer.Real{}
	}
	return &Remover{
		sched:   sched,
		delay:   delay,
		marker:  marker,
		commit:  commit,
		pending: map[int64]timer.Timer{},
		removed: map[int64]struct{}{},
	}
}

// Request pasa id a PendingRemoval. Devuelve false si ya estaba pendiente.
func (r *Remover) Request(id int64) bool {
	r.mu.Lock()
	if _, busy := r.pending[id]; busy {
		r.mu.Unlock()
		return false
	}
	delete(r.removed, id)
	r.pending[id] = r.sched.AfterFunc(r.delay, func() { r.fire(id) })
	r.mu.Unlock()

	if r.marker != nil {
		r.marker.MarkRemoving(id, true)
	}
	return true
}

// Cancel aborta un borrado pendiente. false si ya se ejecutó o no existía.
func (r *Remover) Cancel(id int64) bool {
	r.mu.Lock()
	t, ok := r.pending[id]
	if !ok || !t.Stop() {
		r.mu.Unlock()
		return false
	}
	delete(r.pending, id)
	r.mu.Unlock()

	if r.marker != nil {
		r.marker.MarkRemoving(id, false)
	}
	return true
}

func (r *Remover) Phase(id int64) Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[id]; ok {
		return PendingRemoval
	}
	if _, ok := r.removed[id]; ok {
		return Removed
	}
	return None
}

// Pending devuelve los ids pendientes, ordenados.
func (r *Remover) Pending() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.pending))
	for id := range r.pending {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StopAll cancela todo lo pendiente (al cerrar la sesión).
func (r *Remover) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.pending {
		t.Stop()
		delete(r.pending, id)
	}
}

func (r *Remover) fire(id int64) {
	r.mu.Lock()
	if _, ok := r.pending[id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.pending, id)
	r.removed[id] = struct{}{}
	r.mu.Unlock()

	if r.marker != nil {
		r.marker.MarkRemoving(id, false)
	}
	if r.commit != nil {
		r.commit(id)
	}
}
