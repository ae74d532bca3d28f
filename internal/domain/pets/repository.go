package pets

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Repository es la colección en memoria (fuente de verdad para render).
// Cada mutación reescribe el snapshot completo (write-through).
type Repository struct {
	mu    sync.RWMutex
	items []Pet
	store Snapshotter
	ids   *IDGenerator
}

// NewRepository carga el snapshot inicial desde store.
func NewRepository(ctx context.Context, store Snapshotter, ids *IDGenerator) *Repository {
	if ids == nil {
		ids = NewIDGenerator()
	}
	items := store.Load(ctx)
	for _, p := range items {
		ids.Observe(p.ID)
	}
	return &Repository{
		items: items,
		store: store,
		ids:   ids,
	}
}

// Add asigna id, agrega al final y persiste.
func (r *Repository) Add(ctx context.Context, d Draft) (Pet, error) {
	d = normalize(d)
	if d.Name == nil || *d.Name == "" {
		return Pet{}, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := d.apply(Pet{ID: r.ids.Next()})
	r.items = append(r.items, p)
	r.store.Save(ctx, r.snapshotLocked())
	return p, nil
}

// Update mezcla d sobre el registro id. Devuelve false si no existe.
func (r *Repository) Update(ctx context.Context, id int64, d Draft) (bool, error) {
	d = normalize(d)
	if d.Name != nil && *d.Name == "" {
		return false, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.items[i] = d.apply(r.items[i])
	r.store.Save(ctx, r.snapshotLocked())
	return true, nil
}

// Remove filtra id y persiste. No-op si no existe.
func (r *Repository) Remove(ctx context.Context, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Pet, 0, len(r.items))
	for _, p := range r.items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.items = out
	r.store.Save(ctx, r.snapshotLocked())
}

func (r *Repository) Find(id int64) (Pet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return Pet{}, false
	}
	return r.items[i], true
}

// List devuelve una copia en orden de inserción.
func (r *Repository) List() []Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked()
}

func (r *Repository) indexLocked(id int64) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) snapshotLocked() []Pet {
	out := make([]Pet, len(r.items))
	copy(out, r.items)
	return out
}

func normalize(d Draft) Draft {
	if d.Name != nil {
		v := strings.TrimSpace(*d.Name)
		d.Name = &v
	}
	if d.Species != nil {
		v := strings.TrimSpace(*d.Species)
		d.Species = &v
	}
	return d
}
