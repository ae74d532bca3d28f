package pets

import (
	"context"
	"encoding/json"

	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ports/kv"
)

// StorageKey es la key del snapshot de mascotas en el kv.Store.
const StorageKey = "pets"

// Snapshotter persiste la colección completa.
// Load nunca falla: ante datos ausentes o corruptos devuelve vacío.
// Save nunca falla hacia arriba: los errores se loguean y se tragan.
type Snapshotter interface {
	Load(ctx context.Context) []Pet
	Save(ctx context.Context, items []Pet)
}

type KVSnapshot struct {
	store kv.Store
	log   logger.Logger
}

func NewKVSnapshot(store kv.Store, log logger.Logger) *KVSnapshot {
	if log == nil {
		log = logger.Nop()
	}
	return &KVSnapshot{
		store: store,
		log:   log.With(map[string]any{"key": StorageKey}),
	}
}

func (s *KVSnapshot) Load(ctx context.Context) []Pet {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn("pets snapshot read failed, starting empty", map[string]any{"err": err})
		return []Pet{}
	}
	if !ok || raw == "" {
		return []Pet{}
	}

	var items []Pet
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("pets snapshot corrupt, starting empty", map[string]any{"err": err})
		return []Pet{}
	}
	if items == nil {
		items = []Pet{}
	}
	return items
}

func (s *KVSnapshot) Save(ctx context.Context, items []Pet) {
	if items == nil {
		items = []Pet{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.log.Error("pets snapshot encode failed", map[string]any{"err": err})
		return
	}
	if err := s.store.Set(ctx, StorageKey, string(b)); err != nil {
		// sin retry: memoria y storage quedan divergentes
		s.log.Error("pets snapshot write failed", map[string]any{"err": err, "count": len(items)})
	}
}
