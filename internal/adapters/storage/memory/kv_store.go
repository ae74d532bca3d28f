package memory

import (
	"context"
	"sync"

	"pet-manager/internal/ports/kv"
)

// KVStore es el backend por defecto en modo dev: vive lo que vive el proceso.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

var _ kv.Store = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
