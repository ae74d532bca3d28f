package kv

import (
	"context"
	"errors"
)

// ErrUnavailable lo devuelven los adapters cuando el backend no responde
// (equivalente a un storage deshabilitado o lleno).
var ErrUnavailable = errors.New("kv store unavailable")

// Store es un key-value durable de strings.
// Get devuelve ok=false si la key no existe.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
