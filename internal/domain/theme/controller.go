package theme

import (
	"context"
	"sync"

	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ports/kv"
)

// Indicator es el control visible que muestra el tema actual.
type Indicator interface {
	SetThemeIndicator(t Theme)
}

// Controller resuelve y alterna el tema, persistiéndolo en el kv.Store.
type Controller struct {
	mu      sync.Mutex
	store   kv.Store
	log     logger.Logger
	current Theme

	// explicit: hay un valor guardado o el usuario eligió uno.
	explicit bool
}

func NewController(store kv.Store, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		store:   store,
		log:     log.With(map[string]any{"key": StorageKey}),
		current: Light,
	}
}

// ResolveInitial: valor guardado -> preferencia del SO -> light.
func (c *Controller) ResolveInitial(ctx context.Context, hint OSHint) Theme {
	t := Light
	explicit := false
	raw, ok, err := c.store.Get(ctx, StorageKey)
	switch {
	case err != nil:
		c.log.Warn("theme read failed", map[string]any{"err": err})
		if hint.Known {
			t = hint.Theme
		}
	case ok:
		if stored, valid := Parse(raw); valid {
			t = stored
			explicit = true
			break
		}
		c.log.Warn("stored theme ignored", map[string]any{"value": raw})
		if hint.Known {
			t = hint.Theme
		}
	case hint.Known:
		t = hint.Theme
	}

	c.mu.Lock()
	c.current = t
	c.explicit = explicit
	c.mu.Unlock()
	return t
}

// Refine vuelve a resolver con un hint nuevo mientras no haya un tema
// guardado ni elegido. Devuelve el tema y si cambió.
func (c *Controller) Refine(ctx context.Context, hint OSHint) (Theme, bool) {
	c.mu.Lock()
	explicit, before := c.explicit, c.current
	c.mu.Unlock()

	if explicit || !hint.Known {
		return before, false
	}
	t := c.ResolveInitial(ctx, hint)
	return t, t != before
}

// Toggle alterna, persiste y actualiza el indicador (si hay).
func (c *Controller) Toggle(ctx context.Context, ind Indicator) Theme {
	c.mu.Lock()
	c.current = c.current.Toggle()
	c.explicit = true
	t := c.current
	c.mu.Unlock()

	c.persist(ctx, t)
	if ind != nil {
		ind.SetThemeIndicator(t)
	}
	return t
}

// Set fija un tema explícito (API).
func (c *Controller) Set(ctx context.Context, t Theme) {
	c.mu.Lock()
	c.current = t
	c.explicit = true
	c.mu.Unlock()

	c.persist(ctx, t)
}

func (c *Controller) Current() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) persist(ctx context.Context, t Theme) {
	if err := c.store.Set(ctx, StorageKey, string(t)); err != nil {
		c.log.Error("theme write failed", map[string]any{"err": err, "theme": string(t)})
	}
}
