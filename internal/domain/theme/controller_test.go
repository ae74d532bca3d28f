package theme

import (
	"context"
	"errors"
	"testing"

	"pet-manager/internal/platform/logger"
)

type testKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newTestKV() *testKV { return &testKV{data: map[string]string{}} }

func (s *testKV) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *testKV) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

type testIndicator struct{ last Theme }

func (i *testIndicator) SetThemeIndicator(t Theme) { i.last = t }

func TestResolveInitial_Precedence(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		stored string
		hint   OSHint
		want   Theme
	}{
		{"stored dark beats os light", "dark", OSHint{Theme: Light, Known: true}, Dark},
		{"stored light beats os dark", "light", OSHint{Theme: Dark, Known: true}, Light},
		{"no stored, os dark", "", OSHint{Theme: Dark, Known: true}, Dark},
		{"no stored, no os signal", "", OSHint{}, Light},
		{"garbage stored falls to os", "purple", OSHint{Theme: Dark, Known: true}, Dark},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kvs := newTestKV()
			if tc.stored != "" {
				kvs.data[StorageKey] = tc.stored
			}
			c := NewController(kvs, logger.Nop())
			if got := c.ResolveInitial(ctx, tc.hint); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
			if c.Current() != tc.want {
				t.Fatalf("Current not updated")
			}
		})
	}
}

func TestResolveInitial_ReadErrorUsesHint(t *testing.T) {
	kvs := newTestKV()
	kvs.getErr = errors.New("disabled")

	c := NewController(kvs, logger.Nop())
	if got := c.ResolveInitial(context.Background(), OSHint{Theme: Dark, Known: true}); got != Dark {
		t.Fatalf("expected dark from hint, got %s", got)
	}
}

func TestToggle_PersistsAndUpdatesIndicator(t *testing.T) {
	kvs := newTestKV()
	c := NewController(kvs, logger.Nop())
	ind := &testIndicator{}
	ctx := context.Background()

	c.ResolveInitial(ctx, OSHint{})

	if got := c.Toggle(ctx, ind); got != Dark {
		t.Fatalf("expected dark, got %s", got)
	}
	if kvs.data[StorageKey] != "dark" || ind.last != Dark {
		t.Fatalf("expected persisted+indicated dark, store=%q ind=%q", kvs.data[StorageKey], ind.last)
	}

	if got := c.Toggle(ctx, ind); got != Light {
		t.Fatalf("expected light, got %s", got)
	}
	if kvs.data[StorageKey] != "light" {
		t.Fatalf("expected persisted light")
	}
}

func TestToggle_WriteFailureIsSwallowed(t *testing.T) {
	kvs := newTestKV()
	kvs.setErr = errors.New("quota")
	c := NewController(kvs, logger.Nop())

	if got := c.Toggle(context.Background(), nil); got != Dark {
		t.Fatalf("expected in-memory toggle to dark, got %s", got)
	}
}

func TestHintFromHeader(t *testing.T) {
	if h := HintFromHeader(`"dark"`); !h.Known || h.Theme != Dark {
		t.Fatalf("expected dark hint, got %#v", h)
	}
	if h := HintFromHeader(""); h.Known {
		t.Fatalf("expected unknown hint")
	}
	if h := HintFromHeader("no-preference"); h.Known {
		t.Fatalf("expected unknown for no-preference")
	}
}

func TestRefine_AppliesLateHintUntilExplicit(t *testing.T) {
	kvs := newTestKV()
	c := NewController(kvs, logger.Nop())
	ctx := context.Background()

	if got := c.ResolveInitial(ctx, OSHint{}); got != Light {
		t.Fatalf("expected light without hint, got %s", got)
	}

	if got, changed := c.Refine(ctx, OSHint{}); got != Light || changed {
		t.Fatalf("unknown hint must not change theme, got %s changed=%v", got, changed)
	}

	got, changed := c.Refine(ctx, OSHint{Theme: Dark, Known: true})
	if got != Dark || !changed {
		t.Fatalf("expected late dark hint applied, got %s changed=%v", got, changed)
	}

	c.Toggle(ctx, nil)
	if got, changed := c.Refine(ctx, OSHint{Theme: Dark, Known: true}); got != Light || changed {
		t.Fatalf("explicit choice must win over hint, got %s changed=%v", got, changed)
	}
}

func TestRefine_StoredValueWins(t *testing.T) {
	kvs := newTestKV()
	kvs.data[StorageKey] = "light"
	c := NewController(kvs, logger.Nop())
	ctx := context.Background()

	c.ResolveInitial(ctx, OSHint{})
	if got, changed := c.Refine(ctx, OSHint{Theme: Dark, Known: true}); got != Light || changed {
		t.Fatalf("stored theme must win over hint, got %s changed=%v", got, changed)
	}
}
