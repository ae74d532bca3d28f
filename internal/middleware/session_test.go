package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-manager/internal/adapters/storage/memory"
	"pet-manager/internal/app"
	"pet-manager/internal/domain/pets"
	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ui/timer"
)

func newSessions() *app.Sessions {
	store := memory.NewKVStore()
	repo := pets.NewRepository(context.Background(), pets.NewKVSnapshot(store, logger.Nop()), nil)
	return app.NewSessions(app.Options{Repo: repo, Store: store, Scheduler: timer.NewManual()}, 10)
}

func TestSession_CreatesAndReuses(t *testing.T) {
	sessions := newSessions()

	var seen []string
	h := Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		if !ok {
			t.Fatalf("expected session in context")
		}
		seen = append(seen, s.ID)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie {
		t.Fatalf("expected sid cookie, got %#v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("existing session must not reissue cookie")
	}
	if len(seen) != 2 || seen[0] != seen[1] {
		t.Fatalf("expected same session twice, got %v", seen)
	}
}

func TestSession_UnknownIDGetsFreshSession(t *testing.T) {
	sessions := newSessions()
	h := Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-ID", "gone")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected new cookie for unknown session")
	}
	if sessions.Len() != 1 {
		t.Fatalf("expected one session, got %d", sessions.Len())
	}
}

func TestGetSession_Missing(t *testing.T) {
	if _, ok := GetSession(context.Background()); ok {
		t.Fatalf("expected no session")
	}
}
