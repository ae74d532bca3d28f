package app

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-manager/internal/ui/viewport"
)

// Session es una App con su viewport, identificada por un uuid (cookie).
type Session struct {
	ID   string
	App  *App
	View *viewport.Snapshot

	lastSeen time.Time
}

// Sessions mantiene una App por pestaña/cliente; todas comparten el mismo repositorio.
type Sessions struct {
	mu   sync.Mutex
	opts Options
	now  func() time.Time
	max  int
	byID map[string]*Session
}

const DefaultMaxSessions = 1000

func NewSessions(opts Options, max int) *Sessions {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Sessions{
		opts: opts,
		now:  time.Now,
		max:  max,
		byID: make(map[string]*Session),
	}
}

// Get devuelve la sesión y actualiza su lastSeen.
func (s *Sessions) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

// Create arma una sesión nueva. Si se supera el máximo, descarta las más viejas.
func (s *Sessions) Create() *Session {
	view := viewport.NewSnapshot()
	sess := &Session{
		ID:   uuid.NewString(),
		App:  New(s.opts, view),
		View: view,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.lastSeen = s.now()
	s.byID[sess.ID] = sess
	s.evictLocked()
	return sess
}

// Prune cierra las sesiones sin actividad desde hace más de idle.
func (s *Sessions) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	n := 0
	for id, sess := range s.byID {
		if sess.lastSeen.Before(cutoff) {
			sess.App.Close()
			delete(s.byID, id)
			n++
		}
	}
	return n
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *Sessions) evictLocked() {
	if len(s.byID) <= s.max {
		return
	}

	all := make([]*Session, 0, len(s.byID))
	for _, sess := range s.byID {
		all = append(all, sess)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].lastSeen.Before(all[j].lastSeen) })

	for _, sess := range all[:len(all)-s.max] {
		sess.App.Close()
		delete(s.byID, sess.ID)
	}
}
