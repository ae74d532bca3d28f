package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-manager/internal/app"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionCookie guarda el id de sesión (una "pestaña" del lado servidor).
const SessionCookie = "sid"

// Session:
// - Si viene cookie sid de una sesión viva => la usa.
// - Si no, crea una sesión nueva y setea la cookie.
// - Header X-Session-ID sirve para clientes sin cookies (tests, curl).
func Session(sessions *app.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := sessionID(r); id != "" {
				if sess, ok := sessions.Get(id); ok {
					next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
					return
				}
			}

			sess := sessions.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := withSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (*app.Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*app.Session)
	return s, ok
}

func withSession(ctx context.Context, s *app.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func sessionID(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Session-ID"))
}
