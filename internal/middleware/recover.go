package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-manager/internal/platform/logger"
)

// Recover corta un panic en un handler, lo loguea con el request id y responde 500.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic in handler", map[string]any{
					"panic":      fmt.Sprint(rec),
					"request_id": chimw.GetReqID(r.Context()),
					"path":       r.URL.Path,
					"stack":      string(debug.Stack()),
				})
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
