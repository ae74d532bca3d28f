package theme

import (
	"encoding/json"
	"net/http"

	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ports/kv"

	"github.com/go-chi/chi/v5"
)

// HintHeader es el client hint con la preferencia de color del SO.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// AdvertiseHint pide el hint al navegador. Critical-CH hace que reintente
// la primera carga ya con el hint puesto.
func AdvertiseHint(h http.Header) {
	h.Set("Accept-CH", HintHeader)
	h.Set("Critical-CH", HintHeader)
	h.Add("Vary", HintHeader)
}

func RegisterRoutes(r chi.Router, store kv.Store, log logger.Logger) {
	r.Get("/theme", getThemeHandler(store, log))
	r.Put("/theme", putThemeHandler(store, log))
}

type themeResponse struct {
	Theme Theme `json:"theme"`
}

type putThemeRequest struct {
	Theme string `json:"theme"`
}

// getThemeHandler
// @Summary  Tema efectivo (guardado, SO o light)
// @Tags     theme
// @Produce  json
// @Success  200 {object} themeResponse
// @Router   /api/theme [get]
func getThemeHandler(store kv.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := NewController(store, log)
		t := c.ResolveInitial(r.Context(), HintFromHeader(r.Header.Get(HintHeader)))

		AdvertiseHint(w.Header())
		writeJSON(w, http.StatusOK, themeResponse{Theme: t})
	}
}

// putThemeHandler
// @Summary  Guardar tema
// @Tags     theme
// @Accept   json
// @Produce  json
// @Param    body body putThemeRequest true "light|dark"
// @Success  200 {object} themeResponse
// @Failure  400 {string} string
// @Router   /api/theme [put]
func putThemeHandler(store kv.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req putThemeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		t, ok := Parse(req.Theme)
		if !ok {
			http.Error(w, "theme must be light or dark", http.StatusBadRequest)
			return
		}

		NewController(store, log).Set(r.Context(), t)
		writeJSON(w, http.StatusOK, themeResponse{Theme: t})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
