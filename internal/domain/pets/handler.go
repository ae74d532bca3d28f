package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la API JSON de mascotas (para clientes no-HTML, p.ej. petctl).
func RegisterRoutes(r chi.Router, repo *Repository) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(repo))
		pr.Get("/", listPetsHandler(repo))

		pr.Get("/{petID}", getPetHandler(repo))
		pr.Patch("/{petID}", updatePetHandler(repo))
		pr.Delete("/{petID}", deletePetHandler(repo))
	})
}

type createPetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Age     *int    `json:"age"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// createPetHandler
// @Summary  Crear mascota
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    body body createPetRequest true "mascota"
// @Success  201 {object} Pet
// @Failure  400 {object} errorResponse
// @Router   /api/pets [post]
func createPetHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := decodeStrict(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
			return
		}

		d := NewDraft(req.Name, req.Species, req.Age)
		if err := CheckDraft(d); err != nil {
			writeValidationError(w, err)
			return
		}

		p, err := repo.Add(r.Context(), d)
		if err != nil {
			writeValidationError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler
// @Summary  Listar mascotas (orden de creación)
// @Tags     pets
// @Produce  json
// @Success  200 {array} Pet
// @Router   /api/pets [get]
func listPetsHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, repo.List())
	}
}

// getPetHandler
// @Summary  Obtener mascota
// @Tags     pets
// @Produce  json
// @Param    petID path int true "id"
// @Success  200 {object} Pet
// @Failure  404 {object} errorResponse
// @Router   /api/pets/{petID} [get]
func getPetHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, found := repo.Find(id)
		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// updatePetHandler
// @Summary  Actualizar mascota (merge parcial)
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID path int true "id"
// @Param    body body updatePetRequest true "campos a cambiar"
// @Success  200 {object} Pet
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /api/pets/{petID} [patch]
func updatePetHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if err := decodeStrict(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json: " + err.Error()})
			return
		}

		d := Draft{Name: req.Name, Species: req.Species, Age: req.Age}
		if err := CheckDraft(d); err != nil {
			writeValidationError(w, err)
			return
		}

		found, err := repo.Update(r.Context(), id, d)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
			return
		}

		p, _ := repo.Find(id)
		writeJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler
// @Summary  Borrar mascota (idempotente)
// @Tags     pets
// @Param    petID path int true "id"
// @Success  204
// @Router   /api/pets/{petID} [delete]
func deletePetHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		repo.Remove(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "pet id must be an integer"})
		return 0, false
	}
	return id, true
}

// decodeStrict rechaza campos desconocidos (p.ej. "nmae").
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input", Fields: verr.Fields})
		return
	}
	if errors.Is(err, ErrInvalidInput) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
