// Package web sirve la UI como HTML renderizado en el servidor.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-manager/internal/app"
	"pet-manager/internal/domain/pets"
	"pet-manager/internal/domain/theme"
	"pet-manager/internal/middleware"
	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ui/form"
	"pet-manager/internal/ui/listview"
	"pet-manager/internal/ui/router"
	"pet-manager/internal/ui/viewport"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type pageData struct {
	Page    router.Page
	State   viewport.State
	Search  string
	Filter  string
	Species []string
}

// RegisterRoutes monta las páginas HTML. Requiere middleware.Session antes.
func RegisterRoutes(r chi.Router, log logger.Logger) {
	h := &handlers{log: log}

	r.Get("/", h.location)
	r.Get("/{page}", h.location)

	r.Post("/pets", h.submit)
	r.Post("/pets/{petID}/edit", h.edit)
	r.Post("/pets/{petID}/delete", h.delete)
	r.Post("/pets/{petID}/undo", h.undo)
	r.Post("/form/cancel", h.cancel)
	r.Post("/theme/toggle", h.toggleTheme)
	r.Post("/history/back", h.back)
	r.Post("/history/forward", h.forward)
}

type handlers struct {
	log logger.Logger
}

// location resuelve la página pedida (como handleLocation con el fragmento).
// Ruta desconocida => redirect a /dashboard.
func (h *handlers) location(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	requested := chi.URLParam(r, "page")
	hint := theme.HintFromHeader(r.Header.Get(theme.HintHeader))
	var p router.Page
	if !sess.App.Booted() {
		p = sess.App.Boot(r.Context(), hint, requested)
	} else {
		sess.App.ApplyOSHint(r.Context(), hint)
		p = sess.App.Navigate(requested)
	}

	if requested != "" && string(p) != requested {
		http.Redirect(w, r, "/"+string(p), http.StatusSeeOther)
		return
	}

	if p == router.Dashboard {
		q := r.URL.Query()
		if q.Has("q") || q.Has("species") {
			sess.App.Query(q.Get("q"), q.Get("species"))
		}
	}

	theme.AdvertiseHint(w.Header())
	h.render(w, sess, http.StatusOK)
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_, err := sess.App.SubmitForm(r.Context(), form.Fields{
		Name:    r.PostForm.Get("name"),
		Species: r.PostForm.Get("species"),
		Age:     r.PostForm.Get("age"),
	})
	switch {
	case err == nil:
		redirectToCurrent(w, r, sess.App)
	case errors.Is(err, pets.ErrInvalidInput):
		h.render(w, sess, http.StatusUnprocessableEntity)
	case errors.Is(err, form.ErrNotFound):
		redirectToCurrent(w, r, sess.App)
	default:
		h.log.Error("submit failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *handlers) edit(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := h.sessionAndPet(w, r)
	if !ok {
		return
	}
	if err := sess.App.StartEdit(id); err != nil {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := h.sessionAndPet(w, r)
	if !ok {
		return
	}
	sess.App.Delete(id)
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) undo(w http.ResponseWriter, r *http.Request) {
	sess, id, ok := h.sessionAndPet(w, r)
	if !ok {
		return
	}
	sess.App.UndoDelete(id)
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.App.CancelEdit()
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.App.ToggleTheme(r.Context())
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) back(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.App.Back()
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) forward(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.App.Forward()
	redirectToCurrent(w, r, sess.App)
}

func (h *handlers) render(w http.ResponseWriter, sess *app.Session, status int) {
	search, filter := sess.App.SearchTerm()
	if filter == "" {
		filter = listview.AllSpecies
	}
	data := pageData{
		Page:    sess.App.CurrentPage(),
		State:   sess.View.State(),
		Search:  search,
		Filter:  strings.ToLower(filter),
		Species: sess.App.Species(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		h.log.Error("template render failed", map[string]any{"err": err})
	}
}

func (h *handlers) session(w http.ResponseWriter, r *http.Request) (*app.Session, bool) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

func (h *handlers) sessionAndPet(w http.ResponseWriter, r *http.Request) (*app.Session, int64, bool) {
	sess, ok := h.session(w, r)
	if !ok {
		return nil, 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		http.Error(w, "pet id must be an integer", http.StatusBadRequest)
		return nil, 0, false
	}
	return sess, id, true
}

// Post/Redirect/Get hacia la página activa de la sesión.
func redirectToCurrent(w http.ResponseWriter, r *http.Request, a *app.App) {
	target := "/" + string(a.CurrentPage())
	if a.CurrentPage() == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
