// Package router mapea el fragmento de la URL a una de las dos páginas
// y mantiene el historial de navegación de la sesión.
package router

import (
	"strings"
	"time"

	"pet-manager/internal/ui/timer"
)

type Page string

const (
	Dashboard Page = "dashboard"
	ManagePet Page = "manage-pet"
)

// Pages en orden de navegación.
var Pages = []Page{Dashboard, ManagePet}

// Parse acepta "dashboard", "#dashboard", "/dashboard".
func Parse(fragment string) (Page, bool) {
	s := strings.TrimLeft(strings.TrimSpace(fragment), "#/")
	for _, p := range Pages {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func (p Page) Fragment() string { return "#" + string(p) }

// Normalize lleva "dashboard", "/dashboard" o "#dashboard" a "#dashboard".
// Vacío queda vacío.
func Normalize(fragment string) string {
	s := strings.TrimLeft(strings.TrimSpace(fragment), "#/")
	if s == "" {
		return ""
	}
	return "#" + s
}

// View es la parte de la vista que controla páginas y links de navegación.
type View interface {
	SetPageVisible(p Page, visible bool)
	SetActiveNav(p Page)
}

// Transitioner lo implementan las vistas que saben si tienen animación de
// salida. Si Transitions() es false, la página saliente se oculta en el acto.
type Transitioner interface {
	Transitions() bool
}

type Options struct {
	Scheduler timer.Scheduler
	// HideDelay deja terminar la transición de salida antes de ocultar.
	HideDelay time.Duration
	// OnEnter corre al entrar a cada página.
	OnEnter map[Page]func()
}

type Router struct {
	view    View
	sched   timer.Scheduler
	delay   time.Duration
	onEnter map[Page]func()

	history *History
	current Page
	hides   []timer.Timer
}

func New(view View, opts Options) *Router {
	sched := opts.Scheduler
	if sched == nil {
		sched = timer.Real{}
	}
	onEnter := opts.OnEnter
	if onEnter == nil {
		onEnter = map[Page]func(){}
	}
	return &Router{
		view:    view,
		sched:   sched,
		delay:   opts.HideDelay,
		onEnter: onEnter,
		history: NewHistory(),
	}
}

func (r *Router) Current() Page { return r.current }

func (r *Router) History() *History { return r.history }

// HandleLocation resuelve el fragmento actual (vacío o desconocido = dashboard).
// Se llama en la carga inicial, en back/forward y en cada click de navegación.
func (r *Router) HandleLocation(fragment string) Page {
	p, ok := Parse(fragment)
	if !ok {
		p = Dashboard
	}
	r.ShowPage(p)
	return p
}

// ShowPage activa p, programa el ocultamiento de las demás, actualiza el
// historial y el link activo, y corre el hook de entrada.
func (r *Router) ShowPage(p Page) {
	r.cancelHides()

	r.view.SetPageVisible(p, true)
	for _, other := range Pages {
		if other == p {
			continue
		}
		if !r.animated() {
			r.view.SetPageVisible(other, false)
			continue
		}
		other := other
		r.hides = append(r.hides, r.sched.AfterFunc(r.delay, func() {
			r.view.SetPageVisible(other, false)
		}))
	}

	r.history.Visit(p.Fragment())
	r.view.SetActiveNav(p)
	r.current = p

	if hook := r.onEnter[p]; hook != nil {
		hook()
	}
}

// Back/Forward emulan popstate: mueven el cursor del historial y
// vuelven a resolver la ubicación.
func (r *Router) Back() Page {
	if frag, ok := r.history.Back(); ok {
		return r.HandleLocation(frag)
	}
	return r.current
}

func (r *Router) Forward() Page {
	if frag, ok := r.history.Forward(); ok {
		return r.HandleLocation(frag)
	}
	return r.current
}

func (r *Router) animated() bool {
	if t, ok := r.view.(Transitioner); ok {
		return t.Transitions()
	}
	return true
}

func (r *Router) cancelHides() {
	for _, t := range r.hides {
		t.Stop()
	}
	r.hides = r.hides[:0]
}
