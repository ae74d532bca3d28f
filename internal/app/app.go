// Package app conecta repositorio, tema, formulario, router y borrado
// sobre un viewport.Port. Una App equivale a una pestaña del navegador.
package app

import (
	"context"
	"sync"
	"time"

	"pet-manager/internal/domain/pets"
	"pet-manager/internal/domain/theme"
	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ports/kv"
	"pet-manager/internal/ui/deletion"
	"pet-manager/internal/ui/form"
	"pet-manager/internal/ui/listview"
	"pet-manager/internal/ui/router"
	"pet-manager/internal/ui/timer"
	"pet-manager/internal/ui/viewport"
)

type Options struct {
	Repo  *pets.Repository
	Store kv.Store
	Log   logger.Logger

	Scheduler     timer.Scheduler
	RemovalDelay  time.Duration
	PageHideDelay time.Duration
}

type App struct {
	mu sync.Mutex

	repo    *pets.Repository
	port    viewport.Port
	log     logger.Logger
	theme   *theme.Controller
	form    *form.Controller
	router  *router.Router
	remover *deletion.Remover

	search string
	filter string
	booted bool
}

func New(opts Options, port viewport.Port) *App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = timer.Real{}
	}

	a := &App{
		repo:   opts.Repo,
		port:   port,
		log:    log,
		theme:  theme.NewController(opts.Store, log),
		filter: listview.AllSpecies,
	}

	a.form = form.New(opts.Repo, port, func() { a.renderLocked() })
	a.router = router.New(port, router.Options{
		Scheduler: sched,
		HideDelay: opts.PageHideDelay,
		OnEnter: map[router.Page]func(){
			router.Dashboard: func() { a.renderLocked() },
			router.ManagePet: func() {
				if !a.form.IsEditing() {
					a.form.Reset()
				}
			},
		},
	})
	a.remover = deletion.New(sched, opts.RemovalDelay, port, a.commitRemoval)

	return a
}

// Boot: tema inicial, ubicación inicial y primer render.
func (a *App) Boot(ctx context.Context, hint theme.OSHint, fragment string) router.Page {
	a.mu.Lock()
	defer a.mu.Unlock()

	t := a.theme.ResolveInitial(ctx, hint)
	a.port.SetThemeIndicator(t)

	fragment = router.Normalize(fragment)
	if fragment != "" {
		a.router.History().Push(fragment)
	}
	p := a.router.HandleLocation(fragment)
	a.renderLocked()
	a.booted = true
	return p
}

// ApplyOSHint re-evalúa la preferencia del SO en cargas posteriores; solo
// tiene efecto si no hay tema guardado ni elegido.
func (a *App) ApplyOSHint(ctx context.Context, hint theme.OSHint) theme.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, changed := a.theme.Refine(ctx, hint)
	if changed {
		a.port.SetThemeIndicator(t)
	}
	return t
}

func (a *App) Booted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.booted
}

// Navigate es un click en un link interno (o una URL escrita a mano).
func (a *App) Navigate(fragment string) router.Page {
	a.mu.Lock()
	defer a.mu.Unlock()

	fragment = router.Normalize(fragment)
	if fragment != "" {
		a.router.History().Push(fragment)
	}
	return a.router.HandleLocation(fragment)
}

func (a *App) Back() router.Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.Back()
}

func (a *App) Forward() router.Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.Forward()
}

func (a *App) CurrentPage() router.Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.Current()
}

func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	loc, _ := a.router.History().Location()
	return loc
}

// Search y Filter re-renderizan en cada cambio.
func (a *App) Search(term string) listview.View {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.search = term
	return a.renderLocked()
}

func (a *App) Filter(species string) listview.View {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filter = species
	return a.renderLocked()
}

// Query aplica búsqueda y filtro juntos (un GET con ambos parámetros).
func (a *App) Query(term, species string) listview.View {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.search = term
	a.filter = species
	return a.renderLocked()
}

func (a *App) SearchTerm() (string, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.search, a.filter
}

// Species lista las especies conocidas para el select del filtro.
func (a *App) Species() []string {
	return listview.Species(a.repo.List())
}

// SubmitForm guarda el formulario; si sale bien vuelve al dashboard.
func (a *App) SubmitForm(ctx context.Context, f form.Fields) (pets.Pet, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.port.WriteForm(f)

	p, err := a.form.Submit(ctx)
	if err != nil {
		a.log.Debug("form submit rejected", map[string]any{"err": err})
		return pets.Pet{}, err
	}

	a.log.Info("pet saved", map[string]any{"pet_id": p.ID})
	a.router.ShowPage(router.Dashboard)
	return p, nil
}

// StartEdit precarga el formulario y cambia a manage-pet.
func (a *App) StartEdit(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.form.StartEdit(id); err != nil {
		return err
	}
	a.router.ShowPage(router.ManagePet)
	return nil
}

func (a *App) CancelEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form.Cancel()
}

func (a *App) FormState() (form.Mode, int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.form.State()
}

// Delete arranca la salida visual; el borrado real ocurre al vencer el timer.
func (a *App) Delete(id int64) bool {
	return a.remover.Request(id)
}

// UndoDelete cancela un borrado todavía pendiente.
func (a *App) UndoDelete(id int64) bool {
	return a.remover.Cancel(id)
}

func (a *App) DeletionPhase(id int64) deletion.Phase {
	return a.remover.Phase(id)
}

func (a *App) ToggleTheme(ctx context.Context) theme.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme.Toggle(ctx, a.port)
}

func (a *App) Theme() theme.Theme {
	return a.theme.Current()
}

// Refresh vuelve a dibujar la lista (p.ej. otra sesión cambió datos).
func (a *App) Refresh() listview.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.renderLocked()
}

// Close cancela borrados pendientes.
func (a *App) Close() {
	a.remover.StopAll()
}

func (a *App) commitRemoval(id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.repo.Remove(context.Background(), id)
	a.form.Deleted(id)
	a.renderLocked()
	a.log.Info("pet removed", map[string]any{"pet_id": id})
}

// renderLocked reconstruye la lista completa. Requiere a.mu tomado.
func (a *App) renderLocked() listview.View {
	v := listview.Render(a.repo.List(), a.search, a.filter)
	listview.Draw(a.port, v)
	return v
}
