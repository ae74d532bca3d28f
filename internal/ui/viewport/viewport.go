// Package viewport es el límite entre la lógica de la app y lo que se muestra.
package viewport

import (
	"sort"
	"sync"

	"pet-manager/internal/domain/pets"
	"pet-manager/internal/domain/theme"
	"pet-manager/internal/ui/deletion"
	"pet-manager/internal/ui/form"
	"pet-manager/internal/ui/listview"
	"pet-manager/internal/ui/router"
)

// Port junta todo lo que la app necesita de la vista.
type Port interface {
	listview.Port
	form.View
	router.View
	theme.Indicator
	deletion.Marker
}

// Item es una fila de la lista tal como se dibuja.
type Item struct {
	pets.Pet
	Removing bool
}

// State es una copia inmutable de lo que hay en pantalla.
type State struct {
	Items []Item
	Count int
	Empty bool

	Form       form.Fields
	FormErrors map[string]string
	Editing    bool
	EditingID  int64

	Visible   map[router.Page]bool
	ActiveNav router.Page
	Theme     theme.Theme
}

// IsVisible es un helper para templates.
func (s State) IsVisible(p string) bool {
	return s.Visible[router.Page(p)]
}

// Snapshot implementa Port guardando el estado en memoria; la capa web lo
// lee con State() y lo dibuja en HTML. También sirve de fake en tests.
type Snapshot struct {
	mu sync.Mutex

	items    []pets.Pet
	removing map[int64]bool
	count    int
	empty    bool

	form       form.Fields
	formErrors map[string]string
	editing    bool
	editingID  int64

	visible   map[router.Page]bool
	activeNav router.Page
	theme     theme.Theme
}

var (
	_ Port                = (*Snapshot)(nil)
	_ router.Transitioner = (*Snapshot)(nil)
)

func NewSnapshot() *Snapshot {
	return &Snapshot{
		removing: map[int64]bool{},
		visible:  map[router.Page]bool{},
		theme:    theme.Light,
		empty:    true,
	}
}

func (s *Snapshot) RenderList(items []pets.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]pets.Pet(nil), items...)
}

func (s *Snapshot) ShowEmptyState(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.empty = empty
}

func (s *Snapshot) SetCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
}

func (s *Snapshot) ReadForm() form.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Snapshot) WriteForm(f form.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

func (s *Snapshot) ClearForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form.Fields{}
}

func (s *Snapshot) SetFormErrors(errs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(errs) == 0 {
		s.formErrors = nil
		return
	}
	s.formErrors = make(map[string]string, len(errs))
	for k, v := range errs {
		s.formErrors[k] = v
	}
}

func (s *Snapshot) SetEditing(id int64, editing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editing = editing
	if editing {
		s.editingID = id
	} else {
		s.editingID = 0
	}
}

// Transitions: el HTML del servidor no anima la salida de página.
func (s *Snapshot) Transitions() bool { return false }

func (s *Snapshot) SetPageVisible(p router.Page, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible[p] = visible
}

func (s *Snapshot) SetActiveNav(p router.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeNav = p
}

func (s *Snapshot) SetThemeIndicator(t theme.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

func (s *Snapshot) MarkRemoving(id int64, removing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if removing {
		s.removing[id] = true
		return
	}
	delete(s.removing, id)
}

func (s *Snapshot) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.items))
	for _, p := range s.items {
		items = append(items, Item{Pet: p, Removing: s.removing[p.ID]})
	}

	visible := make(map[router.Page]bool, len(s.visible))
	for k, v := range s.visible {
		visible[k] = v
	}

	var errs map[string]string
	if s.formErrors != nil {
		errs = make(map[string]string, len(s.formErrors))
		for k, v := range s.formErrors {
			errs[k] = v
		}
	}

	return State{
		Items:      items,
		Count:      s.count,
		Empty:      s.empty,
		Form:       s.form,
		FormErrors: errs,
		Editing:    s.editing,
		EditingID:  s.editingID,
		Visible:    visible,
		ActiveNav:  s.activeNav,
		Theme:      s.theme,
	}
}

// RemovingIDs devuelve los ids marcados como saliendo, ordenados.
func (s *Snapshot) RemovingIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, 0, len(s.removing))
	for id := range s.removing {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
