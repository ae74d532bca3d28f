// Package form mapea los campos del formulario a un pets.Draft y lleva el modo
// alta/edición.
package form

import (
	"context"
	"errors"
	"strconv"

	"pet-manager/internal/domain/pets"
)

var ErrNotFound = errors.New("pet not found")

// Fields es el contenido textual del formulario, tal como lo ve el usuario.
type Fields struct {
	Name    string
	Species string
	Age     string
}

// View es la parte de la vista que maneja el formulario.
type View interface {
	ReadForm() Fields
	WriteForm(f Fields)
	ClearForm()
	SetFormErrors(errs map[string]string)
	SetEditing(id int64, editing bool)
}

// Mode: Idle (alta) o Editing(id).
type Mode int

const (
	Idle Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "idle"
}

type Controller struct {
	repo    *pets.Repository
	view    View
	refresh func()

	mode      Mode
	editingID int64
}

// New crea el controller en Idle. refresh se llama después de cada mutación.
func New(repo *pets.Repository, view View, refresh func()) *Controller {
	if refresh == nil {
		refresh = func() {}
	}
	return &Controller{repo: repo, view: view, refresh: refresh}
}

// State devuelve el modo y el id en edición (0 en Idle).
func (c *Controller) State() (Mode, int64) {
	return c.mode, c.editingID
}

func (c *Controller) IsEditing() bool { return c.mode == Editing }

// StartEdit precarga el formulario con el registro id.
func (c *Controller) StartEdit(id int64) error {
	p, ok := c.repo.Find(id)
	if !ok {
		return ErrNotFound
	}

	c.mode = Editing
	c.editingID = id
	c.view.SetFormErrors(nil)
	c.view.WriteForm(Fields{
		Name:    p.Name,
		Species: p.Species,
		Age:     strconv.Itoa(p.Age),
	})
	c.view.SetEditing(id, true)
	return nil
}

// Submit valida y hace alta (Idle) o update (Editing). Si la validación falla
// el formulario y el modo quedan como estaban y se devuelve *pets.ValidationError.
func (c *Controller) Submit(ctx context.Context) (pets.Pet, error) {
	f := c.view.ReadForm()

	d, err := pets.ParseForm(f.Name, f.Species, f.Age)
	if err != nil {
		var verr *pets.ValidationError
		if errors.As(err, &verr) {
			c.view.SetFormErrors(verr.Fields)
		}
		return pets.Pet{}, err
	}

	var saved pets.Pet
	if c.mode == Editing {
		id := c.editingID
		found, err := c.repo.Update(ctx, id, d)
		if err != nil {
			return pets.Pet{}, err
		}
		if !found {
			// borrado mientras se editaba
			c.Reset()
			c.refresh()
			return pets.Pet{}, ErrNotFound
		}
		saved, _ = c.repo.Find(id)
	} else {
		saved, err = c.repo.Add(ctx, d)
		if err != nil {
			return pets.Pet{}, err
		}
	}

	c.Reset()
	c.refresh()
	return saved, nil
}

// Cancel descarta los cambios sin tocar el repositorio.
func (c *Controller) Cancel() {
	c.Reset()
}

// Deleted se llama cuando se borra id; si es el que está en edición, vuelve a Idle.
func (c *Controller) Deleted(id int64) {
	if c.mode == Editing && c.editingID == id {
		c.Reset()
	}
}

// Reset vuelve a Idle con el formulario vacío.
func (c *Controller) Reset() {
	prev := c.editingID
	c.mode = Idle
	c.editingID = 0
	c.view.ClearForm()
	c.view.SetFormErrors(nil)
	c.view.SetEditing(prev, false)
}
