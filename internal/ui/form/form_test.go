package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-manager/internal/adapters/storage/memory"
	"pet-manager/internal/domain/pets"
	"pet-manager/internal/platform/logger"
)

type testView struct {
	fields  Fields
	errs    map[string]string
	editing bool
	editID  int64
}

func (v *testView) ReadForm() Fields                    { return v.fields }
func (v *testView) WriteForm(f Fields)                  { v.fields = f }
func (v *testView) ClearForm()                          { v.fields = Fields{} }
func (v *testView) SetFormErrors(errs map[string]string) { v.errs = errs }
func (v *testView) SetEditing(id int64, editing bool)   { v.editID, v.editing = id, editing }

func setup(t *testing.T) (*Controller, *testView, *pets.Repository, *int) {
	t.Helper()
	repo := pets.NewRepository(context.Background(), pets.NewKVSnapshot(memory.NewKVStore(), logger.Nop()), nil)
	view := &testView{}
	refreshes := 0
	return New(repo, view, func() { refreshes++ }), view, repo, &refreshes
}

func TestSubmit_IdleCreates(t *testing.T) {
	c, view, repo, refreshes := setup(t)

	view.fields = Fields{Name: "Rex", Species: "dog", Age: "3"}
	p, err := c.Submit(context.Background())
	require.NoError(t, err)

	got, ok := repo.Find(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, Fields{}, view.fields, "form cleared")
	assert.Equal(t, 1, *refreshes)

	mode, _ := c.State()
	assert.Equal(t, Idle, mode)
}

func TestStartEdit_ThenSubmitUpdates(t *testing.T) {
	c, view, repo, _ := setup(t)
	p, _ := repo.Add(context.Background(), pets.NewDraft("Rex", "dog", 3))

	require.NoError(t, c.StartEdit(p.ID))
	mode, id := c.State()
	assert.Equal(t, Editing, mode)
	assert.Equal(t, p.ID, id)
	assert.Equal(t, Fields{Name: "Rex", Species: "dog", Age: "3"}, view.fields)
	assert.True(t, view.editing)

	view.fields.Age = "5"
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	got, _ := repo.Find(p.ID)
	assert.Equal(t, pets.Pet{ID: p.ID, Name: "Rex", Species: "dog", Age: 5}, got)
	assert.Len(t, repo.List(), 1, "edit must not create")
	assert.False(t, c.IsEditing())
	assert.False(t, view.editing)
}

func TestStartEdit_UnknownID(t *testing.T) {
	c, _, _, _ := setup(t)
	assert.ErrorIs(t, c.StartEdit(404), ErrNotFound)
	assert.False(t, c.IsEditing())
}

func TestCancel_DiscardsWithoutMutation(t *testing.T) {
	c, view, repo, refreshes := setup(t)
	p, _ := repo.Add(context.Background(), pets.NewDraft("Rex", "dog", 3))

	require.NoError(t, c.StartEdit(p.ID))
	view.fields.Name = "Changed"
	c.Cancel()

	got, _ := repo.Find(p.ID)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, Fields{}, view.fields)
	assert.False(t, c.IsEditing())
	assert.Equal(t, 0, *refreshes)
}

func TestDeleted_UnderEditResetsToIdle(t *testing.T) {
	c, view, repo, _ := setup(t)
	a, _ := repo.Add(context.Background(), pets.NewDraft("Rex", "dog", 3))
	b, _ := repo.Add(context.Background(), pets.NewDraft("Mia", "cat", 2))

	require.NoError(t, c.StartEdit(a.ID))

	c.Deleted(b.ID)
	assert.True(t, c.IsEditing(), "deleting another record keeps edit")

	repo.Remove(context.Background(), a.ID)
	c.Deleted(a.ID)
	assert.False(t, c.IsEditing())
	assert.Equal(t, Fields{}, view.fields)
}

func TestSubmit_InvalidAgeKeepsState(t *testing.T) {
	c, view, repo, refreshes := setup(t)
	p, _ := repo.Add(context.Background(), pets.NewDraft("Rex", "dog", 3))
	require.NoError(t, c.StartEdit(p.ID))

	view.fields.Age = "old"
	_, err := c.Submit(context.Background())

	var verr *pets.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, view.errs, "age")
	assert.True(t, c.IsEditing(), "still editing after invalid submit")
	assert.Equal(t, "old", view.fields.Age, "form keeps user input")
	assert.Equal(t, 0, *refreshes)

	got, _ := repo.Find(p.ID)
	assert.Equal(t, 3, got.Age)
}

func TestSubmit_EditTargetVanished(t *testing.T) {
	c, view, repo, _ := setup(t)
	p, _ := repo.Add(context.Background(), pets.NewDraft("Rex", "dog", 3))
	require.NoError(t, c.StartEdit(p.ID))

	repo.Remove(context.Background(), p.ID)
	view.fields.Age = "4"

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.IsEditing())
	assert.Empty(t, repo.List())
}
