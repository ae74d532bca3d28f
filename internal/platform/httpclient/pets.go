package httpclient

import (
	"context"
	"net/http"
	"strconv"
)

// Pet es la forma JSON de una mascota en /api/pets.
type Pet struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
}

// PetInput sirve para crear (todos los campos) y para PATCH (solo los no-nil).
type PetInput struct {
	Name    *string `json:"name,omitempty"`
	Species *string `json:"species,omitempty"`
	Age     *int    `json:"age,omitempty"`
}

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	if err := c.DoJSON(ctx, http.MethodGet, "/api/pets", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id int64) (Pet, error) {
	var out Pet
	err := c.DoJSON(ctx, http.MethodGet, "/api/pets/"+strconv.FormatInt(id, 10), nil, nil, &out)
	return out, err
}

func (c *Client) CreatePet(ctx context.Context, name, species string, age int) (Pet, error) {
	in := PetInput{Name: &name, Species: &species, Age: &age}
	var out Pet
	err := c.DoJSON(ctx, http.MethodPost, "/api/pets", nil, in, &out)
	return out, err
}

func (c *Client) UpdatePet(ctx context.Context, id int64, in PetInput) (Pet, error) {
	var out Pet
	err := c.DoJSON(ctx, http.MethodPatch, "/api/pets/"+strconv.FormatInt(id, 10), nil, in, &out)
	return out, err
}

func (c *Client) DeletePet(ctx context.Context, id int64) error {
	return c.DoJSON(ctx, http.MethodDelete, "/api/pets/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

type themePayload struct {
	Theme string `json:"theme"`
}

func (c *Client) GetTheme(ctx context.Context) (string, error) {
	var out themePayload
	err := c.DoJSON(ctx, http.MethodGet, "/api/theme", nil, nil, &out)
	return out.Theme, err
}

func (c *Client) SetTheme(ctx context.Context, t string) (string, error) {
	var out themePayload
	err := c.DoJSON(ctx, http.MethodPut, "/api/theme", nil, themePayload{Theme: t}, &out)
	return out.Theme, err
}
