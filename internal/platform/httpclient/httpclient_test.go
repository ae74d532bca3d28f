package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_ParsesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":  "invalid input",
			"fields": map[string]string{"age": "must be between 0 and 200", "name": "is required"},
		})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	_, err = c.CreatePet(context.Background(), "", "dog", -1)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "invalid input", he.Message)
	assert.Equal(t, "is required", he.Fields["name"])
	assert.Equal(t, "status=400: invalid input (age must be between 0 and 200; name is required)", he.Error())
}

func TestDoJSON_PlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "theme must be light or dark", http.StatusBadRequest)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	_, err = c.SetTheme(context.Background(), "blue")
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Empty(t, he.Message)
	assert.Contains(t, he.Error(), "theme must be light or dark")
}

func TestUpdatePet_SendsOnlyPresentFields(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/pets/7", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(Pet{ID: 7, Name: "Rex", Species: "dog", Age: 5})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	age := 5
	p, err := c.UpdatePet(context.Background(), 7, PetInput{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"age": float64(5)}, got)
	assert.Equal(t, 5, p.Age)
}

func TestIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"pet not found"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)

	_, err = c.GetPet(context.Background(), 1)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestResolveURL_RequiresBase(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("/api/pets")
	assert.Error(t, err)
}
