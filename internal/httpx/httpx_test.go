package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/proyectos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","nombreProyecto":"Estudio"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	var out []map[string]any
	err := c.Do(context.Background(), http.MethodGet, "/api/proyectos", nil, nil, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Estudio", out[0]["nombreProyecto"])
}

func TestDo_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc", body["id"])
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Do(context.Background(), http.MethodPut, "/api/personal", nil, map[string]string{"id": "abc"}, nil)
	require.NoError(t, err)
}

func TestDo_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	out := map[string]any{"untouched": true}
	err := c.Do(context.Background(), http.MethodDelete, "/api/personal/1", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"untouched": true}, out)
}

func TestDo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Do(context.Background(), http.MethodGet, "/api/uct", nil, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDo_ErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"horasSemanales must be >= 0"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Do(context.Background(), http.MethodPost, "/api/personal", nil, map[string]string{}, nil)
	require.Error(t, err)

	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Unprocessable Entity", httpErr.StatusText)
	assert.Equal(t, map[string]any{"error": "horasSemanales must be >= 0"}, httpErr.Body)
}

func TestDo_ErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Do(context.Background(), http.MethodGet, "/api/proyectos", nil, nil, nil)

	var httpErr *Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Nil(t, httpErr.Body)
}

func TestDo_ToleratesEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out []string
	err := c.Do(context.Background(), http.MethodGet, "/api/docencia", nil, nil, &out)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDo_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "INVESTIGADOR", r.URL.Query().Get("tipo"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	q := map[string][]string{"tipo": {"INVESTIGADOR"}}
	err := c.Do(context.Background(), http.MethodGet, "/api/personal", q, nil, nil)
	require.NoError(t, err)
}
