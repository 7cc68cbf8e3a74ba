package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/model"
)

// newRemoteServices points the full service set at a test server.
func newRemoteServices(t *testing.T, handler http.Handler) *Services {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{API: config.APIConfig{BaseURL: srv.URL}}
	return New(cfg, nil)
}

func TestRemote_CreateUsesPost(t *testing.T) {
	var gotMethod, gotPath string
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path

		var p model.Personal
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "server-assigned"
		json.NewEncoder(w).Encode(p)
	}))

	saved, err := svcs.Personal.Upsert(context.Background(), &model.Personal{
		NombreApellido: "Ana García",
		Tipo:           model.TipoProfesional,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/personal", gotPath)
	assert.Equal(t, "server-assigned", saved.ID)
}

func TestRemote_UpdateUsesPut(t *testing.T) {
	var gotMethod, gotPath string
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))

	// Personnel updates PUT to the bare collection path.
	p := &model.Personal{ID: "p-1", NombreApellido: "Ana", Tipo: model.TipoProfesional}
	saved, err := svcs.Personal.Upsert(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/personal", gotPath)
	assert.Equal(t, p, saved, "empty body falls back to the submitted record")

	// Project updates PUT to /api/proyectos/{id}.
	_, err = svcs.Proyectos.Upsert(context.Background(), &model.Proyecto{ID: "pr-9", NombreProyecto: "X", TipoProyecto: "Investigación", CodigoProyecto: "C", FechaInicio: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/proyectos/pr-9", gotPath)
}

func TestRemote_DeleteByID(t *testing.T) {
	var gotMethod, gotPath string
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, svcs.Financiamiento.Delete(context.Background(), "f-3"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/financiamientos/f-3", gotPath)
}

func TestRemote_DeleteMissingIsNoOp(t *testing.T) {
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	assert.NoError(t, svcs.Trabajos.Delete(context.Background(), "missing"))
}

func TestRemote_ListForwardsTipoFilter(t *testing.T) {
	var gotTipo string
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTipo = r.URL.Query().Get("tipo")
		w.Write([]byte(`[]`))
	}))

	_, err := svcs.Personal.List(context.Background(), model.TipoInvestigador)
	require.NoError(t, err)
	assert.Equal(t, "INVESTIGADOR", gotTipo)

	_, err = svcs.Personal.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotTipo)
}

func TestRemote_ListNotFoundIsEmpty(t *testing.T) {
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	list, err := svcs.Docencia.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemote_TransportErrorPropagates(t *testing.T) {
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := svcs.Proyectos.List(context.Background())
	require.Error(t, err)
}
