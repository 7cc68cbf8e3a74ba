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

func TestUctMock_AbsentThenUpsertThenDelete(t *testing.T) {
	svcs := newMockServices(t)
	ctx := context.Background()

	got, err := svcs.Uct.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "no record yet")

	u := model.Uct{
		FacultadRegional: "Facultad Regional Buenos Aires",
		NombreSigla:      "GIDAS",
		Director:         "Ana García",
	}
	saved, err := svcs.Uct.Upsert(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u, *saved)

	got, err = svcs.Uct.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "GIDAS", got.NombreSigla)

	// Upsert is a full replace.
	_, err = svcs.Uct.Upsert(ctx, model.Uct{FacultadRegional: "FRBA", NombreSigla: "GIDAS"})
	require.NoError(t, err)
	got, err = svcs.Uct.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Director)

	require.NoError(t, svcs.Uct.Delete(ctx))
	got, err = svcs.Uct.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting the absent singleton is a no-op.
	assert.NoError(t, svcs.Uct.Delete(ctx))
}

func TestUctRemote_GetAbsentOn404(t *testing.T) {
	svcs := newRemoteServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	got, err := svcs.Uct.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUctRemote_UpsertAlwaysPut(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path

		var u model.Uct
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		json.NewEncoder(w).Encode(u)
	}))
	defer srv.Close()

	cfg := &config.Config{API: config.APIConfig{BaseURL: srv.URL}}
	svcs := New(cfg, nil)

	saved, err := svcs.Uct.Upsert(context.Background(), model.Uct{NombreSigla: "GIDAS", FacultadRegional: "FRBA"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/uct", gotPath)
	assert.Equal(t, "GIDAS", saved.NombreSigla)
}
