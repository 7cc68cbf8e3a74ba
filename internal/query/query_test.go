package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/service"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

// newTestQueries builds the query layer over zero-latency mock services.
func newTestQueries(t *testing.T, serverFilter bool) (*Queries, *service.Services) {
	t.Helper()
	cfg := config.Default()
	cfg.Mock.Latency = 0
	svcs := service.New(cfg, store.NewMockStore())
	return New(svcs, serverFilter), svcs
}

func seedPersonal(t *testing.T, svcs *service.Services, records ...model.Personal) {
	t.Helper()
	ctx := context.Background()
	for i := range records {
		_, err := svcs.Personal.Upsert(ctx, &records[i])
		require.NoError(t, err)
	}
}

func TestQuery_EmptyBeforeFirstResolution(t *testing.T) {
	qs, _ := newTestQueries(t, false)

	q := qs.Proyectos()
	assert.Empty(t, q.Last())
	assert.False(t, q.Loading())
	assert.False(t, q.Failed())
}

func TestQuery_GetCachesAcrossInstances(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	_, err := svcs.Proyectos.Upsert(ctx, &model.Proyecto{NombreProyecto: "Redes urbanas"})
	require.NoError(t, err)

	list, err := qs.Proyectos().Get(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// A write that bypasses the mutation layer stays invisible while the
	// cached entry is fresh.
	_, err = svcs.Proyectos.Upsert(ctx, &model.Proyecto{NombreProyecto: "Sensores"})
	require.NoError(t, err)

	list, err = qs.Proyectos().Get(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "fresh cache entry is shared by key, not by Query value")

	list, err = qs.Proyectos().Refetch(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMutation_InvalidatesFamilyOnSuccess(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	seedPersonal(t, svcs, model.Personal{NombreApellido: "Laura Paz", Tipo: model.TipoInvestigador})

	res, err := qs.Personal("").Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)

	mut := qs.MutatePersonal()
	err = mut.Do(ctx, func(ctx context.Context) error {
		p := model.Personal{NombreApellido: "Diego Sosa", Tipo: model.TipoBecario}
		p.SetTipo(model.TipoBecario)
		_, err := svcs.Personal.Upsert(ctx, &p)
		return err
	})
	require.NoError(t, err)
	assert.False(t, mut.Pending())

	res, err = qs.Personal("").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total, "read issued after the mutation observes the write")
}

func TestMutation_FailureKeepsCache(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	_, err := svcs.Financiamiento.Upsert(ctx, &model.Financiamiento{Denominacion: "PID UTN"})
	require.NoError(t, err)

	list, err := qs.Financiamientos().Get(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	boom := errors.New("boom")
	err = qs.MutateFinanciamientos().Do(ctx, func(ctx context.Context) error {
		_, err := svcs.Financiamiento.Upsert(ctx, &model.Financiamiento{Denominacion: "FONCYT"})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err = qs.Financiamientos().Get(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "failed mutation must not invalidate")
}

func TestPersonal_ClientFilterCountAndTotal(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	inv := model.Personal{NombreApellido: "Ana Ruiz"}
	inv.SetTipo(model.TipoInvestigador)
	bec := model.Personal{NombreApellido: "Pedro Gil"}
	bec.SetTipo(model.TipoBecario)
	prof := model.Personal{NombreApellido: "Mora Díaz"}
	prof.SetTipo(model.TipoProfesional)
	seedPersonal(t, svcs, inv, bec, prof)

	res, err := qs.Personal(model.TipoBecario).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 3, res.Total, "local filtering keeps the unfiltered total")
	require.Len(t, res.List, 1)
	assert.Equal(t, "Pedro Gil", res.List[0].NombreApellido)
}

func TestPersonal_ServerFilterSharesNoKeyWithUnfiltered(t *testing.T) {
	qs, svcs := newTestQueries(t, true)
	ctx := context.Background()

	inv := model.Personal{NombreApellido: "Ana Ruiz"}
	inv.SetTipo(model.TipoInvestigador)
	bec := model.Personal{NombreApellido: "Pedro Gil"}
	bec.SetTipo(model.TipoBecario)
	seedPersonal(t, svcs, inv, bec)

	res, err := qs.Personal(model.TipoInvestigador).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 1, res.Total, "server-filtered response is already narrowed")

	all, err := qs.Personal("").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total, "filtered and unfiltered lists cache under distinct keys")
}

func TestUctQuery_NilWhileAbsent(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	u, err := qs.Uct().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	err = qs.MutateUct().Do(ctx, func(ctx context.Context) error {
		_, err := svcs.Uct.Upsert(ctx, model.Uct{NombreSigla: "GIDAS"})
		return err
	})
	require.NoError(t, err)

	u, err = qs.Uct().Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "GIDAS", u.NombreSigla)
}

func TestInvestigadorIndex_DanglingReference(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	inv := model.Personal{ID: "inv-1", NombreApellido: "Ana Ruiz"}
	inv.SetTipo(model.TipoInvestigador)
	seedPersonal(t, svcs, inv)

	idx, err := qs.InvestigadorIndex(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Ana Ruiz", idx.Nombre("inv-1"))
	assert.Equal(t, NombreDesconocido, idx.Nombre("inv-gone"))
	assert.Equal(t, NombreDesconocido, idx.Nombre(""))
}

func TestQuery_FailureKeepsLastKnownValue(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	_, err := svcs.Proyectos.Upsert(ctx, &model.Proyecto{NombreProyecto: "Redes"})
	require.NoError(t, err)

	q := qs.Proyectos()
	list, err := q.Get(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	qs.Cache().Invalidate("proyectos/all")

	_, err = q.Get(canceled)
	require.Error(t, err)
	assert.True(t, q.Failed())
	assert.Len(t, q.Last(), 1, "stale data survives a failed refetch")

	list, err = q.Get(ctx)
	require.NoError(t, err)
	assert.False(t, q.Failed())
	assert.Len(t, list, 1)
}

func TestDocencia_ScopedAndUnscopedKeys(t *testing.T) {
	qs, svcs := newTestQueries(t, false)
	ctx := context.Background()

	_, err := svcs.Docencia.Upsert(ctx, &model.Docencia{DenominacionCatedra: "Redes", InvestigadorID: "inv-1"})
	require.NoError(t, err)
	_, err = svcs.Docencia.Upsert(ctx, &model.Docencia{DenominacionCatedra: "Sistemas", InvestigadorID: "inv-2"})
	require.NoError(t, err)

	all, err := qs.Docencia("").Get(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := qs.Docencia("inv-1").Get(ctx)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Redes", scoped[0].DenominacionCatedra)
}
