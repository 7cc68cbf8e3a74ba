// ABOUTME: Entity-specific query constructors over the service set
// ABOUTME: One cache key family per entity, mirroring the REST paths

package query

import (
	"context"

	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/service"
)

// Cache key families. Filtered variants append "/<discriminant>".
const (
	familyPersonal        = "personal"
	familyProyectos       = "proyectos"
	familyFinanciamientos = "financiamientos"
	familyDocencia        = "docencia"
	familyTrabajos        = "trabajos-reunion"
	familyUct             = "uct"
)

// Queries wires the caching layer over the service set.
type Queries struct {
	cache        *Cache
	svcs         *service.Services
	serverFilter bool
}

// New creates the query layer. serverFilter opts the personnel list into
// server-side subtype filtering.
func New(svcs *service.Services, serverFilter bool) *Queries {
	return &Queries{
		cache:        NewCache(DefaultTTL),
		svcs:         svcs,
		serverFilter: serverFilter,
	}
}

// Cache exposes the underlying cache, mainly for tests.
func (qs *Queries) Cache() *Cache { return qs.cache }

// Proyectos returns the project list query.
func (qs *Queries) Proyectos() *Query[[]model.Proyecto] {
	return NewQuery(qs.cache, familyProyectos+"/all", func(ctx context.Context) ([]model.Proyecto, error) {
		return qs.svcs.Proyectos.List(ctx)
	})
}

// Financiamientos returns the funding-item list query.
func (qs *Queries) Financiamientos() *Query[[]model.Financiamiento] {
	return NewQuery(qs.cache, familyFinanciamientos+"/all", func(ctx context.Context) ([]model.Financiamiento, error) {
		return qs.svcs.Financiamiento.List(ctx)
	})
}

// Docencia returns the teaching-activity list query, optionally scoped to
// one researcher.
func (qs *Queries) Docencia(investigadorID string) *Query[[]model.Docencia] {
	key := familyDocencia + "/all"
	if investigadorID != "" {
		key = familyDocencia + "/" + investigadorID
	}
	return NewQuery(qs.cache, key, func(ctx context.Context) ([]model.Docencia, error) {
		return qs.svcs.Docencia.List(ctx, investigadorID)
	})
}

// Trabajos returns the contribution list query, optionally scoped to one
// researcher.
func (qs *Queries) Trabajos(investigadorID string) *Query[[]model.TrabajoReunion] {
	key := familyTrabajos + "/all"
	if investigadorID != "" {
		key = familyTrabajos + "/" + investigadorID
	}
	return NewQuery(qs.cache, key, func(ctx context.Context) ([]model.TrabajoReunion, error) {
		return qs.svcs.Trabajos.List(ctx, investigadorID)
	})
}

// Uct returns the singleton organizational-unit query. The value is nil
// while the record does not exist.
func (qs *Queries) Uct() *Query[*model.Uct] {
	return NewQuery(qs.cache, familyUct, func(ctx context.Context) (*model.Uct, error) {
		return qs.svcs.Uct.Get(ctx)
	})
}

// MutatePersonal returns the mutation handle for personnel writes.
func (qs *Queries) MutatePersonal() *Mutation { return NewMutation(qs.cache, familyPersonal) }

// MutateProyectos returns the mutation handle for project writes.
func (qs *Queries) MutateProyectos() *Mutation { return NewMutation(qs.cache, familyProyectos) }

// MutateFinanciamientos returns the mutation handle for funding writes.
func (qs *Queries) MutateFinanciamientos() *Mutation {
	return NewMutation(qs.cache, familyFinanciamientos)
}

// MutateDocencia returns the mutation handle for teaching-activity writes.
func (qs *Queries) MutateDocencia() *Mutation { return NewMutation(qs.cache, familyDocencia) }

// MutateTrabajos returns the mutation handle for contribution writes.
func (qs *Queries) MutateTrabajos() *Mutation { return NewMutation(qs.cache, familyTrabajos) }

// MutateUct returns the mutation handle for singleton writes.
func (qs *Queries) MutateUct() *Mutation { return NewMutation(qs.cache, familyUct) }
