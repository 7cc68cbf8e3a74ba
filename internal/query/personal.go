// ABOUTME: Personnel list query with transparent subtype filtering
// ABOUTME: Filters on the server when configured, locally otherwise

package query

import (
	"context"

	"github.com/gidas-utn/gidas-admin/internal/model"
)

// PersonalResult is the personnel view: the (possibly filtered) list, the
// filtered count and the unfiltered total.
type PersonalResult struct {
	List  []model.Personal
	Count int
	Total int
}

// PersonalQuery resolves the personnel list for an optional subtype filter.
// Whether the filter runs on the server (?tipo=...) or locally over the
// unfiltered list depends on configuration and is invisible to callers,
// which always receive an already-filtered sequence.
type PersonalQuery struct {
	q         *Query[[]model.Personal]
	tipo      model.PersonalType
	useServer bool
}

// Personal returns the personnel query for an optional subtype filter.
func (qs *Queries) Personal(tipo model.PersonalType) *PersonalQuery {
	useServer := tipo != "" && qs.serverFilter

	key := familyPersonal + "/all"
	fetchTipo := model.PersonalType("")
	if useServer {
		key = familyPersonal + "/" + string(tipo)
		fetchTipo = tipo
	}

	q := NewQuery(qs.cache, key, func(ctx context.Context) ([]model.Personal, error) {
		return qs.svcs.Personal.List(ctx, fetchTipo)
	})
	return &PersonalQuery{q: q, tipo: tipo, useServer: useServer}
}

// Get resolves the view. On the local-filtering path Total counts the
// unfiltered list; on the server path the raw response is already filtered
// and both counters match.
func (p *PersonalQuery) Get(ctx context.Context) (PersonalResult, error) {
	raw, err := p.q.Get(ctx)
	if err != nil {
		return PersonalResult{}, err
	}
	return p.view(raw), nil
}

// Refetch bypasses the cached entry and resolves the view again.
func (p *PersonalQuery) Refetch(ctx context.Context) (PersonalResult, error) {
	raw, err := p.q.Refetch(ctx)
	if err != nil {
		return PersonalResult{}, err
	}
	return p.view(raw), nil
}

// Loading reports whether a fetch is in flight.
func (p *PersonalQuery) Loading() bool { return p.q.Loading() }

// Failed reports whether the most recent fetch returned an error.
func (p *PersonalQuery) Failed() bool { return p.q.Failed() }

func (p *PersonalQuery) view(raw []model.Personal) PersonalResult {
	list := raw
	if p.tipo != "" && !p.useServer {
		list = make([]model.Personal, 0, len(raw))
		for _, m := range raw {
			if m.Tipo == p.tipo {
				list = append(list, m)
			}
		}
	}
	return PersonalResult{List: list, Count: len(list), Total: len(raw)}
}
