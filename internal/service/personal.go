// ABOUTME: PersonalService for the group-member collection
// ABOUTME: Supports optional subtype filtering on list

package service

import (
	"context"
	"net/url"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/httpx"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

const (
	personalPath = "/api/personal"
	personalKey  = "gidas_personal_lista_mock"
)

// PersonalService manages the Personal collection.
type PersonalService struct {
	remote *remoteCollection[model.Personal, *model.Personal]
	mock   *mockCollection[model.Personal, *model.Personal]
}

// NewPersonalService creates the service in the configured mode.
func NewPersonalService(cfg *config.Config, client *httpx.Client, st store.Store) *PersonalService {
	s := &PersonalService{}
	if cfg.Mode() == config.ModeRemote {
		s.remote = &remoteCollection[model.Personal, *model.Personal]{client: client, path: personalPath}
	} else {
		s.mock = &mockCollection[model.Personal, *model.Personal]{store: st, key: personalKey, latency: cfg.Mock.Latency}
	}
	return s
}

// List returns personnel in insertion order. A non-empty tipo restricts the
// result to that subtype: remote mode forwards it as ?tipo=..., mock mode
// applies the predicate over the persisted array.
func (s *PersonalService) List(ctx context.Context, tipo model.PersonalType) ([]model.Personal, error) {
	if s.remote != nil {
		var q url.Values
		if tipo != "" {
			q = url.Values{"tipo": {string(tipo)}}
		}
		return s.remote.List(ctx, q)
	}

	list, err := s.mock.List(ctx)
	if err != nil || tipo == "" {
		return list, err
	}
	filtered := make([]model.Personal, 0, len(list))
	for _, p := range list {
		if p.Tipo == tipo {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Upsert creates the record when its id is empty, otherwise replaces the
// stored record entirely.
func (s *PersonalService) Upsert(ctx context.Context, p *model.Personal) (*model.Personal, error) {
	if s.remote != nil {
		return s.remote.Upsert(ctx, p)
	}
	return s.mock.Upsert(ctx, p)
}

// Delete removes the record with the given id.
func (s *PersonalService) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		return s.remote.Delete(ctx, id)
	}
	return s.mock.Delete(ctx, id)
}
