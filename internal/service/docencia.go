// ABOUTME: DocenciaService for teaching activities
// ABOUTME: Supports filtering by the owning researcher's id

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
	docenciaPath = "/api/docencia"
	docenciaKey  = "gidas_docencia_lista_mock"
)

// DocenciaService manages the Docencia collection.
type DocenciaService struct {
	remote *remoteCollection[model.Docencia, *model.Docencia]
	mock   *mockCollection[model.Docencia, *model.Docencia]
}

// NewDocenciaService creates the service in the configured mode.
func NewDocenciaService(cfg *config.Config, client *httpx.Client, st store.Store) *DocenciaService {
	s := &DocenciaService{}
	if cfg.Mode() == config.ModeRemote {
		s.remote = &remoteCollection[model.Docencia, *model.Docencia]{client: client, path: docenciaPath}
	} else {
		s.mock = &mockCollection[model.Docencia, *model.Docencia]{store: st, key: docenciaKey, latency: cfg.Mock.Latency}
	}
	return s
}

// List returns teaching activities, optionally restricted to one researcher.
func (s *DocenciaService) List(ctx context.Context, investigadorID string) ([]model.Docencia, error) {
	if s.remote != nil {
		var q url.Values
		if investigadorID != "" {
			q = url.Values{"investigadorId": {investigadorID}}
		}
		return s.remote.List(ctx, q)
	}

	list, err := s.mock.List(ctx)
	if err != nil || investigadorID == "" {
		return list, err
	}
	filtered := make([]model.Docencia, 0, len(list))
	for _, d := range list {
		if d.InvestigadorID == investigadorID {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// Upsert creates or fully replaces a teaching activity.
func (s *DocenciaService) Upsert(ctx context.Context, d *model.Docencia) (*model.Docencia, error) {
	if s.remote != nil {
		return s.remote.Upsert(ctx, d)
	}
	return s.mock.Upsert(ctx, d)
}

// Delete removes the record with the given id.
func (s *DocenciaService) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		return s.remote.Delete(ctx, id)
	}
	return s.mock.Delete(ctx, id)
}
