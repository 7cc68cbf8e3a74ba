// ABOUTME: TrabajoReunionService for conference/meeting contributions
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
	trabajosPath = "/api/trabajos-reunion"
	trabajosKey  = "gidas_trabajos_reunion_mock"
)

// TrabajoReunionService manages the TrabajoReunion collection.
type TrabajoReunionService struct {
	remote *remoteCollection[model.TrabajoReunion, *model.TrabajoReunion]
	mock   *mockCollection[model.TrabajoReunion, *model.TrabajoReunion]
}

// NewTrabajoReunionService creates the service in the configured mode.
func NewTrabajoReunionService(cfg *config.Config, client *httpx.Client, st store.Store) *TrabajoReunionService {
	s := &TrabajoReunionService{}
	if cfg.Mode() == config.ModeRemote {
		s.remote = &remoteCollection[model.TrabajoReunion, *model.TrabajoReunion]{client: client, path: trabajosPath}
	} else {
		s.mock = &mockCollection[model.TrabajoReunion, *model.TrabajoReunion]{store: st, key: trabajosKey, latency: cfg.Mock.Latency}
	}
	return s
}

// List returns contributions, optionally restricted to one researcher.
func (s *TrabajoReunionService) List(ctx context.Context, investigadorID string) ([]model.TrabajoReunion, error) {
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
	filtered := make([]model.TrabajoReunion, 0, len(list))
	for _, w := range list {
		if w.InvestigadorID == investigadorID {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// Upsert creates or fully replaces a contribution.
func (s *TrabajoReunionService) Upsert(ctx context.Context, w *model.TrabajoReunion) (*model.TrabajoReunion, error) {
	if s.remote != nil {
		return s.remote.Upsert(ctx, w)
	}
	return s.mock.Upsert(ctx, w)
}

// Delete removes the record with the given id.
func (s *TrabajoReunionService) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		return s.remote.Delete(ctx, id)
	}
	return s.mock.Delete(ctx, id)
}
