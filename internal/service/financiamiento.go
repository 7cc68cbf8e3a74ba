// ABOUTME: FinanciamientoService for the funding-item collection

package service

import (
	"context"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/httpx"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

const (
	financiamientoPath = "/api/financiamientos"
	financiamientoKey  = "gidas_financiamiento_lista_mock"
)

// FinanciamientoService manages the Financiamiento collection.
type FinanciamientoService struct {
	remote *remoteCollection[model.Financiamiento, *model.Financiamiento]
	mock   *mockCollection[model.Financiamiento, *model.Financiamiento]
}

// NewFinanciamientoService creates the service in the configured mode.
func NewFinanciamientoService(cfg *config.Config, client *httpx.Client, st store.Store) *FinanciamientoService {
	s := &FinanciamientoService{}
	if cfg.Mode() == config.ModeRemote {
		// Updates go to /api/financiamientos/{id}
		s.remote = &remoteCollection[model.Financiamiento, *model.Financiamiento]{client: client, path: financiamientoPath, putByID: true}
	} else {
		s.mock = &mockCollection[model.Financiamiento, *model.Financiamiento]{store: st, key: financiamientoKey, latency: cfg.Mock.Latency}
	}
	return s
}

// List returns funding items in insertion order.
func (s *FinanciamientoService) List(ctx context.Context) ([]model.Financiamiento, error) {
	if s.remote != nil {
		return s.remote.List(ctx, nil)
	}
	return s.mock.List(ctx)
}

// Upsert creates or fully replaces a funding item.
func (s *FinanciamientoService) Upsert(ctx context.Context, f *model.Financiamiento) (*model.Financiamiento, error) {
	if s.remote != nil {
		return s.remote.Upsert(ctx, f)
	}
	return s.mock.Upsert(ctx, f)
}

// Delete removes the record with the given id.
func (s *FinanciamientoService) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		return s.remote.Delete(ctx, id)
	}
	return s.mock.Delete(ctx, id)
}
