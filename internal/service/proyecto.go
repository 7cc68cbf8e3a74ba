// ABOUTME: ProyectoService for the project collection

package service

import (
	"context"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/httpx"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

const (
	proyectoPath = "/api/proyectos"
	proyectoKey  = "gidas_proyecto_lista_mock"
)

// ProyectoService manages the Proyecto collection.
type ProyectoService struct {
	remote *remoteCollection[model.Proyecto, *model.Proyecto]
	mock   *mockCollection[model.Proyecto, *model.Proyecto]
}

// NewProyectoService creates the service in the configured mode.
func NewProyectoService(cfg *config.Config, client *httpx.Client, st store.Store) *ProyectoService {
	s := &ProyectoService{}
	if cfg.Mode() == config.ModeRemote {
		// Updates go to /api/proyectos/{id}
		s.remote = &remoteCollection[model.Proyecto, *model.Proyecto]{client: client, path: proyectoPath, putByID: true}
	} else {
		s.mock = &mockCollection[model.Proyecto, *model.Proyecto]{store: st, key: proyectoKey, latency: cfg.Mock.Latency}
	}
	return s
}

// List returns projects in insertion order.
func (s *ProyectoService) List(ctx context.Context) ([]model.Proyecto, error) {
	if s.remote != nil {
		return s.remote.List(ctx, nil)
	}
	return s.mock.List(ctx)
}

// Upsert creates or fully replaces a project.
func (s *ProyectoService) Upsert(ctx context.Context, p *model.Proyecto) (*model.Proyecto, error) {
	if s.remote != nil {
		return s.remote.Upsert(ctx, p)
	}
	return s.mock.Upsert(ctx, p)
}

// Delete removes the record with the given id.
func (s *ProyectoService) Delete(ctx context.Context, id string) error {
	if s.remote != nil {
		return s.remote.Delete(ctx, id)
	}
	return s.mock.Delete(ctx, id)
}
