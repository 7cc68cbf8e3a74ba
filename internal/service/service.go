// ABOUTME: Shared plumbing for the per-entity services
// ABOUTME: Generic remote (REST) and mock (key-value) collection helpers

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/httpx"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

// Services bundles one service per entity. All services operate in the same
// mode, decided once from the configuration.
type Services struct {
	Personal       *PersonalService
	Financiamiento *FinanciamientoService
	Proyectos      *ProyectoService
	Docencia       *DocenciaService
	Trabajos       *TrabajoReunionService
	Uct            *UctService
}

// New constructs the full service set. st may be nil in remote mode.
func New(cfg *config.Config, st store.Store) *Services {
	var client *httpx.Client
	if cfg.Mode() == config.ModeRemote {
		client = httpx.New(cfg.API.BaseURL)
	}

	return &Services{
		Personal:       NewPersonalService(cfg, client, st),
		Financiamiento: NewFinanciamientoService(cfg, client, st),
		Proyectos:      NewProyectoService(cfg, client, st),
		Docencia:       NewDocenciaService(cfg, client, st),
		Trabajos:       NewTrabajoReunionService(cfg, client, st),
		Uct:            NewUctService(cfg, client, st),
	}
}

// sleep waits the artificial mock latency, honoring context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newID returns a random UUID, or a timestamp-based id when the entropy
// source is unavailable.
func newID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return id.String()
}

// mockCollection persists a whole entity collection as one JSON array under
// a fixed key. Every operation is a full read-modify-write with no locking;
// concurrent writers race and the last write wins.
type mockCollection[T any, PT interface {
	*T
	model.Identifiable
}] struct {
	store   store.Store
	key     string
	latency time.Duration
}

func (c *mockCollection[T, PT]) read(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.key, err)
	}
	return list, nil
}

func (c *mockCollection[T, PT]) write(ctx context.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, data)
}

// List returns the collection in insertion order.
func (c *mockCollection[T, PT]) List(ctx context.Context) ([]T, error) {
	if err := sleep(ctx, c.latency); err != nil {
		return nil, err
	}
	return c.read(ctx)
}

// Upsert appends the record (assigning an id when empty) or replaces the
// record with the matching id in place. Full replace, no merge.
func (c *mockCollection[T, PT]) Upsert(ctx context.Context, item PT) (PT, error) {
	if err := sleep(ctx, c.latency); err != nil {
		return nil, err
	}

	list, err := c.read(ctx)
	if err != nil {
		return nil, err
	}

	if item.RecordID() == "" {
		item.AssignID(newID())
	}

	replaced := false
	for i := range list {
		if PT(&list[i]).RecordID() == item.RecordID() {
			list[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *item)
	}

	if err := c.write(ctx, list); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the record with the given id. Unknown ids are a no-op.
func (c *mockCollection[T, PT]) Delete(ctx context.Context, id string) error {
	if err := sleep(ctx, c.latency); err != nil {
		return err
	}

	list, err := c.read(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(list))
	for i := range list {
		if PT(&list[i]).RecordID() != id {
			kept = append(kept, list[i])
		}
	}
	return c.write(ctx, kept)
}

// remoteCollection delegates to the REST API through the shared transport
// helper. putByID controls whether updates go to path/{id} (projects,
// funding) or to the bare collection path (personnel, teaching, works).
type remoteCollection[T any, PT interface {
	*T
	model.Identifiable
}] struct {
	client  *httpx.Client
	path    string
	putByID bool
}

// List fetches the collection, optionally with query parameters. A 404 is
// treated as an empty collection.
func (r *remoteCollection[T, PT]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	err := r.client.Do(ctx, http.MethodGet, r.path, query, nil, &out)
	if errors.Is(err, httpx.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert POSTs new records (empty id) and PUTs existing ones.
func (r *remoteCollection[T, PT]) Upsert(ctx context.Context, item PT) (PT, error) {
	method, p := http.MethodPost, r.path
	if id := item.RecordID(); id != "" {
		method = http.MethodPut
		if r.putByID {
			p = r.path + "/" + url.PathEscape(id)
		}
	}

	var out T
	if err := r.client.Do(ctx, method, p, nil, item, &out); err != nil {
		return nil, err
	}
	if PT(&out).RecordID() == "" {
		// Empty success body; the submitted record is the result.
		return item, nil
	}
	return &out, nil
}

// Delete removes the record with the given id. A 404 is a no-op.
func (r *remoteCollection[T, PT]) Delete(ctx context.Context, id string) error {
	err := r.client.Do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, nil)
	if errors.Is(err, httpx.ErrNotFound) {
		return nil
	}
	return err
}
