// ABOUTME: UctService for the singleton organizational-unit record
// ABOUTME: Get/Upsert/Delete with absent-value semantics, no id, no list

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gidas-utn/gidas-admin/internal/config"
	"github.com/gidas-utn/gidas-admin/internal/httpx"
	"github.com/gidas-utn/gidas-admin/internal/model"
	"github.com/gidas-utn/gidas-admin/internal/store"
)

const (
	uctPath = "/api/uct"
	uctKey  = "gidas_uct_mock"
)

// UctService manages the singleton Uct record. There is no list operation;
// the record is created or replaced via PUT and may be absent.
type UctService struct {
	client  *httpx.Client
	store   store.Store
	latency time.Duration
	remote  bool
}

// NewUctService creates the service in the configured mode.
func NewUctService(cfg *config.Config, client *httpx.Client, st store.Store) *UctService {
	if cfg.Mode() == config.ModeRemote {
		return &UctService{client: client, remote: true}
	}
	return &UctService{store: st, latency: cfg.Mock.Latency}
}

// Get returns the record, or (nil, nil) when it does not exist yet.
func (s *UctService) Get(ctx context.Context) (*model.Uct, error) {
	if s.remote {
		var u model.Uct
		err := s.client.Do(ctx, http.MethodGet, uctPath, nil, nil, &u)
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &u, nil
	}

	if err := sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	raw, err := s.store.Get(ctx, uctKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u model.Uct
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", uctKey, err)
	}
	return &u, nil
}

// Upsert creates or fully replaces the record.
func (s *UctService) Upsert(ctx context.Context, u model.Uct) (*model.Uct, error) {
	if s.remote {
		var out model.Uct
		if err := s.client.Do(ctx, http.MethodPut, uctPath, nil, u, &out); err != nil {
			return nil, err
		}
		if out == (model.Uct{}) {
			out = u
		}
		return &out, nil
	}

	if err := sleep(ctx, s.latency); err != nil {
		return nil, err
	}
	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", uctKey, err)
	}
	if err := s.store.Put(ctx, uctKey, data); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete clears the record. Deleting an absent record is a no-op.
func (s *UctService) Delete(ctx context.Context) error {
	if s.remote {
		err := s.client.Do(ctx, http.MethodDelete, uctPath, nil, nil, nil)
		if errors.Is(err, httpx.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := sleep(ctx, s.latency); err != nil {
		return err
	}
	return s.store.Delete(ctx, uctKey)
}
