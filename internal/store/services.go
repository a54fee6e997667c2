package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/barber-console/internal/audit"
	"github.com/BruksfildServices01/barber-console/internal/domain/pricelist"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

// ServiceStore owns the in-memory price list, kept sorted by name.
type ServiceStore struct {
	repo  pricelist.Repository
	audit *audit.Logger

	mu       sync.RWMutex
	items    []models.Service
	collator *collate.Collator
}

func NewServiceStore(repo pricelist.Repository, auditLog *audit.Logger) *ServiceStore {
	return &ServiceStore{
		repo:     repo,
		audit:    auditLog,
		collator: collate.New(language.BrazilianPortuguese),
	}
}

// Load fetches the list once. A failure is logged and leaves the list empty.
func (s *ServiceStore) Load(ctx context.Context) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("table", "services").Msg("error fetching services")
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *ServiceStore) List() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return []models.Service{}
	}
	return slices.Clone(s.items)
}

func (s *ServiceStore) Get(id uint) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Service{}, false
}

func (s *ServiceStore) Add(ctx context.Context, in models.NewService) (*models.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := pricelist.Validate(in.Name, in.Price); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, in)
	if err != nil {
		log.Error().Err(err).Str("table", "services").Msg("error adding service")
		return nil, fmt.Errorf("add service: %w", err)
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.sortLocked()
	s.mu.Unlock()

	s.audit.Log("service_created", "service", created.ID, map[string]any{"name": created.Name})
	return created, nil
}

// Update writes every editable field of svc and replaces the local entry with
// the canonical row.
func (s *ServiceStore) Update(ctx context.Context, svc models.Service) (*models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if err := pricelist.Validate(svc.Name, svc.Price); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, svc.ID, pricelist.Patch{
		Name:  &svc.Name,
		Price: &svc.Price,
	})
	if err != nil {
		log.Error().Err(err).Str("table", "services").Uint("id", svc.ID).Msg("error updating service")
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
		}
	}
	s.mu.Unlock()

	s.audit.Log("service_updated", "service", updated.ID, nil)
	return updated, nil
}

func (s *ServiceStore) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("table", "services").Uint("id", id).Msg("error deleting service")
		return fmt.Errorf("delete service: %w", err)
	}

	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(it models.Service) bool { return it.ID == id })
	s.mu.Unlock()

	s.audit.Log("service_deleted", "service", id, nil)
	return nil
}

// sortLocked orders by name the way the console displays it. The collator
// is not safe for concurrent use; callers hold the write lock.
func (s *ServiceStore) sortLocked() {
	slices.SortStableFunc(s.items, func(a, b models.Service) int {
		return s.collator.CompareString(a.Name, b.Name)
	})
}
