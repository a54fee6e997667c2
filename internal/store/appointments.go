package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/audit"
	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

// AppointmentStore owns the in-memory appointment list. New bookings are
// appended, so after the first load the list is only roughly ordered.
type AppointmentStore struct {
	repo  domain.Repository
	audit *audit.Logger

	mu    sync.RWMutex
	items []models.Appointment
}

func NewAppointmentStore(repo domain.Repository, auditLog *audit.Logger) *AppointmentStore {
	return &AppointmentStore{repo: repo, audit: auditLog}
}

func (s *AppointmentStore) Load(ctx context.Context) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("table", "appointments").Msg("error fetching appointments")
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *AppointmentStore) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return []models.Appointment{}
	}
	return slices.Clone(s.items)
}

func (s *AppointmentStore) Get(id uint) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Appointment{}, false
}

// Add books a new appointment; it always starts Confirmado.
func (s *AppointmentStore) Add(ctx context.Context, in models.NewAppointment) (*models.Appointment, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Service = strings.TrimSpace(in.Service)
	if err := domain.ValidateNew(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, in, domain.InitialStatus())
	if err != nil {
		log.Error().Err(err).Str("table", "appointments").Msg("error adding appointment")
		return nil, fmt.Errorf("add appointment: %w", err)
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()

	s.audit.Log("appointment_created", "appointment", created.ID, map[string]any{
		"date": created.Date,
		"time": created.Time,
	})
	return created, nil
}

// Update writes the whole record. A status change must move forward.
func (s *AppointmentStore) Update(ctx context.Context, ap models.Appointment) (*models.Appointment, error) {
	current, ok := s.Get(ap.ID)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap.ClientName = strings.TrimSpace(ap.ClientName)
	ap.Service = strings.TrimSpace(ap.Service)
	if err := domain.ValidateNew(models.NewAppointment{
		Date:       ap.Date,
		Time:       ap.Time,
		ClientName: ap.ClientName,
		Service:    ap.Service,
	}); err != nil {
		return nil, err
	}

	status := domain.Status(ap.Status)
	if err := domain.CanTransition(domain.Status(current.Status), status); err != nil {
		return nil, err
	}

	return s.write(ctx, ap.ID, domain.Patch{
		Date:       &ap.Date,
		Time:       &ap.Time,
		ClientName: &ap.ClientName,
		Service:    &ap.Service,
		Status:     &status,
	}, "appointment_updated")
}

// SetStatus changes only the status field.
func (s *AppointmentStore) SetStatus(ctx context.Context, id uint, status domain.Status) (*models.Appointment, error) {
	current, ok := s.Get(id)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err := domain.Advance(&current, status); err != nil {
		return nil, err
	}

	return s.write(ctx, id, domain.Patch{Status: &status}, "appointment_status_changed")
}

func (s *AppointmentStore) write(ctx context.Context, id uint, patch domain.Patch, action string) (*models.Appointment, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.Error().Err(err).Str("table", "appointments").Uint("id", id).Msg("error updating appointment")
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
		}
	}
	s.mu.Unlock()

	s.audit.Log(action, "appointment", updated.ID, map[string]any{"status": updated.Status})
	return updated, nil
}
