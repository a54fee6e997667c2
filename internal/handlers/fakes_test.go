package handlers_test

import (
	"context"
	"errors"
	"sync"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/domain/ledger"
	"github.com/BruksfildServices01/barber-console/internal/domain/pricelist"
	"github.com/BruksfildServices01/barber-console/internal/infra/repository"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

func storageErr(table, op string, kind error) error {
	return &repository.StorageError{Table: table, Op: op, Kind: kind, Err: errors.New("connection refused")}
}

// ----------------------------------------
// services
// ----------------------------------------

type memServices struct {
	mu   sync.Mutex
	rows []models.Service
	next uint
	fail bool
}

func (m *memServices) List(ctx context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Service(nil), m.rows...), nil
}

func (m *memServices) Insert(ctx context.Context, in models.NewService) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, storageErr("services", "insert", repository.ErrStorage)
	}
	m.next++
	s := models.Service{ID: m.next, Name: in.Name, Price: in.Price}
	m.rows = append(m.rows, s)
	return &s, nil
}

func (m *memServices) Update(ctx context.Context, id uint, p pricelist.Patch) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Name = *p.Name
			m.rows[i].Price = *p.Price
			s := m.rows[i]
			return &s, nil
		}
	}
	return nil, storageErr("services", "update", repository.ErrNotFound)
}

func (m *memServices) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return storageErr("services", "delete", repository.ErrNotFound)
}

// ----------------------------------------
// appointments
// ----------------------------------------

type memAppointments struct {
	mu   sync.Mutex
	rows []models.Appointment
	next uint
}

func (m *memAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Appointment(nil), m.rows...), nil
}

func (m *memAppointments) Insert(ctx context.Context, in models.NewAppointment, status domain.Status) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	a := models.Appointment{
		ID:         m.next,
		Date:       in.Date,
		Time:       in.Time,
		ClientName: in.ClientName,
		Service:    in.Service,
		Status:     string(status),
	}
	m.rows = append(m.rows, a)
	return &a, nil
}

func (m *memAppointments) Update(ctx context.Context, id uint, p domain.Patch) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		r := &m.rows[i]
		if p.Date != nil {
			r.Date = *p.Date
		}
		if p.Time != nil {
			r.Time = *p.Time
		}
		if p.ClientName != nil {
			r.ClientName = *p.ClientName
		}
		if p.Service != nil {
			r.Service = *p.Service
		}
		if p.Status != nil {
			r.Status = string(*p.Status)
		}
		a := *r
		return &a, nil
	}
	return nil, storageErr("appointments", "update", repository.ErrNotFound)
}

// ----------------------------------------
// transactions
// ----------------------------------------

type memTransactions struct {
	mu   sync.Mutex
	rows []models.Transaction
	next uint
}

func (m *memTransactions) List(ctx context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Transaction(nil), m.rows...), nil
}

func (m *memTransactions) Insert(ctx context.Context, in models.NewTransaction) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	t := models.Transaction{
		ID:            m.next,
		Date:          in.Date,
		ClientName:    in.ClientName,
		Service:       in.Service,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Value:         in.Value,
	}
	m.rows = append([]models.Transaction{t}, m.rows...)
	return &t, nil
}

func (m *memTransactions) Update(ctx context.Context, id uint, p ledger.Patch) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Value = *p.Value
			t := m.rows[i]
			return &t, nil
		}
	}
	return nil, storageErr("transactions", "update", repository.ErrNotFound)
}
