package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/domain/ledger"
	"github.com/BruksfildServices01/barber-console/internal/domain/pricelist"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

var errRemote = errors.New("remote unavailable")

// ----------------------------------------
// services
// ----------------------------------------

type fakeServiceRepo struct {
	rows   []models.Service
	nextID uint
	fail   bool
	calls  int
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	if f.fail {
		return nil, errRemote
	}
	return append([]models.Service(nil), f.rows...), nil
}

func (f *fakeServiceRepo) Insert(ctx context.Context, in models.NewService) (*models.Service, error) {
	f.calls++
	if f.fail {
		return nil, errRemote
	}
	f.nextID++
	s := models.Service{ID: f.nextID, Name: in.Name, Price: in.Price, CreatedAt: time.Now()}
	f.rows = append(f.rows, s)
	return &s, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, id uint, p pricelist.Patch) (*models.Service, error) {
	f.calls++
	if f.fail {
		return nil, errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			if p.Name != nil {
				f.rows[i].Name = *p.Name
			}
			if p.Price != nil {
				f.rows[i].Price = *p.Price
			}
			s := f.rows[i]
			return &s, nil
		}
	}
	return nil, errRemote
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uint) error {
	f.calls++
	if f.fail {
		return errRemote
	}
	return nil
}

// ----------------------------------------
// appointments
// ----------------------------------------

type fakeAppointmentRepo struct {
	rows   []models.Appointment
	nextID uint
	fail   bool
	calls  int
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	if f.fail {
		return nil, errRemote
	}
	return append([]models.Appointment(nil), f.rows...), nil
}

func (f *fakeAppointmentRepo) Insert(ctx context.Context, in models.NewAppointment, status domain.Status) (*models.Appointment, error) {
	f.calls++
	if f.fail {
		return nil, errRemote
	}
	f.nextID++
	a := models.Appointment{
		ID:         f.nextID,
		Date:       in.Date,
		Time:       in.Time,
		ClientName: in.ClientName,
		Service:    in.Service,
		Status:     string(status),
	}
	f.rows = append(f.rows, a)
	return &a, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, id uint, p domain.Patch) (*models.Appointment, error) {
	f.calls++
	if f.fail {
		return nil, errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		r := &f.rows[i]
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
	return nil, errRemote
}

// ----------------------------------------
// transactions
// ----------------------------------------

type fakeTransactionRepo struct {
	rows   []models.Transaction
	nextID uint
	fail   bool
}

func (f *fakeTransactionRepo) List(ctx context.Context) ([]models.Transaction, error) {
	if f.fail {
		return nil, errRemote
	}
	return append([]models.Transaction(nil), f.rows...), nil
}

func (f *fakeTransactionRepo) Insert(ctx context.Context, in models.NewTransaction) (*models.Transaction, error) {
	if f.fail {
		return nil, errRemote
	}
	f.nextID++
	t := models.Transaction{
		ID:            f.nextID,
		Date:          in.Date,
		ClientName:    in.ClientName,
		Service:       in.Service,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Value:         in.Value,
	}
	f.rows = append([]models.Transaction{t}, f.rows...)
	return &t, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, id uint, p ledger.Patch) (*models.Transaction, error) {
	if f.fail {
		return nil, errRemote
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			if p.Value != nil {
				f.rows[i].Value = *p.Value
			}
			if p.ClientName != nil {
				f.rows[i].ClientName = *p.ClientName
			}
			t := f.rows[i]
			return &t, nil
		}
	}
	return nil, errRemote
}
