package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

var errRemote = errors.New("remote unavailable")

var (
	haircut = models.Service{ID: 1, Name: "Corte", Price: decimal.NewFromInt(40)}
	beard   = models.Service{ID: 2, Name: "Barba", Price: decimal.NewFromInt(20)}
	brow    = models.Service{ID: 3, Name: "Sobrancelha", Price: decimal.NewFromInt(15)}
)

type fakeCatalog []models.Service

func (c fakeCatalog) Get(id uint) (models.Service, bool) {
	for _, s := range c {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

type fakeRecorder struct {
	mu    sync.Mutex
	fail  bool
	added []models.NewTransaction
}

func (f *fakeRecorder) Add(ctx context.Context, in models.NewTransaction) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.added = append(f.added, in)
	if f.fail {
		return nil, errRemote
	}
	return &models.Transaction{
		ID:            uint(len(f.added)),
		Date:          in.Date,
		ClientName:    in.ClientName,
		Service:       in.Service,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Value:         in.Value,
	}, nil
}

func (f *fakeRecorder) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.added)
}

type fakeCloser struct {
	mu     sync.Mutex
	fail   bool
	closed []uint
}

func (f *fakeCloser) SetStatus(ctx context.Context, id uint, status domain.Status) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = append(f.closed, id)
	if f.fail {
		return nil, errRemote
	}
	return &models.Appointment{ID: id, Status: string(status)}, nil
}

func (f *fakeCloser) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.closed)
}
