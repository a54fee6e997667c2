package checkout

import (
	"context"

	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

// Catalog is the read side of the price list.
type Catalog interface {
	Get(id uint) (models.Service, bool)
}

// ======================================================
// INPUT
// ======================================================

type PaymentInput struct {
	Method payment.Method
	Amount string
}

type QuickSaleInput struct {
	ClientName string
	ServiceIDs []uint
	Discount   string
	Payments   []PaymentInput
}

// ======================================================
// USE CASE
// ======================================================

// QuickSale records a walk-in sale in one call. The payment amounts are
// recorded as given; no split rule is applied to them.
type QuickSale struct {
	catalog  Catalog
	finalize *Finalize
}

func NewQuickSale(catalog Catalog, finalize *Finalize) *QuickSale {
	return &QuickSale{catalog: catalog, finalize: finalize}
}

func (uc *QuickSale) Execute(ctx context.Context, in QuickSaleInput) (*models.Transaction, error) {
	d := NewWalkIn(in.ClientName)

	for _, id := range in.ServiceIDs {
		svc, ok := uc.catalog.Get(id)
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		if !d.IsSelected(id) {
			d.ToggleService(svc)
		}
	}
	d.SetDiscount(in.Discount)

	entries := make([]Payment, 0, len(in.Payments))
	for _, p := range in.Payments {
		entries = append(entries, Payment{Method: p.Method, Amount: p.Amount})
	}
	if err := d.SetPayments(entries); err != nil {
		return nil, err
	}

	res, err := uc.finalize.Execute(ctx, d)
	if err != nil {
		return nil, err
	}
	return res.Transaction, nil
}
