package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/httperr"
)

func newQuickSale(rec *fakeRecorder) *QuickSale {
	catalog := fakeCatalog{haircut, beard, brow}
	return NewQuickSale(catalog, NewFinalize(rec, &fakeCloser{}, fixedClock()))
}

func TestQuickSaleRecordsSplit(t *testing.T) {
	rec := &fakeRecorder{}
	uc := newQuickSale(rec)

	tx, err := uc.Execute(context.Background(), QuickSaleInput{
		ClientName: "Ana",
		ServiceIDs: []uint{1, 2},
		Discount:   "10,00",
		Payments: []PaymentInput{
			{Method: payment.Pix, Amount: "30,00"},
			{Method: payment.Debit, Amount: "20,00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Corte, Barba", tx.Service)
	assert.Equal(t, "PIX, Débito", tx.PaymentMethod)
	assert.True(t, tx.Subtotal.Equal(dec("60")))
	assert.True(t, tx.Discount.Equal(dec("10")))
	assert.True(t, tx.Value.Equal(dec("50")))
}

func TestQuickSaleRejectsOverpaidSplit(t *testing.T) {
	rec := &fakeRecorder{}
	uc := newQuickSale(rec)

	_, err := uc.Execute(context.Background(), QuickSaleInput{
		ClientName: "Ana",
		ServiceIDs: []uint{1, 2},
		Discount:   "10,00",
		Payments: []PaymentInput{
			{Method: payment.Pix, Amount: "30,00"},
			{Method: payment.Credit, Amount: "30,00"},
		},
	})

	assert.ErrorIs(t, err, httperr.ErrBusiness("payment_mismatch"))
	assert.Zero(t, rec.calls())
}

func TestQuickSaleUnknownService(t *testing.T) {
	uc := newQuickSale(&fakeRecorder{})

	_, err := uc.Execute(context.Background(), QuickSaleInput{
		ClientName: "Ana",
		ServiceIDs: []uint{42},
		Payments:   []PaymentInput{{Method: payment.Pix, Amount: "0"}},
	})
	assert.ErrorIs(t, err, httperr.ErrBusiness("service_not_found"))
}

func TestQuickSaleRequiresPayments(t *testing.T) {
	uc := newQuickSale(&fakeRecorder{})

	_, err := uc.Execute(context.Background(), QuickSaleInput{
		ClientName: "Ana",
		ServiceIDs: []uint{1},
	})
	assert.ErrorIs(t, err, httperr.ErrBusiness("last_payment"))
}
