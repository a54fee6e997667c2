package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

type Patch struct {
	Date          *string
	ClientName    *string
	Service       *string
	PaymentMethod *string
	Subtotal      *decimal.Decimal
	Discount      *decimal.Decimal
	Value         *decimal.Decimal
}

// Repository is the remote transactions table.
type Repository interface {
	// List returns transactions newest first.
	List(ctx context.Context) ([]models.Transaction, error)
	Insert(ctx context.Context, in models.NewTransaction) (*models.Transaction, error)
	Update(ctx context.Context, id uint, patch Patch) (*models.Transaction, error)
}
