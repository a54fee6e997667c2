package pricelist

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

type Patch struct {
	Name  *string
	Price *decimal.Decimal
}

// Repository is the remote services table.
type Repository interface {
	// List returns the price list ordered by name.
	List(ctx context.Context) ([]models.Service, error)
	Insert(ctx context.Context, in models.NewService) (*models.Service, error)
	Update(ctx context.Context, id uint, patch Patch) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
}
