package pricelist

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
)

// Validate requires a name and a non-negative price.
func Validate(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || price.IsNegative() {
		return httperr.ErrBusiness("invalid_service")
	}
	return nil
}
