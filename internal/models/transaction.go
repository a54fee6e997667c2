package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded sale. Service and PaymentMethod hold ", " joined
// lists of names.
type Transaction struct {
	ID            uint            `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	ClientName    string          `json:"clientName"`
	Service       string          `json:"service"`
	PaymentMethod string          `json:"paymentMethod"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Value         decimal.Decimal `json:"value"`
	CreatedAt     time.Time       `json:"created_at"`
}

type NewTransaction struct {
	Date          string          `json:"date"`
	ClientName    string          `json:"clientName"`
	Service       string          `json:"service"`
	PaymentMethod string          `json:"paymentMethod"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Value         decimal.Decimal `json:"value"`
}
