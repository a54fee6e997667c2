package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an entry of the price list.
type Service struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

type NewService struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
