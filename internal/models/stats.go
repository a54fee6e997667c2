package models

import "github.com/shopspring/decimal"

type DailyStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	ServicesCompleted int             `json:"servicesCompleted"`
	AverageTicket     decimal.Decimal `json:"averageTicket"`
}
