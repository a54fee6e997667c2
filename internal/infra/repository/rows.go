package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

// Row types mirror the remote tables. Column names are lowercase and
// flattened (clientname, paymentmethod); translation to the camel-cased
// models happens here and nowhere else.

type ServiceRow struct {
	ID        uint            `gorm:"column:id;primaryKey"`
	Name      string          `gorm:"column:name;size:100;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (ServiceRow) TableName() string { return "services" }

type AppointmentRow struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Date       string    `gorm:"column:date;size:10;not null;index"`
	Time       string    `gorm:"column:time;size:5;not null"`
	ClientName string    `gorm:"column:clientname;size:100;not null"`
	Service    string    `gorm:"column:service;size:255"`
	Status     string    `gorm:"column:status;size:20;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AppointmentRow) TableName() string { return "appointments" }

type TransactionRow struct {
	ID            uint            `gorm:"column:id;primaryKey"`
	Date          string          `gorm:"column:date;size:10;not null;index"`
	ClientName    string          `gorm:"column:clientname;size:100"`
	Service       string          `gorm:"column:service;size:255"`
	PaymentMethod string          `gorm:"column:paymentmethod;size:100"`
	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2)"`
	Discount      decimal.Decimal `gorm:"column:discount;type:numeric(10,2)"`
	Value         decimal.Decimal `gorm:"column:value;type:numeric(10,2)"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime;index"`
}

func (TransactionRow) TableName() string { return "transactions" }

// --------------------------------------------------
// row -> model
// --------------------------------------------------

func (r ServiceRow) toModel() models.Service {
	return models.Service{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		CreatedAt: r.CreatedAt,
	}
}

func (r AppointmentRow) toModel() models.Appointment {
	return models.Appointment{
		ID:         r.ID,
		Date:       r.Date,
		Time:       r.Time,
		ClientName: r.ClientName,
		Service:    r.Service,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}

func (r TransactionRow) toModel() models.Transaction {
	return models.Transaction{
		ID:            r.ID,
		Date:          r.Date,
		ClientName:    r.ClientName,
		Service:       r.Service,
		PaymentMethod: r.PaymentMethod,
		Subtotal:      r.Subtotal,
		Discount:      r.Discount,
		Value:         r.Value,
		CreatedAt:     r.CreatedAt,
	}
}

func mapRows[R interface{ toModel() M }, M any](rows []R) []M {
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out
}
