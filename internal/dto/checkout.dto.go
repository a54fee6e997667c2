package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-console/internal/domain/payment"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/usecase/checkout"
)

// DraftDTO is an open sale with its derived totals, amounts rendered the way
// the console shows them ("50,00").
type DraftDTO struct {
	ID            uuid.UUID          `json:"id"`
	Variant       checkout.Variant   `json:"variant"`
	Step          checkout.Step      `json:"step"`
	ClientName    string             `json:"clientName"`
	AppointmentID *uint              `json:"appointmentId,omitempty"`
	Selected      []models.Service   `json:"selected"`
	Discount      string             `json:"discount"`
	Payments      []checkout.Payment `json:"payments"`
	Methods       []payment.Method   `json:"methods"`

	Subtotal      string `json:"subtotal"`
	DiscountValue string `json:"discountValue"`
	Total         string `json:"total"`
	Paid          string `json:"paid"`
	Balanced      bool   `json:"balanced"`
}

func FromDraft(d checkout.Draft) DraftDTO {
	out := DraftDTO{
		ID:            d.ID,
		Variant:       d.Variant,
		Step:          d.Step,
		ClientName:    d.ClientName,
		Selected:      d.Selected,
		Discount:      d.DiscountText,
		Payments:      d.Payments,
		Methods:       payment.Methods(),
		Subtotal:      checkout.FormatAmount(d.Subtotal()),
		DiscountValue: checkout.FormatAmount(d.Discount()),
		Total:         checkout.FormatAmount(d.Total()),
		Paid:          checkout.FormatAmount(d.PaidTotal()),
	}
	if out.Selected == nil {
		out.Selected = []models.Service{}
	}
	if d.Appointment != nil {
		id := d.Appointment.ID
		out.AppointmentID = &id
	}
	out.Balanced = d.Balanced()
	return out
}
