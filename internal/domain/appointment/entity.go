package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ===============================
// Domain Actions
// ===============================

// ValidateNew checks presence and shape of a booking request.
func ValidateNew(in models.NewAppointment) error {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.Service) == "" {
		return httperr.ErrBusiness("invalid_appointment")
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(TimeLayout, in.Time); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

// Advance moves ap to next, enforcing forward-only transitions.
func Advance(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}
