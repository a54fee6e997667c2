package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

// Patch carries the fields to change; nil fields are left untouched.
type Patch struct {
	Date       *string
	Time       *string
	ClientName *string
	Service    *string
	Status     *Status
}

// Repository is the remote appointments table.
type Repository interface {
	// List returns every appointment ordered by date, then time.
	List(ctx context.Context) ([]models.Appointment, error)

	Insert(
		ctx context.Context,
		in models.NewAppointment,
		status Status,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		id uint,
		patch Patch,
	) (*models.Appointment, error)
}
