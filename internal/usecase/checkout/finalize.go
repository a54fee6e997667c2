package checkout

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
)

type TransactionRecorder interface {
	Add(ctx context.Context, in models.NewTransaction) (*models.Transaction, error)
}

type AppointmentCloser interface {
	SetStatus(ctx context.Context, id uint, status domain.Status) (*models.Appointment, error)
}

// ======================================================
// USE CASE
// ======================================================

type Finalize struct {
	transactions TransactionRecorder
	appointments AppointmentCloser
	clock        timezone.Clock
}

func NewFinalize(
	transactions TransactionRecorder,
	appointments AppointmentCloser,
	clock timezone.Clock,
) *Finalize {
	return &Finalize{
		transactions: transactions,
		appointments: appointments,
		clock:        clock,
	}
}

type Result struct {
	Transaction *models.Transaction
	Appointment *models.Appointment
}

// ======================================================
// EXECUTE
// ======================================================

// Execute records the sale. For an appointment sale the appointment is also
// marked Atendido; both writes are always attempted and are not rolled back
// when only one of them fails.
func (uc *Finalize) Execute(ctx context.Context, d *Draft) (*Result, error) {

	// --------------------------------------------------
	// 1️⃣ Validações locais
	// --------------------------------------------------
	if err := d.ValidateSubmission(); err != nil {
		return nil, err
	}

	tx := d.Transaction(uc.clock.Today())

	// --------------------------------------------------
	// 2️⃣ Escritas remotas
	// --------------------------------------------------
	var (
		g   errgroup.Group
		res Result
	)

	g.Go(func() error {
		created, err := uc.transactions.Add(ctx, tx)
		res.Transaction = created
		return err
	})

	if d.Variant == VariantAppointment && d.Appointment != nil {
		id := d.Appointment.ID
		g.Go(func() error {
			updated, err := uc.appointments.SetStatus(ctx, id, domain.StatusAttended)
			res.Appointment = updated
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
