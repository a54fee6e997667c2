package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-console/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var rows []AppointmentRow
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("time ASC").
		Find(&rows).Error; err != nil {
		return nil, wrap("appointments", "list", err)
	}
	return mapRows[AppointmentRow, models.Appointment](rows), nil
}

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	in models.NewAppointment,
	status domain.Status,
) (*models.Appointment, error) {

	row := AppointmentRow{
		Date:       in.Date,
		Time:       in.Time,
		ClientName: in.ClientName,
		Service:    in.Service,
		Status:     string(status),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, wrap("appointments", "insert", err)
	}
	out := row.toModel()
	return &out, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	var row AppointmentRow
	if err := updateAndReload(ctx, r.db, &row, id, appointmentPatchColumns(patch)); err != nil {
		return nil, wrap("appointments", "update", err)
	}
	out := row.toModel()
	return &out, nil
}

func appointmentPatchColumns(p domain.Patch) map[string]any {
	cols := map[string]any{}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Time != nil {
		cols["time"] = *p.Time
	}
	if p.ClientName != nil {
		cols["clientname"] = *p.ClientName
	}
	if p.Service != nil {
		cols["service"] = *p.Service
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
