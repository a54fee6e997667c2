package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-console/internal/domain/ledger"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) List(ctx context.Context) ([]models.Transaction, error) {
	var rows []TransactionRow
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, wrap("transactions", "list", err)
	}
	return mapRows[TransactionRow, models.Transaction](rows), nil
}

func (r *TransactionGormRepository) Insert(
	ctx context.Context,
	in models.NewTransaction,
) (*models.Transaction, error) {

	row := TransactionRow{
		Date:          in.Date,
		ClientName:    in.ClientName,
		Service:       in.Service,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		Value:         in.Value,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, wrap("transactions", "insert", err)
	}
	out := row.toModel()
	return &out, nil
}

func (r *TransactionGormRepository) Update(
	ctx context.Context,
	id uint,
	patch ledger.Patch,
) (*models.Transaction, error) {

	var row TransactionRow
	if err := updateAndReload(ctx, r.db, &row, id, transactionPatchColumns(patch)); err != nil {
		return nil, wrap("transactions", "update", err)
	}
	out := row.toModel()
	return &out, nil
}

func transactionPatchColumns(p ledger.Patch) map[string]any {
	cols := map[string]any{}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.ClientName != nil {
		cols["clientname"] = *p.ClientName
	}
	if p.Service != nil {
		cols["service"] = *p.Service
	}
	if p.PaymentMethod != nil {
		cols["paymentmethod"] = *p.PaymentMethod
	}
	if p.Subtotal != nil {
		cols["subtotal"] = *p.Subtotal
	}
	if p.Discount != nil {
		cols["discount"] = *p.Discount
	}
	if p.Value != nil {
		cols["value"] = *p.Value
	}
	return cols
}

// Compile-time check
var _ ledger.Repository = (*TransactionGormRepository)(nil)
