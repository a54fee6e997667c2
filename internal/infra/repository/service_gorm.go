package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-console/internal/domain/pricelist"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var rows []ServiceRow
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, wrap("services", "list", err)
	}
	return mapRows[ServiceRow, models.Service](rows), nil
}

func (r *ServiceGormRepository) Insert(
	ctx context.Context,
	in models.NewService,
) (*models.Service, error) {

	row := ServiceRow{Name: in.Name, Price: in.Price}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, wrap("services", "insert", err)
	}
	out := row.toModel()
	return &out, nil
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	id uint,
	patch pricelist.Patch,
) (*models.Service, error) {

	cols := servicePatchColumns(patch)

	var row ServiceRow
	if err := updateAndReload(ctx, r.db, &row, id, cols); err != nil {
		return nil, wrap("services", "update", err)
	}
	out := row.toModel()
	return &out, nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&ServiceRow{}, id)
	if res.Error != nil {
		return wrap("services", "delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("services", "delete", ErrNotFound)
	}
	return nil
}

func servicePatchColumns(p pricelist.Patch) map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	return cols
}

// updateAndReload applies cols to the row with id and reads the canonical
// row back into dest.
func updateAndReload(ctx context.Context, db *gorm.DB, dest any, id uint, cols map[string]any) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			res := tx.Model(dest).Where("id = ?", id).Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return tx.First(dest, id).Error
	})
}

// Compile-time check
var _ pricelist.Repository = (*ServiceGormRepository)(nil)
