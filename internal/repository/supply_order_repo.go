package repository

import (
	"context"

	"supplychainx/internal/model"

	"gorm.io/gorm"
)

type SupplyOrderRepository interface {
	Create(ctx context.Context, o *model.SupplyOrder) error
	FindByID(ctx context.Context, id int64) (*model.SupplyOrder, error)
	List(ctx context.Context) ([]model.SupplyOrder, error)
	ListByStatus(ctx context.Context, status model.SupplyOrderStatus) ([]model.SupplyOrder, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]model.SupplyOrder, error)
	Update(ctx context.Context, o *model.SupplyOrder) error
	Delete(ctx context.Context, id int64) error
}

type supplyOrderRepo struct{ db *gorm.DB }

func NewSupplyOrderRepository(db *gorm.DB) SupplyOrderRepository { return &supplyOrderRepo{db: db} }

// Create inserts the order and its join rows; materials must already exist.
func (r *supplyOrderRepo) Create(ctx context.Context, o *model.SupplyOrder) error {
	return r.db.WithContext(ctx).Omit("Materials.*").Create(o).Error
}

func (r *supplyOrderRepo) FindByID(ctx context.Context, id int64) (*model.SupplyOrder, error) {
	var o model.SupplyOrder
	if err := r.db.WithContext(ctx).Preload("Materials").First(&o, id).Error; err != nil {
		return nil, notFound(err, "supply order", id)
	}
	return &o, nil
}

func (r *supplyOrderRepo) List(ctx context.Context) ([]model.SupplyOrder, error) {
	var orders []model.SupplyOrder
	err := r.db.WithContext(ctx).Preload("Materials").Order("id").Find(&orders).Error
	return orders, err
}

func (r *supplyOrderRepo) ListByStatus(ctx context.Context, status model.SupplyOrderStatus) ([]model.SupplyOrder, error) {
	var orders []model.SupplyOrder
	err := r.db.WithContext(ctx).Preload("Materials").Where("status = ?", status).Order("id").Find(&orders).Error
	return orders, err
}

func (r *supplyOrderRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]model.SupplyOrder, error) {
	var orders []model.SupplyOrder
	err := r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Order("id").Find(&orders).Error
	return orders, err
}

// Update saves scalar fields and replaces the material list wholesale.
func (r *supplyOrderRepo) Update(ctx context.Context, o *model.SupplyOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Materials").Save(o).Error; err != nil {
			return err
		}
		if len(o.Materials) == 0 {
			return tx.Model(o).Association("Materials").Clear()
		}
		return tx.Model(o).Association("Materials").Replace(o.Materials)
	})
}

func (r *supplyOrderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o := &model.SupplyOrder{ID: id}
		if err := tx.Model(o).Association("Materials").Clear(); err != nil {
			return err
		}
		return tx.Delete(o).Error
	})
}
