package repository

import (
	"context"

	"supplychainx/internal/model"

	"gorm.io/gorm"
)

type ProductionOrderRepository interface {
	Create(ctx context.Context, o *model.ProductionOrder) error
	FindByID(ctx context.Context, id int64) (*model.ProductionOrder, error)
	List(ctx context.Context) ([]model.ProductionOrder, error)
	ListByStatus(ctx context.Context, status model.ProductionOrderStatus) ([]model.ProductionOrder, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	Update(ctx context.Context, o *model.ProductionOrder) error
	Delete(ctx context.Context, id int64) error
}

type productionOrderRepo struct{ db *gorm.DB }

func NewProductionOrderRepository(db *gorm.DB) ProductionOrderRepository {
	return &productionOrderRepo{db: db}
}

func (r *productionOrderRepo) Create(ctx context.Context, o *model.ProductionOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *productionOrderRepo) FindByID(ctx context.Context, id int64) (*model.ProductionOrder, error) {
	var o model.ProductionOrder
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, notFound(err, "production order", id)
	}
	return &o, nil
}

func (r *productionOrderRepo) List(ctx context.Context) ([]model.ProductionOrder, error) {
	var orders []model.ProductionOrder
	err := r.db.WithContext(ctx).Order("id").Find(&orders).Error
	return orders, err
}

func (r *productionOrderRepo) ListByStatus(ctx context.Context, status model.ProductionOrderStatus) ([]model.ProductionOrder, error) {
	var orders []model.ProductionOrder
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&orders).Error
	return orders, err
}

func (r *productionOrderRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductionOrder{}).Where("product_id = ?", productID).Count(&n).Error
	return n, err
}

func (r *productionOrderRepo) Update(ctx context.Context, o *model.ProductionOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *productionOrderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ProductionOrder{}, id).Error
}
