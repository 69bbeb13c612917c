package repository

import (
	"context"

	"supplychainx/internal/model"

	"gorm.io/gorm"
)

type RawMaterialRepository interface {
	Create(ctx context.Context, m *model.RawMaterial) error
	FindByID(ctx context.Context, id int64) (*model.RawMaterial, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.RawMaterial, error)
	List(ctx context.Context) ([]model.RawMaterial, error)
	ListBelowMinimum(ctx context.Context) ([]model.RawMaterial, error)
	CountLinkedSuppliers(ctx context.Context, materialID int64) (int64, error)
	Update(ctx context.Context, m *model.RawMaterial) error
	Delete(ctx context.Context, id int64) error
}

type rawMaterialRepo struct{ db *gorm.DB }

func NewRawMaterialRepository(db *gorm.DB) RawMaterialRepository { return &rawMaterialRepo{db: db} }

func (r *rawMaterialRepo) Create(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *rawMaterialRepo) FindByID(ctx context.Context, id int64) (*model.RawMaterial, error) {
	var m model.RawMaterial
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err, "raw material", id)
	}
	return &m, nil
}

func (r *rawMaterialRepo) FindByIDs(ctx context.Context, ids []int64) ([]model.RawMaterial, error) {
	var materials []model.RawMaterial
	if len(ids) == 0 {
		return materials, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&materials).Error
	return materials, err
}

func (r *rawMaterialRepo) List(ctx context.Context) ([]model.RawMaterial, error) {
	var materials []model.RawMaterial
	err := r.db.WithContext(ctx).Order("id").Find(&materials).Error
	return materials, err
}

func (r *rawMaterialRepo) ListBelowMinimum(ctx context.Context) ([]model.RawMaterial, error) {
	var materials []model.RawMaterial
	err := r.db.WithContext(ctx).
		Where("stock IS NOT NULL AND stock_min IS NOT NULL AND stock < stock_min").
		Order("id").
		Find(&materials).Error
	return materials, err
}

// CountLinkedSuppliers counts the distinct suppliers having at least one
// supply order that references the material.
func (r *rawMaterialRepo) CountLinkedSuppliers(ctx context.Context, materialID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("supply_orders").
		Joins("JOIN supply_order_materials ON supply_order_materials.supply_order_id = supply_orders.id").
		Where("supply_order_materials.raw_material_id = ?", materialID).
		Distinct("supply_orders.supplier_id").
		Count(&n).Error
	return n, err
}

func (r *rawMaterialRepo) Update(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *rawMaterialRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.RawMaterial{}, id).Error
}
