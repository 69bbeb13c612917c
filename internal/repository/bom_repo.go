package repository

import (
	"context"

	"supplychainx/internal/model"

	"gorm.io/gorm"
)

type BillOfMaterialRepository interface {
	Create(ctx context.Context, b *model.BillOfMaterial) error
	FindByID(ctx context.Context, id int64) (*model.BillOfMaterial, error)
	List(ctx context.Context) ([]model.BillOfMaterial, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.BillOfMaterial, error)
	CountByMaterial(ctx context.Context, materialID int64) (int64, error)
	Update(ctx context.Context, b *model.BillOfMaterial) error
	Delete(ctx context.Context, id int64) error
}

type bomRepo struct{ db *gorm.DB }

func NewBillOfMaterialRepository(db *gorm.DB) BillOfMaterialRepository { return &bomRepo{db: db} }

func (r *bomRepo) Create(ctx context.Context, b *model.BillOfMaterial) error {
	return r.db.WithContext(ctx).Omit("Material").Create(b).Error
}

func (r *bomRepo) FindByID(ctx context.Context, id int64) (*model.BillOfMaterial, error) {
	var b model.BillOfMaterial
	if err := r.db.WithContext(ctx).Preload("Material").First(&b, id).Error; err != nil {
		return nil, notFound(err, "bill of material", id)
	}
	return &b, nil
}

func (r *bomRepo) List(ctx context.Context) ([]model.BillOfMaterial, error) {
	var lines []model.BillOfMaterial
	err := r.db.WithContext(ctx).Preload("Material").Order("id").Find(&lines).Error
	return lines, err
}

// ListByProduct returns the product's BOM with Material preloaded.
func (r *bomRepo) ListByProduct(ctx context.Context, productID int64) ([]model.BillOfMaterial, error) {
	var lines []model.BillOfMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("product_id = ?", productID).
		Order("id").
		Find(&lines).Error
	return lines, err
}

func (r *bomRepo) CountByMaterial(ctx context.Context, materialID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BillOfMaterial{}).Where("material_id = ?", materialID).Count(&n).Error
	return n, err
}

func (r *bomRepo) Update(ctx context.Context, b *model.BillOfMaterial) error {
	return r.db.WithContext(ctx).Omit("Material").Save(b).Error
}

func (r *bomRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.BillOfMaterial{}, id).Error
}
