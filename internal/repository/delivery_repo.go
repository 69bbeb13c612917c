package repository

import (
	"context"
	"errors"

	"supplychainx/internal/apperror"
	"supplychainx/internal/model"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d *model.Delivery) error
	FindByID(ctx context.Context, id int64) (*model.Delivery, error)
	// FindByOrderID returns (nil, nil) when the order has no delivery yet.
	FindByOrderID(ctx context.Context, orderID int64) (*model.Delivery, error)
	List(ctx context.Context) ([]model.Delivery, error)
}

type deliveryRepo struct{ db *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository { return &deliveryRepo{db: db} }

// Create inserts d. A second delivery for the same order is a Conflict.
func (r *deliveryRepo) Create(ctx context.Context, d *model.Delivery) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("order %d already has a delivery", d.OrderID)
	}
	return err
}

func (r *deliveryRepo) FindByID(ctx context.Context, id int64) (*model.Delivery, error) {
	var d model.Delivery
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, notFound(err, "delivery", id)
	}
	return &d, nil
}

func (r *deliveryRepo) FindByOrderID(ctx context.Context, orderID int64) (*model.Delivery, error) {
	var d model.Delivery
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deliveryRepo) List(ctx context.Context) ([]model.Delivery, error) {
	var deliveries []model.Delivery
	err := r.db.WithContext(ctx).Order("id").Find(&deliveries).Error
	return deliveries, err
}
