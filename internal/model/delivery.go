package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string { return "customers" }

// Order is a customer order for a single product.
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement"`
	CustomerID int64       `gorm:"not null;index"`
	ProductID  int64       `gorm:"not null;index"`
	Quantity   int64       `gorm:"not null"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Order) TableName() string { return "customer_orders" }

// Delivery ships exactly one Order; OrderID is unique.
type Delivery struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	OrderID      int64           `gorm:"not null;uniqueIndex"`
	Vehicle      string
	Driver       string
	Status       DeliveryStatus  `gorm:"type:varchar(20);not null"`
	DeliveryDate *time.Time
	Cost         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Delivery) TableName() string { return "deliveries" }
