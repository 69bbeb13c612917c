package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a manufactured item. ProductionTime is per unit.
type Product struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"not null"`
	ProductionTime int64           `gorm:"not null"`
	Cost           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock          int64           `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Product) TableName() string { return "products" }

// BillOfMaterial is one BOM line: Quantity units of MaterialID per unit of ProductID.
type BillOfMaterial struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ProductID  int64 `gorm:"not null;index"`
	MaterialID int64 `gorm:"not null;index"`
	Quantity   int64 `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Material *RawMaterial `gorm:"foreignKey:MaterialID"`
}

func (BillOfMaterial) TableName() string { return "bills_of_material" }

type ProductionOrder struct {
	ID        int64                 `gorm:"primaryKey;autoIncrement"`
	ProductID int64                 `gorm:"not null;index"`
	Quantity  int64                 `gorm:"not null"`
	Status    ProductionOrderStatus `gorm:"type:varchar(20);not null;index"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductionOrder) TableName() string { return "production_orders" }
