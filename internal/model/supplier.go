package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier owns its SupplyOrders; the order side only carries SupplierID.
type Supplier struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null"`
	Contact   string
	Rating    decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	LeadTime  int             `gorm:"not null"` // days
	CreatedAt time.Time
	UpdatedAt time.Time

	SupplyOrders []SupplyOrder `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }

// SupplyOrder references materials through the supply_order_materials join table.
type SupplyOrder struct {
	ID         int64             `gorm:"primaryKey;autoIncrement"`
	SupplierID int64             `gorm:"not null;index"`
	OrderDate  time.Time         `gorm:"not null"`
	Status     SupplyOrderStatus `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Materials []RawMaterial `gorm:"many2many:supply_order_materials;"`
}

func (SupplyOrder) TableName() string { return "supply_orders" }

// MaterialIDs returns the ids of the referenced materials, in order.
func (o SupplyOrder) MaterialIDs() []int64 {
	ids := make([]int64, len(o.Materials))
	for i, m := range o.Materials {
		ids[i] = m.ID
	}
	return ids
}
