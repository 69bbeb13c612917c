package model

import "time"

// RawMaterial is a stocked input. Stock and StockMin are nullable: rows
// imported without a threshold are never reported as critical.
type RawMaterial struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Stock     *int64
	StockMin  *int64
	Unit      string `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RawMaterial) TableName() string { return "raw_materials" }
