package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RawMaterialRequest struct {
	Name     string `json:"name"      validate:"required,min=1,max=200"`
	Stock    *int64 `json:"stock"     validate:"omitempty,min=0"`
	StockMin *int64 `json:"stock_min" validate:"omitempty,min=0"`
	Unit     string `json:"unit"      validate:"max=30"`
}

type SupplierRequest struct {
	Name     string          `json:"name"      validate:"required,min=1,max=200"`
	Contact  string          `json:"contact"   validate:"max=200"`
	Rating   decimal.Decimal `json:"rating"    validate:"min=0,max=5"`
	LeadTime int             `json:"lead_time" validate:"min=1"`
}

type SupplyOrderRequest struct {
	SupplierID  int64      `json:"supplier_id"  validate:"required,gt=0"`
	OrderDate   *time.Time `json:"order_date"`
	Status      string     `json:"status"       validate:"omitempty,oneof=EN_ATTENTE EN_COURS RECUE"`
	MaterialIDs []int64    `json:"material_ids" validate:"dive,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RawMaterialResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Stock    *int64 `json:"stock"`
	StockMin *int64 `json:"stock_min"`
	Unit     string `json:"unit"`
	Critical bool   `json:"critical"`
}

type SupplierResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Contact  string          `json:"contact"`
	Rating   decimal.Decimal `json:"rating"`
	LeadTime int             `json:"lead_time"`
}

type SupplyOrderResponse struct {
	ID         int64                 `json:"id"`
	SupplierID int64                 `json:"supplier_id"`
	OrderDate  time.Time             `json:"order_date"`
	Status     string                `json:"status"`
	Materials  []RawMaterialResponse `json:"materials"`
}
