package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name           string          `json:"name"            validate:"required,min=1,max=200"`
	ProductionTime int64           `json:"production_time" validate:"gt=0"`
	Cost           decimal.Decimal `json:"cost"            validate:"gt=0"`
	Stock          int64           `json:"stock"           validate:"min=0"`
}

type BillOfMaterialRequest struct {
	ProductID  int64 `json:"product_id"  validate:"required,gt=0"`
	MaterialID int64 `json:"material_id" validate:"required,gt=0"`
	Quantity   int64 `json:"quantity"    validate:"gt=0"`
}

type ProductionOrderRequest struct {
	ProductID int64      `json:"product_id" validate:"required,gt=0"`
	Quantity  int64      `json:"quantity"   validate:"required,gt=0"`
	Status    string     `json:"status"     validate:"omitempty,oneof=EN_ATTENTE EN_PRODUCTION TERMINE BLOQUE"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// PlanningQuery binds ?product_id=&quantity= on the planning endpoints.
type PlanningQuery struct {
	ProductID int64 `form:"product_id" binding:"required"`
	Quantity  int64 `form:"quantity"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	ProductionTime int64           `json:"production_time"`
	Cost           decimal.Decimal `json:"cost"`
	Stock          int64           `json:"stock"`
}

type BillOfMaterialResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	MaterialID   int64  `json:"material_id"`
	MaterialName string `json:"material_name,omitempty"`
	Quantity     int64  `json:"quantity"`
}

type ShortageResponse struct {
	MaterialID   int64  `json:"material_id"`
	MaterialName string `json:"material_name"`
	Missing      int64  `json:"missing"`
}

type ProductionOrderResponse struct {
	ID        int64              `json:"id"`
	ProductID int64              `json:"product_id"`
	Quantity  int64              `json:"quantity"`
	Status    string             `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Shortages []ShortageResponse `json:"shortages,omitempty"`
}

type MaterialStatusResponse struct {
	MaterialID       int64  `json:"material_id"`
	MaterialName     string `json:"material_name"`
	RequiredQuantity int64  `json:"required_quantity"`
	AvailableStock   int64  `json:"available_stock"`
	IsAvailable      bool   `json:"is_available"`
}

type AvailabilityResponse struct {
	ProductID         int64                    `json:"product_id"`
	ProductName       string                   `json:"product_name"`
	RequestedQuantity int64                    `json:"requested_quantity"`
	CanProduce        bool                     `json:"can_produce"`
	MaterialsStatus   []MaterialStatusResponse `json:"materials_status"`
}

type TimeEstimateResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitTime    int64  `json:"unit_time"`
	TotalTime   int64  `json:"total_time"`
}
