package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CustomerRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"max=300"`
	City    string `json:"city"    validate:"max=100"`
}

type OrderRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	ProductID  int64  `json:"product_id"  validate:"required,gt=0"`
	Quantity   int64  `json:"quantity"    validate:"required,gt=0"`
	Status     string `json:"status"      validate:"omitempty,oneof=EN_PREPARATION EN_ROUTE LIVREE"`
}

// DeliveryRequest leaves Cost empty to have it derived from the order.
type DeliveryRequest struct {
	OrderID      int64            `json:"order_id"      validate:"required,gt=0"`
	Vehicle      string           `json:"vehicle"       validate:"max=100"`
	Driver       string           `json:"driver"        validate:"max=100"`
	Status       string           `json:"status"        validate:"omitempty,oneof=EN_ATTENTE EN_COURS LIVREE"`
	DeliveryDate *time.Time       `json:"delivery_date"`
	Cost         *decimal.Decimal `json:"cost"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type OrderResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	ProductID  int64  `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	Status     string `json:"status"`
}

type DeliveryResponse struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"order_id"`
	Vehicle      string          `json:"vehicle"`
	Driver       string          `json:"driver"`
	Status       string          `json:"status"`
	DeliveryDate *time.Time      `json:"delivery_date"`
	Cost         decimal.Decimal `json:"cost"`
}
