package engine

import (
	"context"

	"supplychainx/internal/model"

	"github.com/shopspring/decimal"
)

// deliveryMarkup is the fixed 10% logistics markup applied when no explicit
// delivery cost is given.
var deliveryMarkup = decimal.RequireFromString("1.1")

// Planner answers read-only planning queries by composing the stock ledger
// and the BOM engine.
type Planner struct {
	bom *BOMEngine
}

func NewPlanner(products ProductReader, boms BOMReader) *Planner {
	return &Planner{bom: NewBOMEngine(products, boms)}
}

func (p *Planner) CheckAvailability(ctx context.Context, productID, quantity int64) (*AvailabilityReport, error) {
	return p.bom.CheckAvailability(ctx, productID, quantity)
}

func (p *Planner) EstimateProductionTime(ctx context.Context, productID, quantity int64) (*TimeEstimate, error) {
	return p.bom.EstimateProductionTime(ctx, productID, quantity)
}

func (p *Planner) CriticalMaterials(materials []model.RawMaterial) []model.RawMaterial {
	return ListCritical(materials)
}

// Shortage is a BOM line that cannot be covered by current stock.
type Shortage struct {
	MaterialID   int64
	MaterialName string
	Missing      int64
}

// Shortages lists the insufficient lines of a report with their deficit.
func Shortages(report *AvailabilityReport) []Shortage {
	out := make([]Shortage, 0)
	if report == nil {
		return out
	}
	for _, s := range report.MaterialsStatus {
		if !s.IsAvailable {
			out = append(out, Shortage{
				MaterialID:   s.MaterialID,
				MaterialName: s.MaterialName,
				Missing:      s.RequiredQuantity - s.AvailableStock,
			})
		}
	}
	return out
}

// DeriveDeliveryCost returns supplied when it is set and positive; otherwise
// product cost × order quantity × 1.1.
func DeriveDeliveryCost(order model.Order, product model.Product, supplied *decimal.Decimal) decimal.Decimal {
	if supplied != nil && supplied.IsPositive() {
		return *supplied
	}
	return product.Cost.Mul(decimal.NewFromInt(order.Quantity)).Mul(deliveryMarkup)
}
