package engine

import (
	"context"
	"math"

	"supplychainx/internal/apperror"
	"supplychainx/internal/model"
)

// ProductReader resolves a product by id, failing with apperror NotFound.
type ProductReader interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
}

// BOMReader lists a product's BOM lines with Material populated.
type BOMReader interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.BillOfMaterial, error)
}

type MaterialStatus struct {
	MaterialID       int64
	MaterialName     string
	RequiredQuantity int64
	AvailableStock   int64
	IsAvailable      bool
}

type AvailabilityReport struct {
	ProductID         int64
	ProductName       string
	RequestedQuantity int64
	CanProduce        bool
	MaterialsStatus   []MaterialStatus
}

type TimeEstimate struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitTime    int64
	TotalTime   int64
}

// BOMEngine explodes a product's bill of materials against current stock.
// It is a feasibility oracle: nothing is reserved or decremented.
type BOMEngine struct {
	products ProductReader
	boms     BOMReader
}

func NewBOMEngine(products ProductReader, boms BOMReader) *BOMEngine {
	return &BOMEngine{products: products, boms: boms}
}

// CheckAvailability compares quantityPerUnit*quantity with each material's
// stock. A product with no BOM lines can always be produced.
func (e *BOMEngine) CheckAvailability(ctx context.Context, productID, quantity int64) (*AvailabilityReport, error) {
	if quantity < 0 {
		return nil, apperror.InvalidQuantity("quantity must not be negative, got %d", quantity)
	}
	product, err := e.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	lines, err := e.boms.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	report := &AvailabilityReport{
		ProductID:         product.ID,
		ProductName:       product.Name,
		RequestedQuantity: quantity,
		CanProduce:        true,
		MaterialsStatus:   make([]MaterialStatus, 0, len(lines)),
	}
	for _, line := range lines {
		if line.Material == nil {
			return nil, apperror.NotFound("raw material", line.MaterialID)
		}
		required, err := mulQuantity(line.Quantity, quantity)
		if err != nil {
			return nil, err
		}
		var available int64
		if line.Material.Stock != nil {
			available = *line.Material.Stock
		}
		ok := available >= required
		report.MaterialsStatus = append(report.MaterialsStatus, MaterialStatus{
			MaterialID:       line.Material.ID,
			MaterialName:     line.Material.Name,
			RequiredQuantity: required,
			AvailableStock:   available,
			IsAvailable:      ok,
		})
		report.CanProduce = report.CanProduce && ok
	}
	return report, nil
}

// EstimateProductionTime multiplies the per-unit production time by quantity.
func (e *BOMEngine) EstimateProductionTime(ctx context.Context, productID, quantity int64) (*TimeEstimate, error) {
	if quantity < 0 {
		return nil, apperror.InvalidQuantity("quantity must not be negative, got %d", quantity)
	}
	product, err := e.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	total, err := mulQuantity(product.ProductionTime, quantity)
	if err != nil {
		return nil, err
	}
	return &TimeEstimate{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitTime:    product.ProductionTime,
		TotalTime:   total,
	}, nil
}

// mulQuantity multiplies two non-negative quantities, failing instead of wrapping.
func mulQuantity(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, apperror.InvalidQuantity("quantities must not be negative (%d x %d)", a, b)
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, apperror.InvalidQuantity("quantity overflow computing %d x %d", a, b)
	}
	return a * b, nil
}
