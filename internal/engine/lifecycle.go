package engine

import (
	"supplychainx/internal/apperror"
	"supplychainx/internal/model"
)

// Each guard returns nil when the delete/cancel may proceed, or a
// BusinessRule error naming the violated condition. Guards only inspect the
// records handed to them; callers fetch related rows beforehand.

// MaterialUsage counts the records still pointing at a raw material.
type MaterialUsage struct {
	LinkedSuppliers int64 // distinct suppliers with a supply order for it
	BOMLines        int64
}

// CanDeleteRawMaterial rejects a material still linked to any supplier
// through a supply order, or still listed in a bill of materials.
func CanDeleteRawMaterial(m model.RawMaterial, usage MaterialUsage) error {
	if usage.LinkedSuppliers > 0 {
		return apperror.BusinessRule("raw material %q is used by suppliers/orders (%d linked suppliers)", m.Name, usage.LinkedSuppliers)
	}
	if usage.BOMLines > 0 {
		return apperror.BusinessRule("raw material %q is used by %d bill of material lines", m.Name, usage.BOMLines)
	}
	return nil
}

// CanDeleteSupplier rejects a supplier with a pending or in-progress order.
func CanDeleteSupplier(s model.Supplier, orders []model.SupplyOrder) error {
	for _, o := range orders {
		if o.SupplierID == s.ID && o.Status.Active() {
			return apperror.BusinessRule("supplier %q has active orders", s.Name)
		}
	}
	return nil
}

func CanDeleteSupplyOrder(o model.SupplyOrder) error {
	if o.Status == model.SupplyOrderReceived {
		return apperror.BusinessRule("supply order %d was already received", o.ID)
	}
	return nil
}

func CanDeleteProduct(p model.Product, productionOrders int64) error {
	if productionOrders > 0 {
		return apperror.BusinessRule("product %q has production orders (%d)", p.Name, productionOrders)
	}
	return nil
}

// CanCancelProductionOrder only lets pending orders go.
func CanCancelProductionOrder(o model.ProductionOrder) error {
	if o.Status != model.ProductionPending {
		return apperror.BusinessRule("production order %d has already started (status %s)", o.ID, o.Status)
	}
	return nil
}

func CanCancelOrder(o model.Order) error {
	if o.Status != model.OrderPreparing {
		return apperror.BusinessRule("order %d has already shipped (status %s)", o.ID, o.Status)
	}
	return nil
}

// CanDeleteCustomer rejects a customer that still has orders.
func CanDeleteCustomer(c model.Customer, orders int64) error {
	if orders > 0 {
		return apperror.BusinessRule("customer %q has %d orders", c.Name, orders)
	}
	return nil
}
