// Package engine holds the inventory-consistency and production-planning
// rules: critical stock derivation, BOM explosion, lifecycle guards and
// delivery cost derivation. It works on plain model records and narrow
// reader interfaces and never writes to the store.
package engine

import "supplychainx/internal/model"

// IsCritical reports stock < stockMin. A material missing either value is
// treated as not critical.
func IsCritical(m model.RawMaterial) bool {
	if m.Stock == nil || m.StockMin == nil {
		return false
	}
	return *m.Stock < *m.StockMin
}

// ListCritical keeps the critical materials, preserving input order.
func ListCritical(materials []model.RawMaterial) []model.RawMaterial {
	critical := make([]model.RawMaterial, 0)
	for _, m := range materials {
		if IsCritical(m) {
			critical = append(critical, m)
		}
	}
	return critical
}
