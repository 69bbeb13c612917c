package model

import "supplychainx/internal/apperror"

// Status values are persisted as their string form and never defaulted:
// every Parse function fails with an InvalidStatus error on unknown input.

// SupplyOrderStatus: EN_ATTENTE → EN_COURS → RECUE.
type SupplyOrderStatus string

const (
	SupplyOrderPending    SupplyOrderStatus = "EN_ATTENTE"
	SupplyOrderInProgress SupplyOrderStatus = "EN_COURS"
	SupplyOrderReceived   SupplyOrderStatus = "RECUE"
)

func ParseSupplyOrderStatus(s string) (SupplyOrderStatus, error) {
	switch st := SupplyOrderStatus(s); st {
	case SupplyOrderPending, SupplyOrderInProgress, SupplyOrderReceived:
		return st, nil
	}
	return "", apperror.InvalidStatus("supply order", s)
}

// Active reports whether the order still ties up its supplier.
func (s SupplyOrderStatus) Active() bool {
	return s == SupplyOrderPending || s == SupplyOrderInProgress
}

// ProductionOrderStatus: EN_ATTENTE → EN_PRODUCTION → TERMINE, BLOQUE from
// any non-terminal state.
type ProductionOrderStatus string

const (
	ProductionPending    ProductionOrderStatus = "EN_ATTENTE"
	ProductionInProgress ProductionOrderStatus = "EN_PRODUCTION"
	ProductionDone       ProductionOrderStatus = "TERMINE"
	ProductionBlocked    ProductionOrderStatus = "BLOQUE"
)

func ParseProductionOrderStatus(s string) (ProductionOrderStatus, error) {
	switch st := ProductionOrderStatus(s); st {
	case ProductionPending, ProductionInProgress, ProductionDone, ProductionBlocked:
		return st, nil
	}
	return "", apperror.InvalidStatus("production order", s)
}

// OrderStatus: EN_PREPARATION → EN_ROUTE → LIVREE.
type OrderStatus string

const (
	OrderPreparing OrderStatus = "EN_PREPARATION"
	OrderInTransit OrderStatus = "EN_ROUTE"
	OrderDelivered OrderStatus = "LIVREE"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPreparing, OrderInTransit, OrderDelivered:
		return st, nil
	}
	return "", apperror.InvalidStatus("order", s)
}

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "EN_ATTENTE"
	DeliveryInProgress DeliveryStatus = "EN_COURS"
	DeliveryDelivered  DeliveryStatus = "LIVREE"
)

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	switch st := DeliveryStatus(s); st {
	case DeliveryPending, DeliveryInProgress, DeliveryDelivered:
		return st, nil
	}
	return "", apperror.InvalidStatus("delivery", s)
}
