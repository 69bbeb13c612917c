package service

import (
	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/model"
)

func toRawMaterialResponse(m model.RawMaterial) dto.RawMaterialResponse {
	return dto.RawMaterialResponse{
		ID: m.ID, Name: m.Name, Stock: m.Stock, StockMin: m.StockMin,
		Unit: m.Unit, Critical: engine.IsCritical(m),
	}
}

func toRawMaterialResponses(ms []model.RawMaterial) []dto.RawMaterialResponse {
	resp := make([]dto.RawMaterialResponse, len(ms))
	for i, m := range ms {
		resp[i] = toRawMaterialResponse(m)
	}
	return resp
}

func toSupplierResponse(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Rating: s.Rating, LeadTime: s.LeadTime}
}

func toSupplyOrderResponse(o model.SupplyOrder) dto.SupplyOrderResponse {
	return dto.SupplyOrderResponse{
		ID:         o.ID,
		SupplierID: o.SupplierID,
		OrderDate:  o.OrderDate,
		Status:     string(o.Status),
		Materials:  toRawMaterialResponses(o.Materials),
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, ProductionTime: p.ProductionTime, Cost: p.Cost, Stock: p.Stock}
}

func toBOMResponse(b model.BillOfMaterial) dto.BillOfMaterialResponse {
	resp := dto.BillOfMaterialResponse{ID: b.ID, ProductID: b.ProductID, MaterialID: b.MaterialID, Quantity: b.Quantity}
	if b.Material != nil {
		resp.MaterialName = b.Material.Name
	}
	return resp
}

func toProductionOrderResponse(o model.ProductionOrder) dto.ProductionOrderResponse {
	return dto.ProductionOrderResponse{
		ID: o.ID, ProductID: o.ProductID, Quantity: o.Quantity,
		Status: string(o.Status), StartDate: o.StartDate, EndDate: o.EndDate,
	}
}

func toShortageResponses(shortages []engine.Shortage) []dto.ShortageResponse {
	resp := make([]dto.ShortageResponse, len(shortages))
	for i, s := range shortages {
		resp[i] = dto.ShortageResponse{MaterialID: s.MaterialID, MaterialName: s.MaterialName, Missing: s.Missing}
	}
	return resp
}

func toAvailabilityResponse(r *engine.AvailabilityReport) *dto.AvailabilityResponse {
	resp := &dto.AvailabilityResponse{
		ProductID:         r.ProductID,
		ProductName:       r.ProductName,
		RequestedQuantity: r.RequestedQuantity,
		CanProduce:        r.CanProduce,
		MaterialsStatus:   make([]dto.MaterialStatusResponse, len(r.MaterialsStatus)),
	}
	for i, s := range r.MaterialsStatus {
		resp.MaterialsStatus[i] = dto.MaterialStatusResponse{
			MaterialID:       s.MaterialID,
			MaterialName:     s.MaterialName,
			RequiredQuantity: s.RequiredQuantity,
			AvailableStock:   s.AvailableStock,
			IsAvailable:      s.IsAvailable,
		}
	}
	return resp
}

func toCustomerResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Address: c.Address, City: c.City}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{ID: o.ID, CustomerID: o.CustomerID, ProductID: o.ProductID, Quantity: o.Quantity, Status: string(o.Status)}
}

func toDeliveryResponse(d model.Delivery) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID: d.ID, OrderID: d.OrderID, Vehicle: d.Vehicle, Driver: d.Driver,
		Status: string(d.Status), DeliveryDate: d.DeliveryDate, Cost: d.Cost,
	}
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Role: u.Role}
}
