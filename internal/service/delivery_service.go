package service

import (
	"context"

	"supplychainx/internal/apperror"
	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type DeliveryService interface {
	Create(ctx context.Context, req dto.DeliveryRequest) (*dto.DeliveryResponse, error)
	Get(ctx context.Context, id int64) (*dto.DeliveryResponse, error)
	List(ctx context.Context) ([]dto.DeliveryResponse, error)
	// DeliverySlip renders the delivery's PDF slip and returns its path.
	DeliverySlip(ctx context.Context, id int64) (string, error)
}

type deliveryService struct {
	repo      repository.DeliveryRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	pdfPath   string
}

func NewDeliveryService(
	repo repository.DeliveryRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	pdfPath string,
) DeliveryService {
	return &deliveryService{repo: repo, orders: orders, customers: customers, products: products, pdfPath: pdfPath}
}

// Create plans the delivery of an order. Without an explicit positive cost
// the cost is derived from the ordered product.
func (s *deliveryService) Create(ctx context.Context, req dto.DeliveryRequest) (*dto.DeliveryResponse, error) {
	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.BusinessRule("order %d already has a delivery", order.ID)
	}
	product, err := s.products.FindByID(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}

	d := &model.Delivery{
		OrderID:      order.ID,
		Vehicle:      req.Vehicle,
		Driver:       req.Driver,
		Status:       model.DeliveryPending,
		DeliveryDate: req.DeliveryDate,
		Cost:         engine.DeriveDeliveryCost(*order, *product, req.Cost).Round(2), // numeric(12,2)
	}
	if req.Status != "" {
		st, err := model.ParseDeliveryStatus(req.Status)
		if err != nil {
			return nil, err
		}
		d.Status = st
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := toDeliveryResponse(*d)
	return &resp, nil
}

func (s *deliveryService) Get(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDeliveryResponse(*d)
	return &resp, nil
}

func (s *deliveryService) List(ctx context.Context) ([]dto.DeliveryResponse, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DeliveryResponse, len(ds))
	for i, d := range ds {
		resp[i] = toDeliveryResponse(d)
	}
	return resp, nil
}

func (s *deliveryService) DeliverySlip(ctx context.Context, id int64) (string, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	order, err := s.orders.FindByID(ctx, d.OrderID)
	if err != nil {
		return "", err
	}
	customer, err := s.customers.FindByID(ctx, order.CustomerID)
	if err != nil {
		return "", err
	}
	product, err := s.products.FindByID(ctx, order.ProductID)
	if err != nil {
		return "", err
	}
	return infra.GenerateDeliverySlipPDF(infra.DeliverySlip{
		Delivery: *d,
		Order:    *order,
		Customer: *customer,
		Product:  *product,
	}, s.pdfPath)
}
