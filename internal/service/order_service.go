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

type OrderService interface {
	Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id int64) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id int64, req dto.OrderRequest) (*dto.OrderResponse, error)
	Cancel(ctx context.Context, id int64) error
}

type orderService struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	events    infra.EventPublisher
}

func NewOrderService(
	repo repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	events infra.EventPublisher,
) OrderService {
	return &orderService{repo: repo, customers: customers, products: products, events: events}
}

func (s *orderService) Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	o := &model.Order{Status: model.OrderPreparing}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	st, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) Update(ctx context.Context, id int64, req dto.OrderRequest) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == "" {
		return nil, apperror.InvalidStatus("order", req.Status)
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

func (s *orderService) Cancel(ctx context.Context, id int64) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanCancelOrder(*o); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "order", id, infra.ActionCancelled)
	return nil
}

func (s *orderService) apply(ctx context.Context, o *model.Order, req dto.OrderRequest) error {
	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return err
	}
	if req.Status != "" {
		st, err := model.ParseOrderStatus(req.Status)
		if err != nil {
			return err
		}
		o.Status = st
	}
	o.CustomerID = req.CustomerID
	o.ProductID = req.ProductID
	o.Quantity = req.Quantity
	return nil
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	return resp
}
