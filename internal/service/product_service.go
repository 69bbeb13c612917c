package service

import (
	"context"

	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo             repository.ProductRepository
	productionOrders repository.ProductionOrderRepository
	events           infra.EventPublisher
}

func NewProductService(repo repository.ProductRepository, productionOrders repository.ProductionOrderRepository, events infra.EventPublisher) ProductService {
	return &productService{repo: repo, productionOrders: productionOrders, events: events}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{Name: req.Name, ProductionTime: req.ProductionTime, Cost: req.Cost, Stock: req.Stock}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(*p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(ps), nil
}

func (s *productService) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	ps, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toProductResponses(ps), nil
}

func (s *productService) Update(ctx context.Context, id int64, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.ProductionTime = req.ProductionTime
	p.Cost = req.Cost
	p.Stock = req.Stock
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.productionOrders.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanDeleteProduct(*p, n); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "product", id, infra.ActionDeleted)
	return nil
}

func toProductResponses(ps []model.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, len(ps))
	for i, p := range ps {
		resp[i] = toProductResponse(p)
	}
	return resp
}
