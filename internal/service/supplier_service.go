package service

import (
	"context"

	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id int64) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id int64, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id int64) error
}

type supplierService struct {
	repo   repository.SupplierRepository
	orders repository.SupplyOrderRepository
	events infra.EventPublisher
}

func NewSupplierService(repo repository.SupplierRepository, orders repository.SupplyOrderRepository, events infra.EventPublisher) SupplierService {
	return &supplierService{repo: repo, orders: orders, events: events}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{Name: req.Name, Contact: req.Contact, Rating: req.Rating, LeadTime: req.LeadTime}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(*sup)
	return &resp, nil
}

func (s *supplierService) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(*sup)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	sups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(sups), nil
}

func (s *supplierService) SearchByName(ctx context.Context, name string) ([]dto.SupplierResponse, error) {
	sups, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toSupplierResponses(sups), nil
}

func (s *supplierService) Update(ctx context.Context, id int64, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sup.Name = req.Name
	sup.Contact = req.Contact
	sup.Rating = req.Rating
	sup.LeadTime = req.LeadTime
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(*sup)
	return &resp, nil
}

func (s *supplierService) Delete(ctx context.Context, id int64) error {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	orders, err := s.orders.ListBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanDeleteSupplier(*sup, orders); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "supplier", id, infra.ActionDeleted)
	return nil
}

func toSupplierResponses(sups []model.Supplier) []dto.SupplierResponse {
	resp := make([]dto.SupplierResponse, len(sups))
	for i, sup := range sups {
		resp[i] = toSupplierResponse(sup)
	}
	return resp
}
