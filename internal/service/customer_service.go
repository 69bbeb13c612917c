package service

import (
	"context"

	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	repo   repository.CustomerRepository
	orders repository.OrderRepository
	events infra.EventPublisher
}

func NewCustomerService(repo repository.CustomerRepository, orders repository.OrderRepository, events infra.EventPublisher) CustomerService {
	return &customerService{repo: repo, orders: orders, events: events}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{Name: req.Name, Address: req.Address, City: req.City}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*c)
	return &resp, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*c)
	return &resp, nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	cs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(cs), nil
}

func (s *customerService) SearchByName(ctx context.Context, name string) ([]dto.CustomerResponse, error) {
	cs, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(cs), nil
}

func (s *customerService) Update(ctx context.Context, id int64, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Address = req.Address
	c.City = req.City
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(*c)
	return &resp, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.orders.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanDeleteCustomer(*c, n); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "customer", id, infra.ActionDeleted)
	return nil
}

func toCustomerResponses(cs []model.Customer) []dto.CustomerResponse {
	resp := make([]dto.CustomerResponse, len(cs))
	for i, c := range cs {
		resp[i] = toCustomerResponse(c)
	}
	return resp
}
