package service

import (
	"context"
	"time"

	"supplychainx/internal/apperror"
	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type SupplyOrderService interface {
	Create(ctx context.Context, req dto.SupplyOrderRequest) (*dto.SupplyOrderResponse, error)
	Get(ctx context.Context, id int64) (*dto.SupplyOrderResponse, error)
	List(ctx context.Context) ([]dto.SupplyOrderResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.SupplyOrderResponse, error)
	Update(ctx context.Context, id int64, req dto.SupplyOrderRequest) (*dto.SupplyOrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

type supplyOrderService struct {
	repo      repository.SupplyOrderRepository
	suppliers repository.SupplierRepository
	materials repository.RawMaterialRepository
	events    infra.EventPublisher
}

func NewSupplyOrderService(
	repo repository.SupplyOrderRepository,
	suppliers repository.SupplierRepository,
	materials repository.RawMaterialRepository,
	events infra.EventPublisher,
) SupplyOrderService {
	return &supplyOrderService{repo: repo, suppliers: suppliers, materials: materials, events: events}
}

func (s *supplyOrderService) Create(ctx context.Context, req dto.SupplyOrderRequest) (*dto.SupplyOrderResponse, error) {
	o := &model.SupplyOrder{OrderDate: time.Now().UTC(), Status: model.SupplyOrderPending}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := toSupplyOrderResponse(*o)
	return &resp, nil
}

func (s *supplyOrderService) Get(ctx context.Context, id int64) (*dto.SupplyOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSupplyOrderResponse(*o)
	return &resp, nil
}

func (s *supplyOrderService) List(ctx context.Context) ([]dto.SupplyOrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSupplyOrderResponses(orders), nil
}

func (s *supplyOrderService) ListByStatus(ctx context.Context, status string) ([]dto.SupplyOrderResponse, error) {
	st, err := model.ParseSupplyOrderStatus(status)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return toSupplyOrderResponses(orders), nil
}

// Update accepts any valid status; transitions are not restricted.
func (s *supplyOrderService) Update(ctx context.Context, id int64, req dto.SupplyOrderRequest) (*dto.SupplyOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// status is part of the wholesale update; order_date may be omitted to keep it
	if req.Status == "" {
		return nil, apperror.InvalidStatus("supply order", req.Status)
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	resp := toSupplyOrderResponse(*o)
	return &resp, nil
}

func (s *supplyOrderService) Delete(ctx context.Context, id int64) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanDeleteSupplyOrder(*o); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "supply_order", id, infra.ActionDeleted)
	return nil
}

// apply resolves the request's references and copies it onto o.
func (s *supplyOrderService) apply(ctx context.Context, o *model.SupplyOrder, req dto.SupplyOrderRequest) error {
	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		return err
	}
	ids := uniqueIDs(req.MaterialIDs)
	materials, err := s.materials.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(materials) != len(ids) {
		return apperror.NotFoundMsg("some raw materials do not exist")
	}
	if req.Status != "" {
		st, err := model.ParseSupplyOrderStatus(req.Status)
		if err != nil {
			return err
		}
		o.Status = st
	}
	if req.OrderDate != nil {
		o.OrderDate = *req.OrderDate
	}
	o.SupplierID = req.SupplierID
	o.Materials = materials
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func toSupplyOrderResponses(orders []model.SupplyOrder) []dto.SupplyOrderResponse {
	resp := make([]dto.SupplyOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toSupplyOrderResponse(o)
	}
	return resp
}
