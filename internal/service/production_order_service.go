package service

import (
	"context"

	"supplychainx/internal/apperror"
	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductionOrderService interface {
	Create(ctx context.Context, req dto.ProductionOrderRequest) (*dto.ProductionOrderResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProductionOrderResponse, error)
	List(ctx context.Context) ([]dto.ProductionOrderResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.ProductionOrderResponse, error)
	Update(ctx context.Context, id int64, req dto.ProductionOrderRequest) (*dto.ProductionOrderResponse, error)
	Cancel(ctx context.Context, id int64) error
}

type productionOrderService struct {
	repo     repository.ProductionOrderRepository
	products repository.ProductRepository
	planner  *engine.Planner
	events   infra.EventPublisher
}

func NewProductionOrderService(
	repo repository.ProductionOrderRepository,
	products repository.ProductRepository,
	planner *engine.Planner,
	events infra.EventPublisher,
) ProductionOrderService {
	return &productionOrderService{repo: repo, products: products, planner: planner, events: events}
}

// Create stores the order whatever the stock situation and reports the
// materials that are short for it.
func (s *productionOrderService) Create(ctx context.Context, req dto.ProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	o := &model.ProductionOrder{Status: model.ProductionPending}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := toProductionOrderResponse(*o)

	report, err := s.planner.CheckAvailability(ctx, o.ProductID, o.Quantity)
	if err != nil {
		log.Warn().Err(err).Int64("production_order_id", o.ID).Msg("availability not computed")
	} else {
		resp.Shortages = toShortageResponses(engine.Shortages(report))
	}
	return &resp, nil
}

func (s *productionOrderService) Get(ctx context.Context, id int64) (*dto.ProductionOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductionOrderResponse(*o)
	return &resp, nil
}

func (s *productionOrderService) List(ctx context.Context) ([]dto.ProductionOrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductionOrderResponses(orders), nil
}

func (s *productionOrderService) ListByStatus(ctx context.Context, status string) ([]dto.ProductionOrderResponse, error) {
	st, err := model.ParseProductionOrderStatus(status)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, err
	}
	return toProductionOrderResponses(orders), nil
}

func (s *productionOrderService) Update(ctx context.Context, id int64, req dto.ProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == "" {
		return nil, apperror.InvalidStatus("production order", req.Status)
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	resp := toProductionOrderResponse(*o)
	return &resp, nil
}

func (s *productionOrderService) Cancel(ctx context.Context, id int64) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanCancelProductionOrder(*o); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "production_order", id, infra.ActionCancelled)
	return nil
}

func (s *productionOrderService) apply(ctx context.Context, o *model.ProductionOrder, req dto.ProductionOrderRequest) error {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return err
	}
	if req.Status != "" {
		st, err := model.ParseProductionOrderStatus(req.Status)
		if err != nil {
			return err
		}
		o.Status = st
	}
	o.ProductID = req.ProductID
	o.Quantity = req.Quantity
	o.StartDate = req.StartDate
	o.EndDate = req.EndDate
	return nil
}

func toProductionOrderResponses(orders []model.ProductionOrder) []dto.ProductionOrderResponse {
	resp := make([]dto.ProductionOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toProductionOrderResponse(o)
	}
	return resp
}
