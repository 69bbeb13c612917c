package service

import (
	"context"

	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
)

type PlanningService interface {
	CheckAvailability(ctx context.Context, productID, quantity int64) (*dto.AvailabilityResponse, error)
	EstimateProductionTime(ctx context.Context, productID, quantity int64) (*dto.TimeEstimateResponse, error)
}

type planningService struct {
	planner *engine.Planner
}

func NewPlanningService(planner *engine.Planner) PlanningService {
	return &planningService{planner: planner}
}

func (s *planningService) CheckAvailability(ctx context.Context, productID, quantity int64) (*dto.AvailabilityResponse, error) {
	report, err := s.planner.CheckAvailability(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	return toAvailabilityResponse(report), nil
}

func (s *planningService) EstimateProductionTime(ctx context.Context, productID, quantity int64) (*dto.TimeEstimateResponse, error) {
	est, err := s.planner.EstimateProductionTime(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	return &dto.TimeEstimateResponse{
		ProductID:   est.ProductID,
		ProductName: est.ProductName,
		Quantity:    est.Quantity,
		UnitTime:    est.UnitTime,
		TotalTime:   est.TotalTime,
	}, nil
}
