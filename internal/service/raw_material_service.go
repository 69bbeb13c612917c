package service

import (
	"context"
	"io"

	"supplychainx/internal/dto"
	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type RawMaterialService interface {
	Create(ctx context.Context, req dto.RawMaterialRequest) (*dto.RawMaterialResponse, error)
	Get(ctx context.Context, id int64) (*dto.RawMaterialResponse, error)
	List(ctx context.Context) ([]dto.RawMaterialResponse, error)
	ListCritical(ctx context.Context) ([]dto.RawMaterialResponse, error)
	ExportCritical(ctx context.Context, w io.Writer) error
	Update(ctx context.Context, id int64, req dto.RawMaterialRequest) (*dto.RawMaterialResponse, error)
	Delete(ctx context.Context, id int64) error
}

type rawMaterialService struct {
	repo   repository.RawMaterialRepository
	boms   repository.BillOfMaterialRepository
	events infra.EventPublisher
	alerts StockAlerter
}

// NewRawMaterialService wires the raw material use cases. alerts may be nil,
// in which case critical materials are only reported, never alerted.
func NewRawMaterialService(
	repo repository.RawMaterialRepository,
	boms repository.BillOfMaterialRepository,
	events infra.EventPublisher,
	alerts StockAlerter,
) RawMaterialService {
	return &rawMaterialService{repo: repo, boms: boms, events: events, alerts: alerts}
}

func (s *rawMaterialService) Create(ctx context.Context, req dto.RawMaterialRequest) (*dto.RawMaterialResponse, error) {
	m := &model.RawMaterial{Name: req.Name, Stock: req.Stock, StockMin: req.StockMin, Unit: req.Unit}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	syncStockAlert(ctx, s.alerts, *m)
	resp := toRawMaterialResponse(*m)
	return &resp, nil
}

func (s *rawMaterialService) Get(ctx context.Context, id int64) (*dto.RawMaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(*m)
	return &resp, nil
}

func (s *rawMaterialService) List(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponses(ms), nil
}

func (s *rawMaterialService) ListCritical(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	critical, err := s.critical(ctx)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponses(critical), nil
}

// ExportCritical writes the critical materials as an xlsx workbook.
func (s *rawMaterialService) ExportCritical(ctx context.Context, w io.Writer) error {
	critical, err := s.critical(ctx)
	if err != nil {
		return err
	}
	return infra.WriteCriticalStockXLSX(w, critical)
}

func (s *rawMaterialService) critical(ctx context.Context) ([]model.RawMaterial, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return engine.ListCritical(ms), nil
}

func (s *rawMaterialService) Update(ctx context.Context, id int64, req dto.RawMaterialRequest) (*dto.RawMaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Name = req.Name
	m.Stock = req.Stock
	m.StockMin = req.StockMin
	m.Unit = req.Unit
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	syncStockAlert(ctx, s.alerts, *m)
	resp := toRawMaterialResponse(*m)
	return &resp, nil
}

func (s *rawMaterialService) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	suppliers, err := s.repo.CountLinkedSuppliers(ctx, id)
	if err != nil {
		return err
	}
	lines, err := s.boms.CountByMaterial(ctx, id)
	if err != nil {
		return err
	}
	if err := engine.CanDeleteRawMaterial(*m, engine.MaterialUsage{LinkedSuppliers: suppliers, BOMLines: lines}); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publishLifecycle(ctx, s.events, "raw_material", id, infra.ActionDeleted)
	return nil
}
