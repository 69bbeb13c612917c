package service

import (
	"context"

	"supplychainx/internal/dto"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
)

type BillOfMaterialService interface {
	Create(ctx context.Context, req dto.BillOfMaterialRequest) (*dto.BillOfMaterialResponse, error)
	Get(ctx context.Context, id int64) (*dto.BillOfMaterialResponse, error)
	List(ctx context.Context) ([]dto.BillOfMaterialResponse, error)
	ListByProduct(ctx context.Context, productID int64) ([]dto.BillOfMaterialResponse, error)
	Update(ctx context.Context, id int64, req dto.BillOfMaterialRequest) (*dto.BillOfMaterialResponse, error)
	Delete(ctx context.Context, id int64) error
}

type bomService struct {
	repo      repository.BillOfMaterialRepository
	products  repository.ProductRepository
	materials repository.RawMaterialRepository
}

func NewBillOfMaterialService(
	repo repository.BillOfMaterialRepository,
	products repository.ProductRepository,
	materials repository.RawMaterialRepository,
) BillOfMaterialService {
	return &bomService{repo: repo, products: products, materials: materials}
}

func (s *bomService) Create(ctx context.Context, req dto.BillOfMaterialRequest) (*dto.BillOfMaterialResponse, error) {
	b := &model.BillOfMaterial{}
	if err := s.apply(ctx, b, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := toBOMResponse(*b)
	return &resp, nil
}

func (s *bomService) Get(ctx context.Context, id int64) (*dto.BillOfMaterialResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBOMResponse(*b)
	return &resp, nil
}

func (s *bomService) List(ctx context.Context) ([]dto.BillOfMaterialResponse, error) {
	lines, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toBOMResponses(lines), nil
}

func (s *bomService) ListByProduct(ctx context.Context, productID int64) ([]dto.BillOfMaterialResponse, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	lines, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toBOMResponses(lines), nil
}

func (s *bomService) Update(ctx context.Context, id int64, req dto.BillOfMaterialRequest) (*dto.BillOfMaterialResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, b, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := toBOMResponse(*b)
	return &resp, nil
}

func (s *bomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *bomService) apply(ctx context.Context, b *model.BillOfMaterial, req dto.BillOfMaterialRequest) error {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return err
	}
	m, err := s.materials.FindByID(ctx, req.MaterialID)
	if err != nil {
		return err
	}
	b.ProductID = req.ProductID
	b.MaterialID = req.MaterialID
	b.Quantity = req.Quantity
	b.Material = m
	return nil
}

func toBOMResponses(lines []model.BillOfMaterial) []dto.BillOfMaterialResponse {
	resp := make([]dto.BillOfMaterialResponse, len(lines))
	for i, b := range lines {
		resp[i] = toBOMResponse(b)
	}
	return resp
}
