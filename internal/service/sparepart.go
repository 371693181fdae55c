package service

import (
	"context"
	"errors"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type sparePartService struct {
	partRepo repository.SparePartRepository
}

func NewSparePartService(partRepo repository.SparePartRepository) SparePartService {
	return &sparePartService{partRepo: partRepo}
}

func (s *sparePartService) CreateSparePart(ctx context.Context, part *domain.SparePart) error {
	if part.Quantity < 0 || part.MinQuantity < 0 {
		return ErrInsufficientQuantity
	}
	return s.partRepo.Create(ctx, part)
}

func (s *sparePartService) GetSparePart(ctx context.Context, id int32) (*domain.SparePart, error) {
	part, err := s.partRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSparePartNotFound
		}
		return nil, err
	}
	return part, nil
}

func (s *sparePartService) UpdateSparePart(ctx context.Context, part *domain.SparePart) error {
	if part.Quantity < 0 || part.MinQuantity < 0 {
		return ErrInsufficientQuantity
	}
	if err := s.partRepo.Update(ctx, part); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSparePartNotFound
		}
		return err
	}
	return nil
}

func (s *sparePartService) ListSpareParts(ctx context.Context, page, pageSize int32) ([]domain.SparePart, int32, error) {
	return s.partRepo.List(ctx, page, pageSize)
}
