package service

import (
	"context"
	"errors"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type toolService struct {
	toolRepo    repository.ToolRepository
	bookingRepo repository.BookingRepository
	maintRepo   repository.MaintenanceRepository
}

func NewToolService(
	toolRepo repository.ToolRepository,
	bookingRepo repository.BookingRepository,
	maintRepo repository.MaintenanceRepository,
) ToolService {
	return &toolService{
		toolRepo:    toolRepo,
		bookingRepo: bookingRepo,
		maintRepo:   maintRepo,
	}
}

func (s *toolService) CreateTool(ctx context.Context, tool *domain.Tool) error {
	if tool.Condition == "" {
		tool.Condition = domain.ToolConditionGood
	}
	return s.toolRepo.Create(ctx, tool)
}

// GetTool returns the tool with its status derived from associated records.
// The status is recomputed on every read and never persisted.
func (s *toolService) GetTool(ctx context.Context, id int32) (*domain.ToolView, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	return s.buildView(ctx, tool)
}

func (s *toolService) buildView(ctx context.Context, tool *domain.Tool) (*domain.ToolView, error) {
	bookings, err := s.bookingRepo.ListByTool(ctx, tool.ID)
	if err != nil {
		return nil, err
	}
	maints, err := s.maintRepo.ListByTool(ctx, tool.ID)
	if err != nil {
		return nil, err
	}

	view := &domain.ToolView{
		Tool:   *tool,
		Status: domain.ResolveToolStatus(maints, bookings),
	}
	if active := domain.ActiveBooking(bookings); active != nil {
		view.ActiveBookingID = &active.ID
	}
	return view, nil
}

func (s *toolService) UpdateTool(ctx context.Context, tool *domain.Tool) error {
	err := s.toolRepo.Update(ctx, tool)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrToolNotFound
	}
	return err
}

func (s *toolService) DeleteTool(ctx context.Context, id int32) error {
	err := s.toolRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrToolNotFound
	}
	return err
}

func (s *toolService) ListTools(ctx context.Context, page, pageSize int32) ([]domain.ToolView, int32, error) {
	tools, count, err := s.toolRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	views := make([]domain.ToolView, 0, len(tools))
	for i := range tools {
		view, err := s.buildView(ctx, &tools[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, count, nil
}
