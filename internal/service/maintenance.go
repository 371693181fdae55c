package service

import (
	"context"
	"errors"
	"fmt"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/logger"
	"toolkeeper-backend/internal/repository"
)

type maintenanceService struct {
	maintRepo   repository.MaintenanceRepository
	toolRepo    repository.ToolRepository
	bookingRepo repository.BookingRepository
	partRepo    repository.SparePartRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
}

func NewMaintenanceService(
	maintRepo repository.MaintenanceRepository,
	toolRepo repository.ToolRepository,
	bookingRepo repository.BookingRepository,
	partRepo repository.SparePartRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
) MaintenanceService {
	return &maintenanceService{
		maintRepo:   maintRepo,
		toolRepo:    toolRepo,
		bookingRepo: bookingRepo,
		partRepo:    partRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
	}
}

// validTransitions lists the allowed status moves. A completed maintenance
// is final.
var validTransitions = map[domain.MaintenanceStatus][]domain.MaintenanceStatus{
	domain.MaintenanceStatusRequested:  {domain.MaintenanceStatusScheduled},
	domain.MaintenanceStatusScheduled:  {domain.MaintenanceStatusInProgress, domain.MaintenanceStatusRequested},
	domain.MaintenanceStatusInProgress: {domain.MaintenanceStatusCompleted},
}

func transitionAllowed(from, to domain.MaintenanceStatus) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	if _, err := s.toolRepo.GetByID(ctx, m.ToolID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrToolNotFound
		}
		return err
	}
	if m.EndDate != nil && !m.StartDate.Before(*m.EndDate) {
		return ErrInvalidDateRange
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceStatusRequested
	}

	// A scheduled window must not collide with bookings already on the
	// calendar; a bare request carries no window yet and skips the check.
	if m.Status != domain.MaintenanceStatusRequested && m.EndDate != nil {
		bookings, err := s.bookingRepo.ListByTool(ctx, m.ToolID)
		if err != nil {
			return err
		}
		if conflict := domain.FindBookingConflict(bookings, m.StartDate, *m.EndDate); conflict != nil {
			return ErrBookingConflict
		}
	}

	return s.maintRepo.Create(ctx, m)
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error) {
	m, err := s.maintRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) UpdateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	current, err := s.GetMaintenance(ctx, m.ID)
	if err != nil {
		return err
	}
	if !transitionAllowed(current.Status, m.Status) {
		return ErrInvalidTransition
	}
	if m.EndDate != nil && !m.StartDate.Before(*m.EndDate) {
		return ErrInvalidDateRange
	}
	return s.maintRepo.Update(ctx, m)
}

func (s *maintenanceService) ListMaintenances(ctx context.Context, status string, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	return s.maintRepo.List(ctx, status, page, pageSize)
}

func (s *maintenanceService) ConsumeSparePart(ctx context.Context, maintenanceID, partID, quantity int32) (*domain.SparePart, error) {
	if quantity <= 0 {
		return nil, ErrInsufficientQuantity
	}

	m, err := s.GetMaintenance(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if m.Status == domain.MaintenanceStatusCompleted {
		return nil, ErrInvalidTransition
	}

	part, err := s.partRepo.ConsumeForMaintenance(ctx, maintenanceID, partID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrSparePartNotFound
		case errors.Is(err, repository.ErrInsufficientQuantity):
			return nil, ErrInsufficientQuantity
		}
		return nil, err
	}

	if part.LowStock() {
		s.notifyLowStock(ctx, part)
	}
	return part, nil
}

func (s *maintenanceService) notifyLowStock(ctx context.Context, part *domain.SparePart) {
	recipients, err := s.userRepo.ListByRole(ctx, domain.UserRoleManager)
	if err != nil {
		logger.Warn("Failed to list low stock recipients", "error", err)
		return
	}
	for i := range recipients {
		note := &domain.Notification{
			UserID:  recipients[i].ID,
			Title:   "Spare part low on stock",
			Message: fmt.Sprintf("%s is down to %d units (minimum %d)", part.Name, part.Quantity, part.MinQuantity),
			Attributes: map[string]string{
				"type":          "low_stock",
				"spare_part_id": fmt.Sprintf("%d", part.ID),
			},
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Warn("Failed to create low stock notification", "user_id", recipients[i].ID, "error", err)
		}
	}
}
