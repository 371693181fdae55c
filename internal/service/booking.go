package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/logger"
	"toolkeeper-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	toolRepo    repository.ToolRepository
	maintRepo   repository.MaintenanceRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	toolRepo repository.ToolRepository,
	maintRepo repository.MaintenanceRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		toolRepo:    toolRepo,
		maintRepo:   maintRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		now:         time.Now,
	}
}

// CreateBooking validates the requested interval, runs the conflict check
// against the tool's bookings and maintenances, and persists the booking.
// The date validation always runs before any conflict check.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	if !in.StartDate.Before(in.EndDate) {
		return nil, ErrInvalidDateRange
	}

	tool, err := s.toolRepo.GetByID(ctx, in.ToolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	userID := in.Actor.ID
	status := domain.BookingStatusPending
	if in.Actor.Role.Privileged() {
		if in.UserID != 0 {
			userID = in.UserID
		}
		switch in.Status {
		case domain.BookingStatusApproved, domain.BookingStatusActive:
			status = in.Status
		case "", domain.BookingStatusPending:
			// keep pending
		default:
			return nil, ErrInvalidTransition
		}
	}

	if err := s.checkConflicts(ctx, in.ToolID, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ToolID:    in.ToolID,
		UserID:    userID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    status,
		Notes:     in.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// The exclusion constraint catches requests that raced past the
		// in-process check; report them as the same conflict.
		if errors.Is(err, repository.ErrBookingOverlap) {
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	if status == domain.BookingStatusPending {
		s.notifyManagers(ctx, booking, tool)
	}

	return booking, nil
}

func (s *bookingService) checkConflicts(ctx context.Context, toolID int32, start, end time.Time) error {
	bookings, err := s.bookingRepo.ListByTool(ctx, toolID)
	if err != nil {
		return err
	}
	if conflict := domain.FindBookingConflict(bookings, start, end); conflict != nil {
		return ErrBookingConflict
	}

	maints, err := s.maintRepo.ListByTool(ctx, toolID)
	if err != nil {
		return err
	}
	if conflict := domain.FindMaintenanceConflict(maints, start, end); conflict != nil {
		return ErrMaintenanceConflict
	}
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.Role.Privileged() {
		return nil, ErrPermissionDenied
	}
	return booking, nil
}

func (s *bookingService) getBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if actor.Role.Privileged() {
		return s.bookingRepo.List(ctx, status, page, pageSize)
	}
	return s.bookingRepo.ListByUser(ctx, actor.ID, status, page, pageSize)
}

func (s *bookingService) ApproveBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error) {
	return s.decideBooking(ctx, actor, id, domain.BookingStatusApproved)
}

func (s *bookingService) RejectBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error) {
	return s.decideBooking(ctx, actor, id, domain.BookingStatusRejected)
}

func (s *bookingService) decideBooking(ctx context.Context, actor Actor, id int32, decision domain.BookingStatus) (*domain.Booking, error) {
	if !actor.Role.Privileged() {
		return nil, ErrPermissionDenied
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrInvalidTransition
	}

	booking.Status = decision
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, booking, decision == domain.BookingStatusApproved)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID && !actor.Role.Privileged() {
		return nil, ErrPermissionDenied
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusApproved {
		return nil, ErrInvalidTransition
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Checkout activates the caller's approved booking that covers the current
// moment. Privileged callers without a covering booking fall through to a
// direct checkout: the time-of-call conflict probe runs and, when clear, an
// active booking from now until in.EndDate is created on the spot.
func (s *bookingService) Checkout(ctx context.Context, in CheckoutInput) (*domain.Booking, error) {
	if _, err := s.toolRepo.GetByID(ctx, in.ToolID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByTool(ctx, in.ToolID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	probe := now.Add(domain.CheckoutWindow)
	for i := range bookings {
		b := &bookings[i]
		if b.Status != domain.BookingStatusApproved || b.UserID != in.Actor.ID {
			continue
		}
		if domain.Overlaps(now, probe, b.StartDate, b.EndDate) {
			b.Status = domain.BookingStatusActive
			if err := s.bookingRepo.Update(ctx, b); err != nil {
				return nil, err
			}
			return b, nil
		}
	}

	if !in.Actor.Role.Privileged() {
		return nil, ErrBookingNotFound
	}
	if !now.Before(in.EndDate) {
		return nil, ErrInvalidDateRange
	}

	maints, err := s.maintRepo.ListByTool(ctx, in.ToolID)
	if err != nil {
		return nil, err
	}
	if bc, mc := domain.FindCheckoutConflict(bookings, maints, now); bc != nil {
		return nil, ErrBookingConflict
	} else if mc != nil {
		return nil, ErrMaintenanceConflict
	}

	booking := &domain.Booking{
		ToolID:    in.ToolID,
		UserID:    in.Actor.ID,
		StartDate: now,
		EndDate:   in.EndDate,
		Status:    domain.BookingStatusActive,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingOverlap) {
			return nil, ErrBookingConflict
		}
		return nil, err
	}
	return booking, nil
}

// Checkin completes the tool's active booking.
func (s *bookingService) Checkin(ctx context.Context, actor Actor, toolID int32) (*domain.Booking, error) {
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByTool(ctx, toolID)
	if err != nil {
		return nil, err
	}

	active := domain.ActiveBooking(bookings)
	if active == nil {
		return nil, ErrNoActiveBooking
	}
	if active.UserID != actor.ID && !actor.Role.Privileged() {
		return nil, ErrPermissionDenied
	}

	active.Status = domain.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, active); err != nil {
		return nil, err
	}
	return active, nil
}

// notifyManagers records an in-app notification for every manager and admin
// and emails them. Notification failures never fail the booking.
func (s *bookingService) notifyManagers(ctx context.Context, booking *domain.Booking, tool *domain.Tool) {
	requester, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("Failed to load booking requester for notification", "user_id", booking.UserID, "error", err)
		return
	}

	for _, role := range []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleManager} {
		recipients, err := s.userRepo.ListByRole(ctx, role)
		if err != nil {
			logger.Warn("Failed to list notification recipients", "role", role, "error", err)
			continue
		}
		for i := range recipients {
			note := &domain.Notification{
				UserID:  recipients[i].ID,
				Title:   "New booking request",
				Message: fmt.Sprintf("%s requested %s from %s to %s", requester.Name, tool.Name, booking.StartDate.Format("2006-01-02"), booking.EndDate.Format("2006-01-02")),
				Attributes: map[string]string{
					"type":       "booking_request",
					"booking_id": fmt.Sprintf("%d", booking.ID),
					"tool_id":    fmt.Sprintf("%d", booking.ToolID),
				},
			}
			if err := s.noteRepo.Create(ctx, note); err != nil {
				logger.Warn("Failed to create notification", "user_id", recipients[i].ID, "error", err)
			}
			if err := s.emailSvc.SendBookingRequestNotification(ctx, recipients[i].Email, requester.Name, tool.Name, booking.StartDate, booking.EndDate); err != nil {
				logger.Warn("Failed to send booking request email", "to", recipients[i].Email, "error", err)
			}
		}
	}
}

func (s *bookingService) notifyDecision(ctx context.Context, booking *domain.Booking, approved bool) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("Failed to load booking user for notification", "user_id", booking.UserID, "error", err)
		return
	}
	tool, err := s.toolRepo.GetByID(ctx, booking.ToolID)
	if err != nil {
		logger.Warn("Failed to load tool for notification", "tool_id", booking.ToolID, "error", err)
		return
	}

	title := "Booking rejected"
	if approved {
		title = "Booking approved"
	}
	note := &domain.Notification{
		UserID:  user.ID,
		Title:   title,
		Message: fmt.Sprintf("Your booking for %s was %s", tool.Name, booking.Status),
		Attributes: map[string]string{
			"type":       "booking_decision",
			"booking_id": fmt.Sprintf("%d", booking.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create notification", "user_id", user.ID, "error", err)
	}
	if err := s.emailSvc.SendBookingDecisionNotification(ctx, user.Email, tool.Name, approved); err != nil {
		logger.Warn("Failed to send booking decision email", "to", user.Email, "error", err)
	}
}
