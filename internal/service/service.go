package service

import (
	"context"
	"time"

	"toolkeeper-backend/internal/domain"
)

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID   int32
	Role domain.UserRole
}

// CreateBookingInput carries a booking request. UserID and Status are only
// honored for privileged actors; everyone else books for themselves with a
// pending status.
type CreateBookingInput struct {
	Actor     Actor
	ToolID    int32
	UserID    int32
	StartDate time.Time
	EndDate   time.Time
	Status    domain.BookingStatus
	Notes     string
}

// CheckoutInput carries a checkout request for a tool. EndDate is only used
// for direct checkouts that create the active booking on the spot.
type CheckoutInput struct {
	Actor   Actor
	ToolID  int32
	EndDate time.Time
}

type ToolService interface {
	CreateTool(ctx context.Context, tool *domain.Tool) error
	GetTool(ctx context.Context, id int32) (*domain.ToolView, error)
	UpdateTool(ctx context.Context, tool *domain.Tool) error
	DeleteTool(ctx context.Context, id int32) error
	ListTools(ctx context.Context, page, pageSize int32) ([]domain.ToolView, int32, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ApproveBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error)
	RejectBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor Actor, id int32) (*domain.Booking, error)
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Booking, error)
	Checkin(ctx context.Context, actor Actor, toolID int32) (*domain.Booking, error)
}

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) error
	GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m *domain.Maintenance) error
	ListMaintenances(ctx context.Context, status string, page, pageSize int32) ([]domain.Maintenance, int32, error)
	// ConsumeSparePart assigns quantity units of a spare part to a
	// maintenance, decrementing stock transactionally.
	ConsumeSparePart(ctx context.Context, maintenanceID, partID, quantity int32) (*domain.SparePart, error)
}

type SparePartService interface {
	CreateSparePart(ctx context.Context, part *domain.SparePart) error
	GetSparePart(ctx context.Context, id int32) (*domain.SparePart, error)
	UpdateSparePart(ctx context.Context, part *domain.SparePart) error
	ListSpareParts(ctx context.Context, page, pageSize int32) ([]domain.SparePart, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, to, requesterName, toolName string, start, end time.Time) error
	SendBookingDecisionNotification(ctx context.Context, to, toolName string, approved bool) error
	SendOverdueNotice(ctx context.Context, to, toolName string, end time.Time) error
	SendMaintenanceReminder(ctx context.Context, to, toolName, description string, start time.Time) error
	SendLowStockAlert(ctx context.Context, to string, parts []domain.SparePart) error
}
