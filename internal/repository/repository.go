package repository

import (
	"context"
	"errors"
	"time"

	"toolkeeper-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("record already exists")
	// ErrBookingOverlap is returned when the database exclusion constraint
	// rejects a booking insert that raced past the application-level check.
	ErrBookingOverlap = errors.New("booking overlaps an existing reservation")
	// ErrInsufficientQuantity is returned when a spare part decrement would
	// drive the quantity negative; the enclosing transaction is rolled back.
	ErrInsufficientQuantity = errors.New("insufficient spare part quantity")
)

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Tool, int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListByTool returns every booking associated with the tool, terminal or
	// not. Status derivation and conflict checks filter in memory.
	ListByTool(ctx context.Context, toolID int32) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListActivePastEnd returns active bookings whose end date is before asOf.
	ListActivePastEnd(ctx context.Context, asOf time.Time) ([]domain.Booking, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int32) (*domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	ListByTool(ctx context.Context, toolID int32) ([]domain.Maintenance, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Maintenance, int32, error)
	// ListScheduledBetween returns scheduled maintenances starting in [from, to).
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error)
}

type SparePartRepository interface {
	Create(ctx context.Context, part *domain.SparePart) error
	GetByID(ctx context.Context, id int32) (*domain.SparePart, error)
	Update(ctx context.Context, part *domain.SparePart) error
	List(ctx context.Context, page, pageSize int32) ([]domain.SparePart, int32, error)
	// ConsumeForMaintenance decrements the part quantity and records the
	// usage in one transaction, rolling back with ErrInsufficientQuantity
	// when the stock cannot cover the request.
	ConsumeForMaintenance(ctx context.Context, maintenanceID, partID, quantity int32) (*domain.SparePart, error)
	ListBelowMinimum(ctx context.Context) ([]domain.SparePart, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
