package postgres

import (
	"database/sql"

	"toolkeeper-backend/internal/repository"

	"github.com/lib/pq"
)

// Store bundles all repository implementations over one connection pool.
type Store struct {
	db *sql.DB
	repository.ToolRepository
	repository.BookingRepository
	repository.MaintenanceRepository
	repository.SparePartRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ToolRepository:         NewToolRepository(db),
		BookingRepository:      NewBookingRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		SparePartRepository:    NewSparePartRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// Postgres error codes mapped to repository sentinels.
const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
)

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return repository.ErrDuplicate
		case codeExclusionViolation:
			return repository.ErrBookingOverlap
		}
	}
	return err
}
