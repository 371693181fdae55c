package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
	"toolkeeper-backend/internal/repository/postgres"
)

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "tool_id", "user_id", "start_date", "end_date", "status", "notes", "created_on", "updated_on"})
	for _, b := range bookings {
		rows.AddRow(b.ID, b.ToolID, b.UserID, b.StartDate, b.EndDate, b.Status, b.Notes, b.CreatedOn, b.UpdatedOn)
	}
	return rows
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Booking{
			ToolID:    1,
			UserID:    7,
			StartDate: now,
			EndDate:   now.Add(72 * time.Hour),
			Status:    domain.BookingStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.ToolID, b.UserID, b.StartDate, b.EndDate, b.Status, b.Notes, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(10, now, now))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), b.ID)
	})

	t.Run("ExclusionViolation", func(t *testing.T) {
		b := &domain.Booking{
			ToolID:    1,
			UserID:    7,
			StartDate: now,
			EndDate:   now.Add(72 * time.Hour),
			Status:    domain.BookingStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.ToolID, b.UserID, b.StartDate, b.EndDate, b.Status, b.Notes, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

		err := repo.Create(ctx, b)
		assert.ErrorIs(t, err, repository.ErrBookingOverlap)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		want := &domain.Booking{
			ID: 10, ToolID: 1, UserID: 7,
			StartDate: now, EndDate: now.Add(72 * time.Hour),
			Status: domain.BookingStatusApproved, CreatedOn: now, UpdatedOn: now,
		}
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int32(10)).
			WillReturnRows(bookingRows(want))

		got, err := repo.GetByID(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Status, got.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(bookingRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	b := &domain.Booking{
		ID: 10, StartDate: now, EndDate: now.Add(72 * time.Hour),
		Status: domain.BookingStatusApproved,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET").
			WithArgs(b.StartDate, b.EndDate, b.Status, b.Notes, sqlmock.AnyArg(), b.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, b)
		assert.NoError(t, err)
	})

	t.Run("MissingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET").
			WithArgs(b.StartDate, b.EndDate, b.Status, b.Notes, sqlmock.AnyArg(), b.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, b)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBookingRepository_ListActivePastEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	overdue := &domain.Booking{
		ID: 10, ToolID: 1, UserID: 7,
		StartDate: now.Add(-96 * time.Hour), EndDate: now.Add(-24 * time.Hour),
		Status: domain.BookingStatusActive, CreatedOn: now, UpdatedOn: now,
	}
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE status = 'active' AND end_date").
		WithArgs(now).
		WillReturnRows(bookingRows(overdue))

	got, err := repo.ListActivePastEnd(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int32(10), got[0].ID)
}
