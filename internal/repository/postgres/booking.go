package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, tool_id, user_id, start_date, end_date, status, COALESCE(notes, ''), created_on, updated_on`

func scanBooking(row interface{ Scan(...any) error }, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.ToolID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
}

// Create inserts the booking. The bookings table carries an exclusion
// constraint on (tool_id, daterange(start_date, end_date)) for non-terminal
// statuses; a violation surfaces as repository.ErrBookingOverlap so the
// check-then-act race cannot double-book a tool.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (tool_id, user_id, start_date, end_date, status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, b.ToolID, b.UserID, b.StartDate, b.EndDate, b.Status, b.Notes, time.Now()).
		Scan(&b.ID, &b.CreatedOn, &b.UpdatedOn)
	return translateError(err)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := scanBooking(r.db.QueryRowContext(ctx, query, id), b); err != nil {
		return nil, translateError(err)
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET start_date=$1, end_date=$2, status=$3, notes=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, b.StartDate, b.EndDate, b.Status, b.Notes, time.Now(), b.ID)
	if err != nil {
		return translateError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListByTool(ctx context.Context, toolID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tool_id = $1 ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, toolID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	base := `FROM bookings WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	return r.listPage(ctx, base, args, argIdx, page, pageSize)
}

func (r *bookingRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	base := `FROM bookings WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	return r.listPage(ctx, base, args, argIdx, page, pageSize)
}

func (r *bookingRepository) listPage(ctx context.Context, base string, args []interface{}, argIdx int, page, pageSize int32) ([]domain.Booking, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, translateError(err)
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + bookingColumns + " " + base +
		fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) ListActivePastEnd(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'active' AND end_date < $1 ORDER BY end_date ASC`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
