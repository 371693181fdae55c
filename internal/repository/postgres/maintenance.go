package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, tool_id, COALESCE(description, ''), cost_cents, start_date, end_date, status, created_on, updated_on`

func scanMaintenance(row interface{ Scan(...any) error }, m *domain.Maintenance) error {
	return row.Scan(&m.ID, &m.ToolID, &m.Description, &m.CostCents, &m.StartDate, &m.EndDate, &m.Status, &m.CreatedOn, &m.UpdatedOn)
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenances (tool_id, description, cost_cents, start_date, end_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, m.ToolID, m.Description, m.CostCents, m.StartDate, m.EndDate, m.Status, time.Now()).
		Scan(&m.ID, &m.CreatedOn, &m.UpdatedOn)
	return translateError(err)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	if err := scanMaintenance(r.db.QueryRowContext(ctx, query, id), m); err != nil {
		return nil, translateError(err)
	}
	return m, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `UPDATE maintenances SET description=$1, cost_cents=$2, start_date=$3, end_date=$4, status=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, m.Description, m.CostCents, m.StartDate, m.EndDate, m.Status, time.Now(), m.ID)
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

func (r *maintenanceRepository) ListByTool(ctx context.Context, toolID int32) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE tool_id = $1 ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, toolID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return collectMaintenances(rows)
}

func (r *maintenanceRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	base := `FROM maintenances WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, translateError(err)
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + maintenanceColumns + " " + base +
		fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	maints, err := collectMaintenances(rows)
	return maints, count, err
}

func (r *maintenanceRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances
	          WHERE status = 'scheduled' AND start_date >= $1 AND start_date < $2 ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return collectMaintenances(rows)
}

func collectMaintenances(rows *sql.Rows) ([]domain.Maintenance, error) {
	var maints []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := scanMaintenance(rows, &m); err != nil {
			return nil, err
		}
		maints = append(maints, m)
	}
	return maints, rows.Err()
}
