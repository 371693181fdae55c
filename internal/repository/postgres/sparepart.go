package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type sparePartRepository struct {
	db *sql.DB
}

func NewSparePartRepository(db *sql.DB) repository.SparePartRepository {
	return &sparePartRepository{db: db}
}

const sparePartColumns = `id, name, quantity, min_quantity, unit_cost_cents, created_on, updated_on`

func scanSparePart(row interface{ Scan(...any) error }, p *domain.SparePart) error {
	return row.Scan(&p.ID, &p.Name, &p.Quantity, &p.MinQuantity, &p.UnitCostCents, &p.CreatedOn, &p.UpdatedOn)
}

func (r *sparePartRepository) Create(ctx context.Context, p *domain.SparePart) error {
	query := `INSERT INTO spare_parts (name, quantity, min_quantity, unit_cost_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Quantity, p.MinQuantity, p.UnitCostCents, time.Now()).
		Scan(&p.ID, &p.CreatedOn, &p.UpdatedOn)
	return translateError(err)
}

func (r *sparePartRepository) GetByID(ctx context.Context, id int32) (*domain.SparePart, error) {
	p := &domain.SparePart{}
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE id = $1`
	if err := scanSparePart(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *sparePartRepository) Update(ctx context.Context, p *domain.SparePart) error {
	query := `UPDATE spare_parts SET name=$1, quantity=$2, min_quantity=$3, unit_cost_cents=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Quantity, p.MinQuantity, p.UnitCostCents, time.Now(), p.ID)
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

func (r *sparePartRepository) List(ctx context.Context, page, pageSize int32) ([]domain.SparePart, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM spare_parts`).Scan(&count); err != nil {
		return nil, 0, translateError(err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var parts []domain.SparePart
	for rows.Next() {
		var p domain.SparePart
		if err := scanSparePart(rows, &p); err != nil {
			return nil, 0, err
		}
		parts = append(parts, p)
	}
	return parts, count, rows.Err()
}

// ConsumeForMaintenance decrements part stock and records the usage in a
// single transaction. The row is locked first so concurrent assignments
// serialize; insufficient stock rolls the whole transaction back.
func (r *sparePartRepository) ConsumeForMaintenance(ctx context.Context, maintenanceID, partID, quantity int32) (*domain.SparePart, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p := &domain.SparePart{}
	lockQuery := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE id = $1 FOR UPDATE`
	if err := scanSparePart(tx.QueryRowContext(ctx, lockQuery, partID), p); err != nil {
		return nil, translateError(err)
	}

	if p.Quantity < quantity {
		return nil, repository.ErrInsufficientQuantity
	}

	p.Quantity -= quantity
	_, err = tx.ExecContext(ctx, `UPDATE spare_parts SET quantity = $1, updated_on = $2 WHERE id = $3`,
		p.Quantity, time.Now(), partID)
	if err != nil {
		return nil, translateError(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO maintenance_parts (maintenance_id, spare_part_id, quantity_used)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (maintenance_id, spare_part_id)
		 DO UPDATE SET quantity_used = maintenance_parts.quantity_used + EXCLUDED.quantity_used`,
		maintenanceID, partID, quantity)
	if err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *sparePartRepository) ListBelowMinimum(ctx context.Context) ([]domain.SparePart, error) {
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE quantity <= min_quantity ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var parts []domain.SparePart
	for rows.Next() {
		var p domain.SparePart
		if err := scanSparePart(rows, &p); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
