package postgres

import (
	"context"
	"database/sql"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, name, COALESCE(description, ''), condition, owner_id, created_on, updated_on, deleted_on`

func scanTool(row interface{ Scan(...any) error }, t *domain.Tool) error {
	return row.Scan(&t.ID, &t.Name, &t.Description, &t.Condition, &t.OwnerID, &t.CreatedOn, &t.UpdatedOn, &t.DeletedOn)
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (name, description, condition, owner_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, t.Name, t.Description, t.Condition, t.OwnerID, time.Now()).
		Scan(&t.ID, &t.CreatedOn, &t.UpdatedOn)
	return translateError(err)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1 AND deleted_on IS NULL`
	if err := scanTool(r.db.QueryRowContext(ctx, query, id), t); err != nil {
		return nil, translateError(err)
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, condition=$3, owner_id=$4, updated_on=$5
	          WHERE id=$6 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.Condition, t.OwnerID, time.Now(), t.ID)
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

func (r *toolRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE tools SET deleted_on = $1 WHERE id = $2 AND deleted_on IS NULL`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
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

func (r *toolRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Tool, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM tools WHERE deleted_on IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, translateError(err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + toolColumns + ` FROM tools WHERE deleted_on IS NULL ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := scanTool(rows, &t); err != nil {
			return nil, 0, err
		}
		tools = append(tools, t)
	}
	return tools, count, rows.Err()
}
