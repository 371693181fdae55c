package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/repository"
	"toolkeeper-backend/internal/repository/postgres"
)

func TestToolRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()
	now := time.Now()

	tool := &domain.Tool{Name: "Circular Saw", Description: "230mm blade", Condition: domain.ToolConditionGood}

	mock.ExpectQuery("INSERT INTO tools").
		WithArgs(tool.Name, tool.Description, tool.Condition, tool.OwnerID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(1, now, now))

	err = repo.Create(ctx, tool)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), tool.ID)
}

func TestToolRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "condition", "owner_id", "created_on", "updated_on", "deleted_on"}).
			AddRow(1, "Circular Saw", "230mm blade", "good", nil, now, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE id").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		tool, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Circular Saw", tool.Name)
		assert.Equal(t, domain.ToolConditionGood, tool.Condition)
		assert.Nil(t, tool.DeletedOn)
	})

	t.Run("SoftDeletedHidden", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE id").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "condition", "owner_id", "created_on", "updated_on", "deleted_on"}))

		_, err := repo.GetByID(ctx, 2)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestToolRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	t.Run("SoftDeletes", func(t *testing.T) {
		mock.ExpectExec("UPDATE tools SET deleted_on").
			WithArgs(sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		mock.ExpectExec("UPDATE tools SET deleted_on").
			WithArgs(sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 1), repository.ErrNotFound)
	})
}
