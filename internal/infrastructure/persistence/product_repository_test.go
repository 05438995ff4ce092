package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amconceito/storefront/internal/domain/shared"
)

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deletes existing product", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(gormDB)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), shared.ErrNotFound)
	})
}

func TestGormProductRepository_DeleteVariant(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProductRepository(gormDB)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM "product_stock" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteVariant(context.Background(), id))
}

func TestGormProductRepository_CountByClassification(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormProductRepository(gormDB)

	classificationID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE classification_id = \$1`).
		WithArgs(classificationID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByClassification(context.Background(), classificationID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
