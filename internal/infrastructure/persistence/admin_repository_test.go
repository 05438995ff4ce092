package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amconceito/storefront/internal/domain/shared"
)

func TestGormAdminRepository_FindByUsername(t *testing.T) {
	t.Run("finds existing admin", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAdminRepository(gormDB)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(uuid.New(), "admin", "$2a$12$hash")

		mock.ExpectQuery(`SELECT \* FROM "admin" WHERE username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("admin", 1).
			WillReturnRows(rows)

		admin, err := repo.FindByUsername(context.Background(), "admin")

		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Username)
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAdminRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "admin" WHERE username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormAdminRepository_Count(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormAdminRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "admin"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
