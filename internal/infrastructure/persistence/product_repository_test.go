package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindByIDForOwner(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "category", "price", "stock", "status"}).
			AddRow(productID, ownerID, "Coca Cola 600ml", "Bebidas", decimal.NewFromFloat(18.50), 24, "active")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForOwner(context.Background(), ownerID, productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Coca Cola 600ml", product.Name)
		assert.Equal(t, 24, product.Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByIDForOwner(context.Background(), ownerID, productID)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not return another owner's product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByIDForOwner(context.Background(), ownerID, productID)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_DecrementStockClamped(t *testing.T) {
	t.Run("decrements stock in a single statement", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		ownerID := uuid.New()

		mock.ExpectExec(`UPDATE products SET stock = CASE WHEN stock > \$1 THEN stock - \$2 ELSE 0 END, updated_at = CURRENT_TIMESTAMP WHERE owner_id = \$3 AND id = \$4`).
			WithArgs(3, 3, ownerID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DecrementStockClamped(context.Background(), ownerID, productID, 3)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		ownerID := uuid.New()

		mock.ExpectExec(`UPDATE products SET stock = CASE WHEN stock > \$1 THEN stock - \$2 ELSE 0 END, updated_at = CURRENT_TIMESTAMP WHERE owner_id = \$3 AND id = \$4`).
			WithArgs(2, 2, ownerID, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DecrementStockClamped(context.Background(), ownerID, productID, 2)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects non-positive quantity without touching the DB", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		err := repo.DecrementStockClamped(context.Background(), uuid.New(), uuid.New(), 0)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_CountForOwner(t *testing.T) {
	t.Run("counts products with category filter", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		ownerID := uuid.New()
		filter := shared.DefaultFilter()
		filter.Filters["category"] = "Bebidas"

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE owner_id = \$1 AND category = \$2`).
			WithArgs(ownerID, "Bebidas").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountForOwner(context.Background(), ownerID, filter)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
