package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "name", "description", "price", "category", "stock_quantity", "is_active", "created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, id, name string, price float64, stock int) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, nil, price, "kitchen", stock, true, now, now)
}

func TestRepository_GetProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRow(sqlmock.NewRows(productRowColumns), "prod-1", "Mug", 10000, 10)

		mock.ExpectQuery("SELECT .* FROM products").
			WithArgs(20, 0).
			WillReturnRows(rows)

		products, err := repo.GetProducts(context.Background(), QueryOptions{Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Mug", products[0].Name)
	})

	t.Run("WithFilters", func(t *testing.T) {
		category := "kitchen"
		minPrice := 5000.0

		mock.ExpectQuery("SELECT .* FROM products WHERE is_active = TRUE AND category = \\$1 AND price >= \\$2").
			WithArgs(category, minPrice, 20, 0).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		products, err := repo.GetProducts(context.Background(), QueryOptions{
			Filters: Filters{Category: &category, MinPrice: &minPrice},
			Limit:   20,
		})
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("SortByPrice", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products .* ORDER BY price ASC").
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		_, err := repo.GetProducts(context.Background(), QueryOptions{
			SortBy: SortPriceAsc,
			Limit:  20,
		})
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetProducts(context.Background(), QueryOptions{Limit: 20})
		assert.Error(t, err)
	})
}

func TestRepository_GetProductByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRow(sqlmock.NewRows(productRowColumns), "prod-1", "Mug", 10000, 10)

		mock.ExpectQuery("SELECT .* FROM products WHERE id = \\$1 AND is_active = TRUE").
			WithArgs("prod-1").
			WillReturnRows(rows)

		p, err := repo.GetProductByID(context.Background(), "prod-1", true)
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "prod-1", p.ID)
	})

	t.Run("IncludesInactive", func(t *testing.T) {
		rows := sqlmock.NewRows(productRowColumns).
			AddRow("prod-2", "Old Kettle", nil, 25000.0, nil, 0, false, time.Now(), time.Now())

		mock.ExpectQuery("SELECT .* FROM products WHERE id = \\$1").
			WithArgs("prod-2").
			WillReturnRows(rows)

		p, err := repo.GetProductByID(context.Background(), "prod-2", false)
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.False(t, p.IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products").
			WithArgs("prod-x").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetProductByID(context.Background(), "prod-x", true)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_GetProductsByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRow(sqlmock.NewRows(productRowColumns), "prod-1", "Mug", 10000, 10)
		rows = productRow(rows, "prod-2", "Kettle", 25000, 3)

		mock.ExpectQuery("SELECT .* FROM products WHERE id = ANY").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		products, err := repo.GetProductsByIDs(context.Background(), []string{"prod-1", "prod-2"})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("MissingIDsAreAbsent", func(t *testing.T) {
		rows := productRow(sqlmock.NewRows(productRowColumns), "prod-1", "Mug", 10000, 10)

		mock.ExpectQuery("SELECT .* FROM products WHERE id = ANY").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		products, err := repo.GetProductsByIDs(context.Background(), []string{"prod-1", "prod-x"})
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"category"}).
			AddRow("bath").
			AddRow("kitchen")

		mock.ExpectQuery("SELECT DISTINCT category FROM products").
			WillReturnRows(rows)

		categories, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"bath", "kitchen"}, categories)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT DISTINCT category").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCategories(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_CountProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.CountProducts(context.Background(), Filters{})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})

	t.Run("WithCategory", func(t *testing.T) {
		category := "kitchen"

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products WHERE is_active = TRUE AND category = \\$1").
			WithArgs(category).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountProducts(context.Background(), Filters{Category: &category})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}
