package cart

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

var cartItemColumns = []string{"id", "user_id", "product_id", "quantity", "created_at", "updated_at"}

var cartItemWithProductColumns = []string{
	"id", "user_id", "product_id", "quantity", "created_at", "updated_at",
	"p_id", "p_name", "p_description", "p_price", "p_category", "p_stock_quantity", "p_is_active", "p_created_at", "p_updated_at",
}

func TestRepository_GetCartItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemWithProductColumns).
			AddRow(
				"cart-1", "user-1", "prod-1", 2, now, now,
				"prod-1", "Mug", nil, 10000.0, "kitchen", 10, true, now, now,
			)

		mock.ExpectQuery("SELECT .* FROM cart_items c JOIN products p").
			WithArgs("user-1").
			WillReturnRows(rows)

		items, err := repo.GetCartItems(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "prod-1", items[0].ProductID)
		assert.NotNil(t, items[0].Product)
		assert.Equal(t, 10000.0, items[0].Product.Price)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items c JOIN products p").
			WithArgs("user-2").
			WillReturnRows(sqlmock.NewRows(cartItemWithProductColumns))

		items, err := repo.GetCartItems(context.Background(), "user-2")
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCartItems(context.Background(), "user-1")
		assert.Error(t, err)
	})
}

func TestRepository_GetCartItemByUserAndProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemColumns).
			AddRow("cart-1", "user-1", "prod-1", 2, now, now)

		mock.ExpectQuery("SELECT .* FROM cart_items").
			WithArgs("user-1", "prod-1").
			WillReturnRows(rows)

		item, err := repo.GetCartItemByUserAndProduct(context.Background(), "user-1", "prod-1")
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "cart-1", item.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items").
			WithArgs("user-1", "prod-2").
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetCartItemByUserAndProduct(context.Background(), "user-1", "prod-2")
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_GetCartItemByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemWithProductColumns).
			AddRow(
				"cart-1", "user-1", "prod-1", 2, now, now,
				"prod-1", "Mug", nil, 10000.0, "kitchen", 10, true, now, now,
			)

		mock.ExpectQuery("SELECT .* FROM cart_items c JOIN products p").
			WithArgs("cart-1", "user-1").
			WillReturnRows(rows)

		item, err := repo.GetCartItemByID(context.Background(), "cart-1", "user-1")
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, 10, item.Product.StockQuantity)
	})

	t.Run("ForeignLine", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items c JOIN products p").
			WithArgs("cart-1", "user-2").
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetCartItemByID(context.Background(), "cart-1", "user-2")
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_CreateCartItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	params := CreateCartItemParams{
		UserID:    "user-1",
		ProductID: "prod-1",
		Quantity:  2,
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemColumns).
			AddRow("cart-1", "user-1", "prod-1", 2, now, now)

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(params.UserID, params.ProductID, params.Quantity).
			WillReturnRows(rows)

		item, err := repo.CreateCartItem(context.Background(), params)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "cart-1", item.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.CreateCartItem(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateCartItemQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cartItemColumns).
			AddRow("cart-1", "user-1", "prod-1", 5, now, now)

		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(5, "cart-1").
			WillReturnRows(rows)

		item, err := repo.UpdateCartItemQuantity(context.Background(), "cart-1", 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(5, "cart-x").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateCartItemQuantity(context.Background(), "cart-x", 5)
		assert.Equal(t, ErrCartItemNotFound, err)
	})
}

func TestRepository_RemoveFromCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("cart-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveFromCart(context.Background(), "cart-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("cart-x", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveFromCart(context.Background(), "cart-x", "user-1")
		assert.Equal(t, ErrCartItemNotFound, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WillReturnError(errors.New("db error"))

		err := repo.RemoveFromCart(context.Background(), "cart-1", "user-1")
		assert.Error(t, err)
	})
}

func TestRepository_ClearCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.ClearCart(context.Background(), "user-1")
		assert.NoError(t, err)
	})

	t.Run("AlreadyEmpty", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("user-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ClearCart(context.Background(), "user-2")
		assert.NoError(t, err)
	})
}
