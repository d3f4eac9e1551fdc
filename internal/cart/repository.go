package cart

import (
	"context"
	"database/sql"
	"time"

	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartItems(ctx context.Context, userID string) ([]*CartItem, error)
	GetCartItemByUserAndProduct(ctx context.Context, userID, productID string) (*CartItem, error)
	GetCartItemByID(ctx context.Context, cartItemID, userID string) (*CartItem, error)
	CreateCartItem(ctx context.Context, params CreateCartItemParams) (*CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, cartItemID string, quantity int) (*CartItem, error)
	RemoveFromCart(ctx context.Context, cartItemID, userID string) error
	ClearCart(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetCartItems returns the user's cart newest-first with the product row
// joined in for display.
func (r *repository) GetCartItems(ctx context.Context, userID string) ([]*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartItems"),
		zap.String("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.user_id,
		c.product_id,
		c.quantity,
		c.created_at,
		c.updated_at,

		p.id,
		p.name,
		p.description,
		p.price,
		p.category,
		p.stock_quantity,
		p.is_active,
		p.created_at,
		p.updated_at
	FROM cart_items c
	JOIN products p ON c.product_id = p.id
	WHERE c.user_id = $1
	ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	items := make([]*CartItem, 0)
	for rows.Next() {
		item := &CartItem{Product: &product.Product{}}
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,

			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.Category,
			&item.Product.StockQuantity,
			&item.Product.IsActive,
			&item.Product.CreatedAt,
			&item.Product.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return items, nil
}

func (r *repository) GetCartItemByUserAndProduct(
	ctx context.Context,
	userID, productID string,
) (*CartItem, error) {

	query := `
	SELECT
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	FROM cart_items
	WHERE user_id = $1 AND product_id = $2
	`

	var item CartItem
	row := r.db.QueryRowContext(ctx, query, userID, productID)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// GetCartItemByID loads a line scoped to its owner, with the product joined
// in so callers can validate against live stock.
func (r *repository) GetCartItemByID(
	ctx context.Context,
	cartItemID, userID string,
) (*CartItem, error) {

	query := `
	SELECT
		c.id,
		c.user_id,
		c.product_id,
		c.quantity,
		c.created_at,
		c.updated_at,

		p.id,
		p.name,
		p.description,
		p.price,
		p.category,
		p.stock_quantity,
		p.is_active,
		p.created_at,
		p.updated_at
	FROM cart_items c
	JOIN products p ON c.product_id = p.id
	WHERE c.id = $1 AND c.user_id = $2
	`

	item := &CartItem{Product: &product.Product{}}
	row := r.db.QueryRowContext(ctx, query, cartItemID, userID)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,

		&item.Product.ID,
		&item.Product.Name,
		&item.Product.Description,
		&item.Product.Price,
		&item.Product.Category,
		&item.Product.StockQuantity,
		&item.Product.IsActive,
		&item.Product.CreatedAt,
		&item.Product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) CreateCartItem(
	ctx context.Context,
	params CreateCartItemParams,
) (*CartItem, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCartItem"),
		zap.String("user_id", params.UserID),
		zap.String("product_id", params.ProductID),
	)

	query := `
	INSERT INTO cart_items (
		user_id,
		product_id,
		quantity
	)
	VALUES ($1, $2, $3)
	RETURNING
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	`

	var item CartItem
	row := r.db.QueryRowContext(
		ctx,
		query,
		params.UserID,
		params.ProductID,
		params.Quantity,
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Info("success create cart item", zap.String("cart_item_id", item.ID))

	return &item, nil
}

func (r *repository) UpdateCartItemQuantity(
	ctx context.Context,
	cartItemID string,
	quantity int,
) (*CartItem, error) {

	query := `
	UPDATE cart_items
	SET quantity = $1,
	    updated_at = NOW()
	WHERE id = $2
	RETURNING
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	`

	var item CartItem
	row := r.db.QueryRowContext(ctx, query, quantity, cartItemID)
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// RemoveFromCart deletes the line scoped to (cartItemID, userID). A miss is
// reported as ErrCartItemNotFound so callers can audit no-op deletes.
func (r *repository) RemoveFromCart(ctx context.Context, cartItemID, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND user_id = $2
	`, cartItemID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ClearCart removes every line for the user. Clearing an already-empty cart
// is not an error; the operation is idempotent by design.
func (r *repository) ClearCart(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1
	`, userID)
	return err
}
