package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx persists the order, its line items and the stock
	// decrements as a single transaction and returns the new order id.
	CreateOrderTx(ctx context.Context, params CreateOrderParams, totalAmount float64, items []OrderItem) (string, error)

	GetOrders(ctx context.Context, userID string) ([]*Order, error)
	GetOrderByID(ctx context.Context, orderID, userID string) (*Order, error)
	GetOrderWithItems(ctx context.Context, orderID, userID string) (*Order, error)

	// ConfirmOrder moves pending -> confirmed. It reports whether a row was
	// actually transitioned; callers treat "already confirmed" as success.
	ConfirmOrder(ctx context.Context, orderID, userID string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(
	ctx context.Context,
	params CreateOrderParams,
	totalAmount float64,
	items []OrderItem,
) (string, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("user_id", params.UserID),
		zap.Int("item_count", len(items)),
	)

	addressJSON, err := json.Marshal(params.ShippingAddress)
	if err != nil {
		return "", err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	// 1. Insert the order in pending state.
	var orderID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id,
			total_amount,
			status,
			shipping_address,
			order_note
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		params.UserID,
		totalAmount,
		StatusPending,
		addressJSON,
		params.OrderNote,
	).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return "", err
	}

	// 2. Insert line-item snapshots and decrement stock. The decrement is
	// conditional on sufficient stock; zero affected rows means stock
	// dropped between validation and write, and the whole order aborts.
	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id,
				product_id,
				product_name,
				price,
				quantity
			) VALUES ($1, $2, $3, $4, $5)
		`,
			orderID,
			item.ProductID,
			item.ProductName,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return "", err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock_quantity = stock_quantity - $1,
			    updated_at = NOW()
			WHERE id = $2 AND stock_quantity >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return "", err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return "", err
		}
		if affected == 0 {
			log.Warn("stock dropped between validation and write",
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return "", ErrInsufficientStock
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return "", err
	}

	log.Info("order created", zap.String("order_id", orderID))

	return orderID, nil
}

const orderColumns = `
	id,
	user_id,
	total_amount,
	status,
	shipping_address,
	order_note,
	created_at,
	updated_at
`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var (
		o           Order
		addressJSON []byte
	)
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.TotalAmount,
		&o.Status,
		&addressJSON,
		&o.OrderNote,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
			return nil, err
		}
	}

	return &o, nil
}

func (r *repository) GetOrders(ctx context.Context, userID string) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrders"),
		zap.String("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

// GetOrderByID returns (nil, nil) both when the order does not exist and
// when it belongs to someone else; the two are indistinguishable on purpose.
func (r *repository) GetOrderByID(ctx context.Context, orderID, userID string) (*Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE id = $1 AND user_id = $2
	`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) GetOrderWithItems(ctx context.Context, orderID, userID string) (*Order, error) {
	o, err := r.GetOrderByID(ctx, orderID, userID)
	if err != nil || o == nil {
		return o, err
	}

	query := `
	SELECT
		id,
		order_id,
		product_id,
		product_name,
		price,
		quantity,
		created_at
	FROM order_items
	WHERE order_id = $1
	ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Price,
			&item.Quantity,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) ConfirmOrder(ctx context.Context, orderID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND status = $4
	`, StatusConfirmed, orderID, userID, StatusPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
