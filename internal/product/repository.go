package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, opts QueryOptions) ([]*Product, error)
	GetProductByID(ctx context.Context, id string, onlyActive bool) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CountProducts(ctx context.Context, filters Filters) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id,
	name,
	description,
	price,
	category,
	stock_quantity,
	is_active,
	created_at,
	updated_at
`

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.StockQuantity,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func buildFilterClauses(filters Filters) (where []string, args []any) {
	if filters.IncludeInactive {
		where = append(where, "TRUE")
	} else {
		where = append(where, "is_active = TRUE")
	}

	if filters.Category != nil && *filters.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, *filters.Category)
	}
	if filters.MinPrice != nil {
		where = append(where, fmt.Sprintf("price >= $%d", len(args)+1))
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		where = append(where, fmt.Sprintf("price <= $%d", len(args)+1))
		args = append(args, *filters.MaxPrice)
	}

	return where, args
}

func orderByFor(sortBy SortOption) string {
	switch sortBy {
	case SortCreatedAtAsc:
		return "created_at ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortPriceAsc:
		return "price ASC"
	case SortNameAsc:
		return "name ASC"
	default:
		return "created_at DESC"
	}
}

func (r *repository) GetProducts(ctx context.Context, opts QueryOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProducts"),
	)

	start := time.Now()

	where, args := buildFilterClauses(opts.Filters)

	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY ` + orderByFor(opts.SortBy) + `
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]*Product, 0, opts.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) GetProductByID(ctx context.Context, id string, onlyActive bool) (*Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE id = $1
	`
	if onlyActive {
		query += " AND is_active = TRUE"
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// GetProductsByIDs fetches the authoritative rows for a set of product ids.
// Missing ids are simply absent from the result; the caller decides whether
// that is an error.
func (r *repository) GetProductsByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM products
	WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) GetCategories(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT category
	FROM products
	WHERE is_active = TRUE AND category IS NOT NULL
	ORDER BY category ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *repository) CountProducts(ctx context.Context, filters Filters) (int64, error) {
	where, args := buildFilterClauses(filters)

	query := `
	SELECT COUNT(*)
	FROM products
	WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
