package product

import (
	"context"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the read-only catalog surface.
type Service interface {
	GetProducts(ctx context.Context, opts QueryOptions) ([]*Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CountProducts(ctx context.Context, filters Filters) (int64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProducts(ctx context.Context, opts QueryOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProducts"),
		zap.Int("limit", opts.Limit),
		zap.Int("offset", opts.Offset),
	)

	// ---------- pagination ----------
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	products, err := s.repo.GetProducts(ctx, opts)
	if err != nil {
		log.Error("failed to get products", zap.Error(err))
		return nil, err
	}

	log.Info("success get products", zap.Int("count", len(products)))
	return products, nil
}

// GetProductByID returns an active product or ErrProductNotFound. Inactive
// products are invisible to the public catalog by default.
func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetProductByID(ctx, id, true)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return p, nil
}

func (s *service) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get categories", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (s *service) CountProducts(ctx context.Context, filters Filters) (int64, error) {
	count, err := s.repo.CountProducts(ctx, filters)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count products", zap.Error(err))
		return 0, err
	}

	return count, nil
}
