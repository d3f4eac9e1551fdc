package order

import (
	"context"
	"math"

	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	// CreateOrder assembles the user's cart into a pending order and
	// returns the new order id.
	CreateOrder(ctx context.Context, params CreateOrderParams) (string, error)

	GetOrders(ctx context.Context, userID string) ([]*Order, error)

	// GetOrderDetail returns the order with its line items, or nil when the
	// order does not exist or is not owned by the caller.
	GetOrderDetail(ctx context.Context, userID, orderID string) (*Order, error)
}

type service struct {
	repo        Repository
	cartRepo    cart.Repository
	productRepo product.Repository
}

func NewService(repo Repository, cartRepo cart.Repository, productRepo product.Repository) Service {
	return &service{
		repo:        repo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CreateOrder runs the full assembly sequence: load cart, re-validate every
// line against the authoritative product rows, snapshot line items, persist
// order+items+stock decrements in one transaction, then clear the cart.
// Validation is sequential in cart order and the first failing line aborts
// the whole assembly.
func (s *service) CreateOrder(ctx context.Context, params CreateOrderParams) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("user_id", params.UserID),
	)

	if params.UserID == "" {
		return "", ErrUserNotAuthenticated
	}

	// 1. Load the current cart.
	lines, err := s.cartRepo.GetCartItems(ctx, params.UserID)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		metrics.OrdersFailed.WithLabelValues("persistence").Inc()
		return "", err
	}
	if len(lines) == 0 {
		metrics.OrdersFailed.WithLabelValues("empty_cart").Inc()
		return "", ErrEmptyCart
	}

	// 2. Re-fetch authoritative product rows. The product embedded in the
	// cart line is what the buyer saw; it is never trusted for price or
	// stock.
	productIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		metrics.OrdersFailed.WithLabelValues("persistence").Inc()
		return "", err
	}

	productMap := make(map[string]*product.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	// 3. Validate each line and build the order-time snapshots.
	var totalAmount float64
	items := make([]OrderItem, 0, len(lines))

	for _, line := range lines {
		logLine := log.With(
			zap.String("product_id", line.ProductID),
			zap.Int("quantity", line.Quantity),
		)

		p, ok := productMap[line.ProductID]
		if !ok {
			logLine.Warn("product disappeared from catalog")
			metrics.OrdersFailed.WithLabelValues("product_missing").Inc()
			return "", ErrProductNotFound
		}

		if !p.IsActive {
			logLine.Warn("product deactivated")
			metrics.OrdersFailed.WithLabelValues("product_inactive").Inc()
			return "", ErrProductInactive
		}

		if line.Quantity > p.StockQuantity {
			logLine.Warn("insufficient stock",
				zap.Int("stock", p.StockQuantity),
			)
			metrics.OrdersFailed.WithLabelValues("insufficient_stock").Inc()
			return "", ErrInsufficientStock
		}

		// The buyer must never be charged a price they did not see.
		if line.Product != nil && math.Abs(p.Price-line.Product.Price) > PriceEpsilon {
			logLine.Warn("price changed since cart add",
				zap.Float64("cart_price", line.Product.Price),
				zap.Float64("current_price", p.Price),
			)
			metrics.OrdersFailed.WithLabelValues("price_changed").Inc()
			return "", ErrPriceChanged
		}

		totalAmount += p.Price * float64(line.Quantity)

		items = append(items, OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    line.Quantity,
		})
	}

	// 4. Persist order, items and stock decrements atomically.
	orderID, err := s.repo.CreateOrderTx(ctx, params, totalAmount, items)
	if err != nil {
		log.Error("failed to persist order", zap.Error(err))
		if err == ErrInsufficientStock {
			metrics.OrdersFailed.WithLabelValues("insufficient_stock").Inc()
		} else {
			metrics.OrdersFailed.WithLabelValues("persistence").Inc()
		}
		return "", err
	}

	metrics.OrdersCreated.Inc()

	// 5. Clear the cart. Best-effort: the order exists and is payable even
	// if this delete fails, and clearing is idempotent on retry.
	if err := s.cartRepo.ClearCart(ctx, params.UserID); err != nil {
		log.Warn("failed to clear cart after order creation",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	log.Info("order created",
		zap.String("order_id", orderID),
		zap.Float64("total_amount", totalAmount),
		zap.Int("item_count", len(items)),
	)

	return orderID, nil
}

// GetOrders lists the user's orders newest-first. Anonymous callers get an
// empty list.
func (s *service) GetOrders(ctx context.Context, userID string) ([]*Order, error) {
	if userID == "" {
		return []*Order{}, nil
	}

	return s.repo.GetOrders(ctx, userID)
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID string) (*Order, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	return s.repo.GetOrderWithItems(ctx, orderID, userID)
}
