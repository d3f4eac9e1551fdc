package cart

import (
	"context"

	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, userID string) ([]*CartItem, error)
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, params UpdateCartParams) error
	RemoveFromCart(ctx context.Context, userID, cartItemID string) error
	ClearCart(ctx context.Context, userID string) error
	GetCartTotal(ctx context.Context, userID string) CartTotal
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// GetCart returns the user's cart lines newest-first. Anonymous callers get
// an empty cart rather than an error.
func (s *service) GetCart(ctx context.Context, userID string) ([]*CartItem, error) {
	if userID == "" {
		return []*CartItem{}, nil
	}

	return s.repo.GetCartItems(ctx, userID)
}

// AddToCart inserts a new line or increments an existing one. The stock
// ceiling is checked against the live product row on every call.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("user_id", params.UserID),
		zap.String("product_id", params.ProductID),
		zap.Int("quantity", params.Quantity),
	)

	if params.UserID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// 1. Fetch the product; inactive products are rejected distinctly from
	// missing ones.
	p, err := s.productRepo.GetProductByID(ctx, params.ProductID, false)
	if err != nil {
		log.Error("failed to get product", zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}
	if !p.IsActive {
		return nil, product.ErrProductInactive
	}

	// 2. Fetch the existing line, if any.
	existing, err := s.repo.GetCartItemByUserAndProduct(ctx, params.UserID, params.ProductID)
	if err != nil {
		log.Error("failed to get cart item", zap.Error(err))
		return nil, err
	}

	// 3. Enforce the stock ceiling on the combined quantity.
	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}
	if finalQty > p.StockQuantity {
		log.Warn("stock ceiling exceeded",
			zap.Int("requested", finalQty),
			zap.Int("stock", p.StockQuantity),
		)
		return nil, ErrInsufficientStock
	}

	// 4. Insert or increment.
	var item *CartItem
	if existing == nil {
		item, err = s.repo.CreateCartItem(ctx, CreateCartItemParams{
			UserID:    params.UserID,
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
		})
	} else {
		item, err = s.repo.UpdateCartItemQuantity(ctx, existing.ID, finalQty)
	}
	if err != nil {
		log.Error("failed to write cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item written",
		zap.String("cart_item_id", item.ID),
		zap.Int("final_qty", item.Quantity),
	)

	return item, nil
}

// UpdateQuantity sets a line's quantity after re-checking the live stock.
func (s *service) UpdateQuantity(ctx context.Context, params UpdateCartParams) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateQuantity"),
		zap.String("user_id", params.UserID),
		zap.String("cart_item_id", params.CartItemID),
		zap.Int("quantity", params.Quantity),
	)

	if params.UserID == "" {
		return ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	item, err := s.repo.GetCartItemByID(ctx, params.CartItemID, params.UserID)
	if err != nil {
		log.Error("failed to get cart item", zap.Error(err))
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}

	if !item.Product.IsActive {
		return product.ErrProductInactive
	}
	if params.Quantity > item.Product.StockQuantity {
		return ErrInsufficientStock
	}

	if _, err := s.repo.UpdateCartItemQuantity(ctx, params.CartItemID, params.Quantity); err != nil {
		log.Error("failed to update quantity", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) RemoveFromCart(ctx context.Context, userID, cartItemID string) error {
	if userID == "" {
		return ErrUserNotAuthenticated
	}

	return s.repo.RemoveFromCart(ctx, cartItemID, userID)
}

func (s *service) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserNotAuthenticated
	}

	return s.repo.ClearCart(ctx, userID)
}

// GetCartTotal sums price*qty and qty across current lines. It is display
// state only: on any read failure it degrades to an empty total instead of
// propagating. Order assembly never uses this path.
func (s *service) GetCartTotal(ctx context.Context, userID string) CartTotal {
	if userID == "" {
		return CartTotal{}
	}

	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Warn("cart total degraded to zero",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return CartTotal{}
	}

	var total CartTotal
	for _, item := range items {
		total.Subtotal += item.Product.Price * float64(item.Quantity)
		total.ItemCount += item.Quantity
	}

	return total
}
