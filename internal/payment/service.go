package payment

import (
	"context"
	"errors"
	"math"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/order"

	"go.uber.org/zap"
)

type Service interface {
	// Confirm verifies the claimed amount against the stored order total,
	// asks the gateway to capture the payment, and on the gateway's terminal
	// success status moves the order to confirmed. Safe to retry with the
	// same (paymentKey, orderId, amount) tuple.
	Confirm(ctx context.Context, params ConfirmParams) (*Confirmation, error)

	GetPaymentByOrder(ctx context.Context, userID, orderID string) (*Payment, error)
}

type service struct {
	repo      Repository
	orderRepo order.Repository
	gateway   Gateway
}

func NewService(repo Repository, orderRepo order.Repository, gateway Gateway) Service {
	return &service{
		repo:      repo,
		orderRepo: orderRepo,
		gateway:   gateway,
	}
}

func (s *service) Confirm(ctx context.Context, params ConfirmParams) (*Confirmation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Confirm"),
		zap.String("user_id", params.UserID),
		zap.String("order_id", params.OrderID),
		zap.Float64("amount", params.Amount),
	)

	if params.UserID == "" {
		return nil, ErrUserNotAuthenticated
	}

	// 1. Load the order scoped to the caller. A miss and a foreign order
	// look the same.
	ord, err := s.orderRepo.GetOrderByID(ctx, params.OrderID, params.UserID)
	if err != nil {
		log.Error("failed to load order", zap.Error(err))
		return nil, err
	}
	if ord == nil {
		metrics.PaymentsFailed.WithLabelValues("order_not_found").Inc()
		return nil, ErrOrderNotFound
	}

	// 2. The claimed amount must equal the frozen order total.
	if math.Abs(ord.TotalAmount-params.Amount) >= order.PriceEpsilon {
		log.Warn("amount mismatch",
			zap.Float64("order_total", ord.TotalAmount),
		)
		metrics.PaymentsFailed.WithLabelValues("amount_mismatch").Inc()
		return nil, ErrAmountMismatch
	}

	// 3. Ask the gateway to capture.
	conf, err := s.gateway.Confirm(ctx, params.PaymentKey, params.OrderID, params.Amount)
	if err != nil {
		var gwErr *GatewayError
		switch {
		case errors.Is(err, ErrGatewayTimeout):
			metrics.PaymentsFailed.WithLabelValues("gateway_timeout").Inc()
		case errors.As(err, &gwErr):
			metrics.PaymentsFailed.WithLabelValues("gateway_rejected").Inc()
		default:
			metrics.PaymentsFailed.WithLabelValues("gateway_error").Inc()
		}
		return nil, err
	}

	// 4. Persist the confirmation for audit. The money has already moved,
	// so a failed insert must not fail the confirm; the unique payment_key
	// keeps retries from duplicating the record.
	record := &Payment{
		PaymentKey: conf.PaymentKey,
		OrderID:    params.OrderID,
		Status:     conf.Status,
		Amount:     conf.TotalAmount,
		Method:     conf.Method,
		ApprovedAt: parseGatewayTime(conf.ApprovedAt),
		Raw:        conf.Raw,
	}
	if err := s.repo.SavePayment(ctx, record); err != nil {
		log.Warn("failed to save payment record", zap.Error(err))
	}

	// 5. Only the gateway's terminal status flips the order; waiting states
	// are surfaced to the caller unchanged.
	if conf.Status == StatusDone {
		transitioned, err := s.orderRepo.ConfirmOrder(ctx, params.OrderID, params.UserID)
		if err != nil {
			log.Error("failed to confirm order", zap.Error(err))
			return nil, err
		}

		if !transitioned {
			// Re-confirming an already-confirmed order is a no-op.
			current, err := s.orderRepo.GetOrderByID(ctx, params.OrderID, params.UserID)
			if err != nil {
				return nil, err
			}
			if current == nil || current.Status != order.StatusConfirmed {
				log.Warn("order not transitioned and not confirmed",
					zap.Any("status", current),
				)
			}
		}
	}

	metrics.PaymentsConfirmed.Inc()

	log.Info("payment confirmed",
		zap.String("payment_key", conf.PaymentKey),
		zap.String("status", conf.Status),
	)

	return conf, nil
}

func (s *service) GetPaymentByOrder(ctx context.Context, userID, orderID string) (*Payment, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	// Ownership gate first; payments hang off orders.
	ord, err := s.orderRepo.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	return s.repo.GetPaymentByOrder(ctx, orderID)
}
