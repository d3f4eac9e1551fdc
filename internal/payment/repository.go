package payment

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	// SavePayment inserts the confirmation record. Conflicts on payment_key
	// are swallowed so a retried confirm never duplicates the row.
	SavePayment(ctx context.Context, p *Payment) error

	GetPaymentByOrder(ctx context.Context, orderID string) (*Payment, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SavePayment(ctx context.Context, p *Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (
			payment_key,
			order_id,
			status,
			amount,
			method,
			approved_at,
			raw_response
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_key)
		DO NOTHING
	`,
		p.PaymentKey,
		p.OrderID,
		p.Status,
		p.Amount,
		p.Method,
		p.ApprovedAt,
		[]byte(p.Raw),
	)
	return err
}

func (r *repository) GetPaymentByOrder(ctx context.Context, orderID string) (*Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id,
			payment_key,
			order_id,
			status,
			amount,
			method,
			approved_at,
			created_at
		FROM payments
		WHERE order_id = $1
	`, orderID)

	var (
		p          Payment
		approvedAt sql.NullTime
	)
	err := row.Scan(
		&p.ID,
		&p.PaymentKey,
		&p.OrderID,
		&p.Status,
		&p.Amount,
		&p.Method,
		&approvedAt,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if approvedAt.Valid {
		t := approvedAt.Time
		p.ApprovedAt = &t
	}

	return &p, nil
}

func parseGatewayTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
