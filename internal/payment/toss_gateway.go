package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type tossGateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewTossGateway builds a Toss Payments client. The secret key is a
// server-held credential and authenticates as HTTP basic auth with an empty
// password.
func NewTossGateway(baseURL, secretKey string) Gateway {
	if secretKey == "" {
		logger.L().Warn("Toss secret key is empty")
	}

	return &tossGateway{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// tossErrorBody is the gateway's failure shape.
type tossErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (t *tossGateway) Confirm(
	ctx context.Context,
	paymentKey, orderID string,
	amount float64,
) (*Confirmation, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.Float64("amount", amount),
	)

	body := map[string]any{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.baseURL+"/v1/payments/confirm",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		log.Error("failed creating confirm request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(t.secretKey, "")
	req.Header.Add("Content-Type", "application/json")

	log.Info("sending confirm request to gateway")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Error("gateway confirm timed out", zap.Error(err))
			return nil, ErrGatewayTimeout
		}
		log.Error("gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read gateway response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var gwErr tossErrorBody
		_ = json.Unmarshal(bodyBytes, &gwErr)
		if gwErr.Message == "" {
			gwErr.Message = resp.Status
		}

		log.Error("gateway rejected confirm",
			zap.Int("status", resp.StatusCode),
			zap.String("code", gwErr.Code),
			zap.String("message", gwErr.Message),
		)

		return nil, &GatewayError{Code: gwErr.Code, Message: gwErr.Message}
	}

	var conf Confirmation
	if err := json.Unmarshal(bodyBytes, &conf); err != nil {
		log.Error("failed decoding gateway response", zap.Error(err))
		return nil, err
	}
	conf.Raw = json.RawMessage(bodyBytes)

	log.Info("gateway confirm succeeded",
		zap.String("payment_key", conf.PaymentKey),
		zap.String("status", conf.Status),
		zap.String("method", conf.Method),
	)

	return &conf, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}
