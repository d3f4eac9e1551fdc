package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Orders successfully created.",
	})

	OrdersFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_orders_failed_total",
		Help: "Order creation failures by reason.",
	}, []string{"reason"})

	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_payments_confirmed_total",
		Help: "Payments confirmed by the gateway.",
	})

	PaymentsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_payments_failed_total",
		Help: "Payment confirmation failures by reason.",
	}, []string{"reason"})
)

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
