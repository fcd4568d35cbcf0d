package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SettlementMetrics records checkout, cancellation and settlement step results.
// A nil *SettlementMetrics is valid and records nothing.
type SettlementMetrics struct {
	stepDuration *prometheus.HistogramVec
	stepSuccess  *prometheus.CounterVec
	stepFailure  *prometheus.CounterVec
	orders       *prometheus.CounterVec
}

// NewSettlementMetrics registers the settlement metrics on reg.
func NewSettlementMetrics(reg prometheus.Registerer) *SettlementMetrics {
	if reg == nil {
		return &SettlementMetrics{}
	}
	stepDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "settlement_step_duration_seconds",
		Help:      "Duration of settlement steps in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step"})
	stepSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "settlement_step_success_total",
		Help:      "Settlement steps that completed.",
	}, []string{"step"})
	stepFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "settlement_step_failure_total",
		Help:      "Settlement steps that failed.",
	}, []string{"step"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_total",
		Help:      "Orders by lifecycle event.",
	}, []string{"event"})
	reg.MustRegister(stepDuration, stepSuccess, stepFailure, orders)
	return &SettlementMetrics{
		stepDuration: stepDuration,
		stepSuccess:  stepSuccess,
		stepFailure:  stepFailure,
		orders:       orders,
	}
}

// ObserveStep records the duration and result of a settlement step.
func (m *SettlementMetrics) ObserveStep(step string, duration time.Duration, err error) {
	if m == nil || m.stepDuration == nil {
		return
	}
	step = normalizeLabel(step)
	m.stepDuration.WithLabelValues(step).Observe(duration.Seconds())
	if err != nil {
		m.stepFailure.WithLabelValues(step).Inc()
		return
	}
	m.stepSuccess.WithLabelValues(step).Inc()
}

func (m *SettlementMetrics) OrderPlaced() {
	m.incOrders("placed")
}

func (m *SettlementMetrics) OrderCancelled() {
	m.incOrders("cancelled")
}

func (m *SettlementMetrics) RefundFailed() {
	m.incOrders("refund_failed")
}

func (m *SettlementMetrics) incOrders(event string) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.WithLabelValues(event).Inc()
}

func normalizeLabel(step string) string {
	if step == "" {
		return "unknown"
	}
	return step
}
