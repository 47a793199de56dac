package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics aggregates the prometheus instruments of the settlement core.
type EscrowMetrics struct {
	EscrowsCreatedTotal  prometheus.CounterVec
	EscrowsFundedTotal 	 prometheus.CounterVec
	EscrowsReleasedTotal prometheus.CounterVec
	EscrowsRefundedTotal prometheus.CounterVec
	EscrowsDisputedTotal prometheus.CounterVec

	EscrowsFundedAmountTotal   prometheus.CounterVec
	EscrowsReleasedAmountTotal prometheus.CounterVec
	EscrowsRefundedAmountTotal prometheus.CounterVec

	GatewayErrorsTotal prometheus.CounterVec

	SweepDuration 		 prometheus.HistogramVec
	SweepReleasesTotal 	 prometheus.CounterVec
	SweepFailuresTotal 	 prometheus.CounterVec

	ReviewsAddedTotal 	 prometheus.CounterVec
	TrustRecomputesTotal prometheus.CounterVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		EscrowsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_created_total",
				Help: "Total number of escrows created",
			},
			[]string{"currency"},
		),

		EscrowsFundedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_funded_total",
				Help: "Total number of escrows funded",
			},
			[]string{"currency"},
		),

		EscrowsReleasedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_released_total",
				Help: "Total number of escrows released to sellers",
			},
			[]string{"currency", "path"},
		),

		EscrowsRefundedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_refunded_total",
				Help: "Total number of escrows refunded to buyers",
			},
			[]string{"currency"},
		),

		EscrowsDisputedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_disputed_total",
				Help: "Total number of disputes opened",
			},
			[]string{"currency"},
		),

		EscrowsFundedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_funded_amount_total",
				Help: "Total amount captured into escrow",
			},
			[]string{"currency"},
		),

		EscrowsReleasedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_released_amount_total",
				Help: "Total amount credited to sellers",
			},
			[]string{"currency"},
		),

		EscrowsRefundedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_refunded_amount_total",
				Help: "Total amount refunded to buyers",
			},
			[]string{"currency"},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_errors_total",
				Help: "Total number of payment gateway failures",
			},
			[]string{"operation"},
		),

		SweepDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_sweep_duration_seconds",
				Help:    "Duration of the auto-release sweep in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{},
		),

		SweepReleasesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_sweep_releases_total",
				Help: "Total number of escrows auto-released by the sweep",
			},
			[]string{},
		),

		SweepFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_sweep_failures_total",
				Help: "Total number of per-escrow failures during the sweep",
			},
			[]string{},
		),

		ReviewsAddedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reviews_added_total",
				Help: "Total number of reviews recorded",
			},
			[]string{"rating"},
		),

		TrustRecomputesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trust_recomputes_total",
				Help: "Total number of trust score recomputations",
			},
			[]string{"outcome"},
		),
	}
}

func (m *EscrowMetrics) RecordEscrowCreated(currency string) {
	m.EscrowsCreatedTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordEscrowFunded(currency string, amount float64) {
	m.EscrowsFundedTotal.WithLabelValues(currency).Inc()
	m.EscrowsFundedAmountTotal.WithLabelValues(currency).Add(amount)
}

// path is "confirmation", "auto" or "dispute".
func (m *EscrowMetrics) RecordEscrowReleased(currency, path string, amount float64) {
	m.EscrowsReleasedTotal.WithLabelValues(currency, path).Inc()
	m.EscrowsReleasedAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *EscrowMetrics) RecordEscrowRefunded(currency string, amount float64) {
	m.EscrowsRefundedTotal.WithLabelValues(currency).Inc()
	m.EscrowsRefundedAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *EscrowMetrics) RecordDisputeOpened(currency string) {
	m.EscrowsDisputedTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordGatewayError(operation string) {
	m.GatewayErrorsTotal.WithLabelValues(operation).Inc()
}

func (m *EscrowMetrics) RecordSweep(durationSeconds float64, released, failed int) {
	m.SweepDuration.WithLabelValues().Observe(durationSeconds)
	m.SweepReleasesTotal.WithLabelValues().Add(float64(released))
	m.SweepFailuresTotal.WithLabelValues().Add(float64(failed))
}

func (m *EscrowMetrics) RecordReviewAdded(rating string) {
	m.ReviewsAddedTotal.WithLabelValues(rating).Inc()
}

func (m *EscrowMetrics) RecordTrustRecompute(outcome string) {
	m.TrustRecomputesTotal.WithLabelValues(outcome).Inc()
}
