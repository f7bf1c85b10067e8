// Package monitoring exposes ledger metrics to Prometheus.
package monitoring

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-petr/swagbank/internal/domain"
)

// RejectedReason labels why a block was rejected.
type RejectedReason string

// Rejection reasons.
const (
	RejectedInsufficientBalance RejectedReason = "insufficient_balance"
	RejectedNotFound            RejectedReason = "not_found"
	RejectedForbidden           RejectedReason = "forbidden"
	RejectedConflict            RejectedReason = "conflict"
	RejectedInvalid             RejectedReason = "invalid"
	RejectedTooEarly            RejectedReason = "too_early"
	RejectedStorage             RejectedReason = "storage"
	RejectedUnknown             RejectedReason = "other"
)

type ledgerPromMetrics struct {
	appendedBlocks *prometheus.CounterVec
	rejectedBlocks *prometheus.CounterVec
	ledgerHeight   prometheus.Gauge
	replayDuration prometheus.Histogram
	appendLatency  prometheus.Histogram
}

func newLedgerPromMetrics() *ledgerPromMetrics {
	return &ledgerPromMetrics{
		appendedBlocks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swagbank_blocks_appended_total",
				Help: "Blocks accepted into the ledger, by kind",
			},
			[]string{"kind"},
		),
		rejectedBlocks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swagbank_blocks_rejected_total",
				Help: "Blocks refused by the ledger, by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		ledgerHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "swagbank_ledger_height",
				Help: "Number of blocks in the ledger",
			},
		),
		replayDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "swagbank_replay_duration_seconds",
				Help:    "Time spent rebuilding the registry from the block store",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		appendLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name: "swagbank_append_duration_seconds",
				Help: "Latency of executing and persisting one block",
			},
		),
	}
}

var metrics = newLedgerPromMetrics()

// Handler serves the metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAppended counts an accepted block.
func RecordAppended(kind domain.BlockKind, took time.Duration) {
	metrics.appendedBlocks.WithLabelValues(string(kind)).Inc()
	metrics.appendLatency.Observe(took.Seconds())
}

// RecordRejected counts a refused block.
func RecordRejected(kind domain.BlockKind, reason RejectedReason) {
	metrics.rejectedBlocks.WithLabelValues(string(kind), string(reason)).Inc()
}

// SetLedgerHeight reports the number of blocks in the ledger.
func SetLedgerHeight(n int) {
	metrics.ledgerHeight.Set(float64(n))
}

// RecordReplay reports how long a replay took.
func RecordReplay(took time.Duration) {
	metrics.replayDuration.Observe(took.Seconds())
}

// ReasonOf classifies a rejection error.
func ReasonOf(err error) RejectedReason {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return RejectedInsufficientBalance
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrCagnotteNotFound),
		errors.Is(err, domain.ErrBlockNotFound):
		return RejectedNotFound
	case errors.Is(err, domain.ErrNotCagnotteManager),
		errors.Is(err, domain.ErrCagnotteDestructionForbidden):
		return RejectedForbidden
	case errors.Is(err, domain.ErrAccountAlreadyExists),
		errors.Is(err, domain.ErrCagnotteNameAlreadyExists),
		errors.Is(err, domain.ErrCagnotteAlreadyExists),
		errors.Is(err, domain.ErrDuplicateBlock):
		return RejectedConflict
	case errors.Is(err, domain.ErrAlreadyMinedToday),
		errors.Is(err, domain.ErrStillBlocked),
		errors.Is(err, domain.ErrTimeZoneFieldLocked),
		errors.Is(err, domain.ErrPowerNotApplicable):
		return RejectedTooEarly
	case errors.Is(err, domain.ErrInvalidCurrencyValue),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrInvalidTimeZone),
		errors.Is(err, domain.ErrCagnotteUnspecified),
		errors.Is(err, domain.ErrNothingBlocked),
		errors.Is(err, domain.ErrNonMonotonic),
		errors.Is(err, domain.ErrUnknownBlockKind):
		return RejectedInvalid
	}

	return RejectedUnknown
}
