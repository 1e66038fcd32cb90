package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"stoik.com/emailscore/internal/core/domain"
)

type Metrics struct {
	VerificationsTotal *prometheus.CounterVec
	ScoreDistribution  prometheus.Histogram
	BulkBatchSize      prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "emailscore_verifications_total",
			Help: "Total number of email verifications by final status",
		}, []string{"status"}),
		ScoreDistribution: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "emailscore_score",
			Help:    "Distribution of final verification scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		BulkBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "emailscore_bulk_processed_addresses",
			Help:    "Number of addresses processed per bulk request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}
}

func (m *Metrics) RecordVerification(status domain.Status, score int) {
	m.VerificationsTotal.WithLabelValues(string(status)).Inc()
	m.ScoreDistribution.Observe(float64(score))
}

func (m *Metrics) RecordBulk(size int) {
	m.BulkBatchSize.Observe(float64(size))
}
