package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Bulk processing limits. Batch size and delay supplied by callers are
// clamped into these bounds before any chunk runs.
const (
	MaxBulkAddresses = 1000

	DefaultBatchSize = 10
	MaxBatchSize     = 20

	DefaultDelay = 100 * time.Millisecond
	MinDelay     = 50 * time.Millisecond
)

var ErrTooManyAddresses = errors.New("too many addresses in bulk request")

// BulkOptions carries the caller-supplied pacing parameters. Zero values
// mean "use the default".
type BulkOptions struct {
	BatchSize int
	Delay     time.Duration
}

type BulkStats struct {
	Total        int     `json:"total"`
	Valid        int     `json:"valid"`
	Risky        int     `json:"risky"`
	Invalid      int     `json:"invalid"`
	AverageScore float64 `json:"average_score"`
}

// BulkResult is the ordered outcome of one bulk request. Results keep the
// input order; blank inputs are dropped and do not appear in Stats.
type BulkResult struct {
	BatchID     uuid.UUID             `json:"batch_id"`
	Results     []*VerificationResult `json:"results"`
	Stats       BulkStats             `json:"stats"`
	ProcessedAt time.Time             `json:"processed_at"`
}
