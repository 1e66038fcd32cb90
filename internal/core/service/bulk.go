package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailscore/internal/core/domain"
)

// VerifyBulk scores up to domain.MaxBulkAddresses addresses. Input is
// partitioned into consecutive chunks; each chunk's addresses are verified
// concurrently, and the orchestrator sleeps for the pacing delay between
// the completion of one chunk and the start of the next (never after the
// last). Results keep input order; blank inputs are dropped.
func (s *VerificationService) VerifyBulk(ctx context.Context, emails []string, opts domain.BulkOptions) (*domain.BulkResult, error) {
	if len(emails) > domain.MaxBulkAddresses {
		return nil, domain.ErrTooManyAddresses
	}

	batchSize, delay := clampOptions(opts)

	results := make([]*domain.VerificationResult, 0, len(emails))

	for start := 0; start < len(emails); start += batchSize {
		if start > 0 {
			// Pacing between chunks. The context is only consulted here:
			// a chunk that has started always runs to completion.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		end := min(start+batchSize, len(emails))
		chunk := emails[start:end]

		// Index-addressed slots keep results in input order regardless of
		// goroutine scheduling.
		slots := make([]*domain.VerificationResult, len(chunk))

		var wg sync.WaitGroup
		for idx, email := range chunk {
			wg.Add(1)
			go func(idx int, email string) {
				defer wg.Done()
				result, err := s.Verify(ctx, email)
				if err != nil {
					if !errors.Is(err, domain.ErrEmptyAddress) {
						log.WithError(err).WithField("email", email).Error("Verification failed")
					}
					return
				}
				slots[idx] = result
			}(idx, email)
		}
		wg.Wait()

		for _, result := range slots {
			if result != nil {
				results = append(results, result)
			}
		}
	}

	stats := computeStats(results)

	if s.metrics != nil {
		s.metrics.RecordBulk(len(results))
	}

	bulkResult := &domain.BulkResult{
		BatchID:     uuid.New(),
		Results:     results,
		Stats:       stats,
		ProcessedAt: time.Now().UTC(),
	}

	log.WithFields(log.Fields{
		"batchID":   bulkResult.BatchID,
		"submitted": len(emails),
		"processed": len(results),
		"batchSize": batchSize,
		"delay":     delay,
	}).Info("Bulk verification completed")

	return bulkResult, nil
}

// clampOptions resolves the effective chunk size and inter-chunk delay.
// Zero values fall back to defaults; out-of-range values are clamped, not
// rejected.
func clampOptions(opts domain.BulkOptions) (int, time.Duration) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}
	if batchSize > domain.MaxBatchSize {
		batchSize = domain.MaxBatchSize
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = domain.DefaultDelay
	}
	if delay < domain.MinDelay {
		delay = domain.MinDelay
	}

	return batchSize, delay
}

func computeStats(results []*domain.VerificationResult) domain.BulkStats {
	stats := domain.BulkStats{Total: len(results)}

	if len(results) == 0 {
		return stats
	}

	sum := 0
	for _, result := range results {
		sum += result.Score
		switch result.Status {
		case domain.StatusValid:
			stats.Valid++
		case domain.StatusRisky:
			stats.Risky++
		case domain.StatusInvalid:
			stats.Invalid++
		}
	}
	stats.AverageScore = float64(sum) / float64(len(results))

	return stats
}
