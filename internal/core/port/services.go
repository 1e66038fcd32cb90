package port

import (
	"context"

	"stoik.com/emailscore/internal/core/domain"
)

type VerificationService interface {
	Verify(ctx context.Context, email string) (*domain.VerificationResult, error)
	VerifyBulk(ctx context.Context, emails []string, opts domain.BulkOptions) (*domain.BulkResult, error)
}
