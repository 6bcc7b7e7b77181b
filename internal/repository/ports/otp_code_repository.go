package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s3ts/otp-backend/internal/domain"
)

type OTPCodeRepository interface {
	Create(ctx context.Context, email, phone, code, otpType string, expiresAt time.Time) (*domain.OTPCode, error)
	// FindNewestUnused returns the most recently created unused record for the
	// email, or sql.ErrNoRows when none exists.
	FindNewestUnused(ctx context.Context, email string) (*domain.OTPCode, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	// ConsumeIfUnused atomically flips used to true and stamps verified_at.
	// It reports false when the record was already consumed by another caller.
	ConsumeIfUnused(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (bool, error)
}
