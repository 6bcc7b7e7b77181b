package ports

import (
	"context"

	"github.com/s3ts/otp-backend/internal/domain"
)

type OutboundEmailRepository interface {
	// Enqueue inserts a pending email for the external mail dispatcher.
	Enqueue(ctx context.Context, recipients []string, subject, html, emailType string) (*domain.OutboundEmail, error)
}
