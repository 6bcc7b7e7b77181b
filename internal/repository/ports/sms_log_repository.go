package ports

import (
	"context"
	"time"

	"github.com/s3ts/otp-backend/internal/domain"
)

type SMSLogFilter struct {
	Phone  string
	Status string
	Limit  int
	Offset int
}

type SMSLogRepository interface {
	Create(ctx context.Context, log *domain.SMSLog) (*domain.SMSLog, error)
	// UpdateStatusBySID applies a gateway status callback to the log entry that
	// carries the given gateway message id. It reports false when no entry
	// matches; that is not an error.
	UpdateStatusBySID(ctx context.Context, sid, status string, at time.Time) (bool, error)
	List(ctx context.Context, filter SMSLogFilter) ([]domain.SMSLog, error)
}
