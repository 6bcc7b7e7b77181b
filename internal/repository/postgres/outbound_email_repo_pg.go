package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s3ts/otp-backend/internal/domain"
)

type OutboundEmailRepository struct {
	db *sqlx.DB
}

func NewOutboundEmailRepo(db *sqlx.DB) *OutboundEmailRepository {
	return &OutboundEmailRepository{db: db}
}

func (r *OutboundEmailRepository) Enqueue(ctx context.Context, recipients []string, subject, html, emailType string) (*domain.OutboundEmail, error) {
	const query = `
        INSERT INTO mail (recipients, subject, html, status, type)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, recipients, subject, html, status, type, created_at
    `
	row := r.db.QueryRowxContext(ctx, query,
		pq.StringArray(recipients), subject, html, domain.EmailStatusPending, emailType)
	var email domain.OutboundEmail
	if err := row.StructScan(&email); err != nil {
		return nil, err
	}
	return &email, nil
}
