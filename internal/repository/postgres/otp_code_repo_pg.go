package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/s3ts/otp-backend/internal/domain"
)

type OTPCodeRepository struct {
	db *sqlx.DB
}

func NewOTPCodeRepo(db *sqlx.DB) *OTPCodeRepository {
	return &OTPCodeRepository{db: db}
}

func (r *OTPCodeRepository) Create(ctx context.Context, email, phone, code, otpType string, expiresAt time.Time) (*domain.OTPCode, error) {
	const query = `
        INSERT INTO otp_codes (email, phone, code, type, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, email, phone, code, type, used, attempts, expires_at, verified_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, phone, code, otpType, expiresAt)
	var otp domain.OTPCode
	if err := row.StructScan(&otp); err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPCodeRepository) FindNewestUnused(ctx context.Context, email string) (*domain.OTPCode, error) {
	const query = `
        SELECT id, email, phone, code, type, used, attempts, expires_at, verified_at, created_at
        FROM otp_codes
        WHERE email = $1 AND used = FALSE
        ORDER BY created_at DESC
        LIMIT 1
    `
	var otp domain.OTPCode
	if err := r.db.GetContext(ctx, &otp, query, email); err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPCodeRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	const query = `
        UPDATE otp_codes
        SET attempts = attempts + 1
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *OTPCodeRepository) ConsumeIfUnused(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (bool, error) {
	const query = `
        UPDATE otp_codes
        SET used = TRUE,
            verified_at = $2
        WHERE id = $1 AND used = FALSE
    `
	res, err := r.db.ExecContext(ctx, query, id, verifiedAt)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
