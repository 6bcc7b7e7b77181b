package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/s3ts/otp-backend/internal/domain"
	"github.com/s3ts/otp-backend/internal/repository/ports"
)

type SMSLogRepository struct {
	db *sqlx.DB
}

func NewSMSLogRepo(db *sqlx.DB) *SMSLogRepository {
	return &SMSLogRepository{db: db}
}

const smsLogColumns = `id, to_phone, original_phone, message, type, status, gateway_sid,
        gateway_status, error, meta_email, meta_name, meta_code, sent_at, failed_at,
        last_updated, created_at`

func (r *SMSLogRepository) Create(ctx context.Context, log *domain.SMSLog) (*domain.SMSLog, error) {
	const query = `
        INSERT INTO sms_logs (to_phone, original_phone, message, type, status, gateway_sid,
            gateway_status, error, meta_email, meta_name, meta_code, sent_at, failed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + smsLogColumns
	row := r.db.QueryRowxContext(ctx, query,
		log.To, log.OriginalPhone, log.Message, log.Type, log.Status,
		log.GatewaySID, log.GatewayStatus, log.Error,
		log.MetaEmail, log.MetaName, log.MetaCode,
		log.SentAt, log.FailedAt,
	)
	var created domain.SMSLog
	if err := row.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SMSLogRepository) UpdateStatusBySID(ctx context.Context, sid, status string, at time.Time) (bool, error) {
	const query = `
        UPDATE sms_logs
        SET status = $2,
            gateway_status = $2,
            last_updated = $3
        WHERE id = (
            SELECT id FROM sms_logs
            WHERE gateway_sid = $1
            ORDER BY created_at ASC
            LIMIT 1
        )
    `
	res, err := r.db.ExecContext(ctx, query, sid, status, at)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *SMSLogRepository) List(ctx context.Context, filter ports.SMSLogFilter) ([]domain.SMSLog, error) {
	clauses := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if filter.Phone != "" {
		args = append(args, filter.Phone)
		clauses = append(clauses, "(to_phone = $"+strconv.Itoa(len(args))+" OR original_phone = $"+strconv.Itoa(len(args))+")")
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}

	query := "SELECT " + smsLogColumns + " FROM sms_logs"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	logs := []domain.SMSLog{}
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, err
	}
	return logs, nil
}
