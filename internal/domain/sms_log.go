package domain

import (
	"time"

	"github.com/google/uuid"
)

// SMS delivery lifecycle statuses. Sent and Failed are written by the issuer;
// the rest arrive through the gateway's status callbacks and are stored
// verbatim, so unknown values are possible.
const (
	SMSStatusQueued      = "queued"
	SMSStatusSending     = "sending"
	SMSStatusSent        = "sent"
	SMSStatusDelivered   = "delivered"
	SMSStatusUndelivered = "undelivered"
	SMSStatusFailed      = "failed"
)

// SMSLog records exactly one SMS send attempt, successful or not. Successful
// sends carry the gateway message id so later status callbacks can be matched
// back to the attempt.
type SMSLog struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	To            string     `db:"to_phone" json:"to"`
	OriginalPhone string     `db:"original_phone" json:"original_phone"`
	Message       string     `db:"message" json:"message"`
	Type          string     `db:"type" json:"type"`
	Status        string     `db:"status" json:"status"`
	GatewaySID    string     `db:"gateway_sid" json:"gateway_sid,omitempty"`
	GatewayStatus string     `db:"gateway_status" json:"gateway_status,omitempty"`
	Error         string     `db:"error" json:"error,omitempty"`
	MetaEmail     string     `db:"meta_email" json:"meta_email,omitempty"`
	MetaName      string     `db:"meta_name" json:"meta_name,omitempty"`
	MetaCode      string     `db:"meta_code" json:"-"`
	SentAt        *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	FailedAt      *time.Time `db:"failed_at" json:"failed_at,omitempty"`
	LastUpdated   *time.Time `db:"last_updated" json:"last_updated,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
