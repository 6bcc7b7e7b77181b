package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EmailStatusPending marks a queued email waiting for the external mail
// dispatcher. The dispatcher owns every later transition.
const EmailStatusPending = "pending"

// OutboundEmail is one entry in the transactional email queue. This service
// only ever creates rows; delivery is the mail dispatcher's job.
type OutboundEmail struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	To        pq.StringArray `db:"recipients" json:"to"`
	Subject   string         `db:"subject" json:"subject"`
	HTML      string         `db:"html" json:"html"`
	Status    string         `db:"status" json:"status"`
	Type      string         `db:"type" json:"type"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
