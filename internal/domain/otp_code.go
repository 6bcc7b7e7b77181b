package domain

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is one issued verification code. Issuing a new code for an email
// supersedes any older unused codes for the same email: the verifier only ever
// consults the newest unused record.
type OTPCode struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Email      string     `db:"email" json:"email"`
	Phone      string     `db:"phone" json:"phone"`
	Code       string     `db:"code" json:"-"`
	Type       string     `db:"type" json:"type"`
	Used       bool       `db:"used" json:"used"`
	Attempts   int        `db:"attempts" json:"attempts"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	VerifiedAt *time.Time `db:"verified_at" json:"verified_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the code can no longer be verified at the given time.
func (o *OTPCode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// OTPTypeRegistration is the default purpose tag when the caller omits one.
const OTPTypeRegistration = "registration"
