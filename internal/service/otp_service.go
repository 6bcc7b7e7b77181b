package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/s3ts/otp-backend/internal/domain"
	"github.com/s3ts/otp-backend/internal/gateway/sms"
	"github.com/s3ts/otp-backend/internal/repository/ports"
	"github.com/s3ts/otp-backend/internal/transport/mail"
	"github.com/s3ts/otp-backend/internal/util"
)

var (
	ErrIssueInputMissing  = errors.New("email, phone, and OTP code are required")
	ErrVerifyInputMissing = errors.New("email and OTP code are required")
)

// Verifier outcome messages. These are soft failures returned as data, never
// as errors.
const (
	msgInvalidCode  = "Invalid OTP code"
	msgExpiredCode  = "OTP has expired. Please request a new code."
	msgTooManyTries = "Too many verification attempts. Please request a new code."
	msgVerified     = "OTP verified successfully"
	msgIssued       = "OTP sent successfully"
	msgAllFailed    = "Failed to send OTP via all channels"
)

// SMSGateway is the one operation the issuer needs from the SMS provider.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) (*sms.Message, error)
}

// ChannelResult reports the outcome of a single delivery step. Exactly one of
// the payload fields or Error is meaningful depending on OK.
type ChannelResult struct {
	OK            bool   `json:"success"`
	ID            string `json:"id,omitempty"`
	GatewaySID    string `json:"gateway_sid,omitempty"`
	GatewayStatus string `json:"gateway_status,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Error         string `json:"error,omitempty"`
}

// IssueResult aggregates the three delivery steps. Success means at least one
// of the two user-facing channels went through.
type IssueResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Email   ChannelResult `json:"email"`
	SMS     ChannelResult `json:"sms"`
	Store   ChannelResult `json:"store"`
}

type VerifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type IssueRequest struct {
	Email string
	Phone string
	Name  string
	Code  string
	Type  string
}

type OTPService struct {
	emails  ports.OutboundEmailRepository
	logs    ports.SMSLogRepository
	codes   ports.OTPCodeRepository
	gateway SMSGateway

	countryCode string
	ttl         time.Duration
	maxAttempts int

	now func() time.Time
}

func NewOTPService(
	emails ports.OutboundEmailRepository,
	logs ports.SMSLogRepository,
	codes ports.OTPCodeRepository,
	gateway SMSGateway,
	countryCode string,
	ttl time.Duration,
	maxAttempts int,
) *OTPService {
	return &OTPService{
		emails:      emails,
		logs:        logs,
		codes:       codes,
		gateway:     gateway,
		countryCode: countryCode,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Issue queues the verification email, dispatches the SMS, and persists the
// OTP record. The three steps are fault-isolated: a failing step is recorded
// in its ChannelResult and never aborts the others.
func (s *OTPService) Issue(ctx context.Context, req IssueRequest) (*IssueResult, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, ErrIssueInputMissing
	}

	email := util.NormalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	otpType := req.Type
	if otpType == "" {
		otpType = domain.OTPTypeRegistration
	}

	result := &IssueResult{}
	result.Email = s.queueEmail(ctx, email, req.Name, req.Code, otpType)
	result.SMS = s.sendSMS(ctx, email, phone, req.Name, req.Code)
	result.Store = s.persistCode(ctx, email, phone, req.Code, otpType)

	result.Success = result.Email.OK || result.SMS.OK
	if result.Success {
		result.Message = msgIssued
	} else {
		result.Message = msgAllFailed
	}
	return result, nil
}

func (s *OTPService) queueEmail(ctx context.Context, email, name, code, otpType string) ChannelResult {
	html, err := mail.BuildOTPEmail(name, code)
	if err != nil {
		log.Printf("otp: render email for %s: %v", email, err)
		return ChannelResult{Error: err.Error()}
	}
	queued, err := s.emails.Enqueue(ctx, []string{email}, mail.OTPEmailSubject, html, otpType)
	if err != nil {
		log.Printf("otp: queue email for %s: %v", email, err)
		return ChannelResult{Error: err.Error()}
	}
	return ChannelResult{OK: true, ID: queued.ID.String()}
}

func (s *OTPService) sendSMS(ctx context.Context, email, phone, name, code string) ChannelResult {
	formatted := util.NormalizePhone(phone, s.countryCode)
	body := fmt.Sprintf("Hello %s, your S3TS verification code is: %s. Valid for 10 minutes. Do not share this code.", name, code)

	msg, err := s.gateway.Send(ctx, formatted, body)
	if err != nil {
		log.Printf("otp: sms to %s failed: %v", formatted, err)
		failedAt := s.now()
		if _, logErr := s.logs.Create(ctx, &domain.SMSLog{
			To:       phone,
			Message:  "OTP: " + code,
			Type:     "otp",
			Status:   domain.SMSStatusFailed,
			Error:    err.Error(),
			FailedAt: &failedAt,
		}); logErr != nil {
			log.Printf("otp: record failed sms log: %v", logErr)
		}
		return ChannelResult{Error: err.Error(), Phone: formatted}
	}

	sentAt := s.now()
	if _, logErr := s.logs.Create(ctx, &domain.SMSLog{
		To:            formatted,
		OriginalPhone: phone,
		Message:       body,
		Type:          "otp",
		Status:        domain.SMSStatusSent,
		GatewaySID:    msg.SID,
		GatewayStatus: msg.Status,
		MetaEmail:     email,
		MetaName:      name,
		MetaCode:      code,
		SentAt:        &sentAt,
	}); logErr != nil {
		// The SMS is already on its way; a missing log entry must not fail
		// the channel.
		log.Printf("otp: record sent sms log: %v", logErr)
	}
	return ChannelResult{OK: true, GatewaySID: msg.SID, GatewayStatus: msg.Status, Phone: formatted}
}

func (s *OTPService) persistCode(ctx context.Context, email, phone, code, otpType string) ChannelResult {
	otp, err := s.codes.Create(ctx, email, phone, code, otpType, s.now().Add(s.ttl))
	if err != nil {
		log.Printf("otp: persist code for %s: %v", email, err)
		return ChannelResult{Error: err.Error()}
	}
	return ChannelResult{OK: true, ID: otp.ID.String()}
}

// Verify checks a submitted code against the newest unused record for the
// email. Wrong codes, expired records, and exhausted attempts are soft
// failures; only store faults surface as errors.
func (s *OTPService) Verify(ctx context.Context, email, code string) (*VerifyResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return nil, ErrVerifyInputMissing
	}

	otp, err := s.codes.FindNewestUnused(ctx, util.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &VerifyResult{Message: msgInvalidCode}, nil
		}
		return nil, fmt.Errorf("load otp record: %w", err)
	}

	if strings.TrimSpace(code) != otp.Code {
		if err := s.codes.IncrementAttempts(ctx, otp.ID); err != nil {
			log.Printf("otp: increment attempts for %s: %v", otp.ID, err)
		}
		return &VerifyResult{Message: msgInvalidCode}, nil
	}

	if otp.Expired(s.now()) {
		return &VerifyResult{Message: msgExpiredCode}, nil
	}

	if otp.Attempts >= s.maxAttempts {
		return &VerifyResult{Message: msgTooManyTries}, nil
	}

	consumed, err := s.codes.ConsumeIfUnused(ctx, otp.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("consume otp record: %w", err)
	}
	if !consumed {
		// Lost the race against a concurrent verification of the same record.
		return &VerifyResult{Message: msgInvalidCode}, nil
	}
	return &VerifyResult{Success: true, Message: msgVerified}, nil
}

// UpdateDeliveryStatus applies a gateway status callback to the matching
// delivery log. A callback for an unknown message id is acknowledged silently.
func (s *OTPService) UpdateDeliveryStatus(ctx context.Context, gatewaySID, status string) error {
	matched, err := s.logs.UpdateStatusBySID(ctx, gatewaySID, status, s.now())
	if err != nil {
		return fmt.Errorf("update sms log %s: %w", gatewaySID, err)
	}
	if matched {
		log.Printf("otp: sms log %s status updated to %s", gatewaySID, status)
	}
	return nil
}

// DeliveryLogs lists recent SMS delivery logs for the operator API.
func (s *OTPService) DeliveryLogs(ctx context.Context, filter ports.SMSLogFilter) ([]domain.SMSLog, error) {
	return s.logs.List(ctx, filter)
}
