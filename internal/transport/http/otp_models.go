package http

import "github.com/s3ts/otp-backend/internal/service"

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"email, phone, and OTP code are required"`
}

// SendOTPRequest carries the fields for issuing a verification code.
type SendOTPRequest struct {
	Email   string `json:"email" example:"parent@example.com"`
	Phone   string `json:"phone" example:"0557881454"`
	Name    string `json:"name" example:"Ama Mensah"`
	OTPCode string `json:"otpCode" example:"123456"`
	Type    string `json:"type,omitempty" example:"registration"`
}

// SendOTPResults breaks the issue outcome down per channel.
type SendOTPResults struct {
	Email service.ChannelResult `json:"email"`
	SMS   service.ChannelResult `json:"sms"`
	Store service.ChannelResult `json:"store"`
}

// SendOTPResponse is returned by the issue endpoint. Success is true when at
// least one delivery channel went through.
type SendOTPResponse struct {
	Success bool           `json:"success" example:"true"`
	Results SendOTPResults `json:"results"`
	Message string         `json:"message" example:"OTP sent successfully"`
}

// VerifyOTPRequest carries the fields for checking a submitted code.
type VerifyOTPRequest struct {
	Email string `json:"email" example:"parent@example.com"`
	Code  string `json:"code" example:"123456"`
}

// VerifyOTPResponse is returned by the verify endpoint. Soft failures (wrong
// code, expired, locked out) come back with Success=false and HTTP 200.
type VerifyOTPResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"OTP verified successfully"`
}

// OperatorTokenRequest exchanges the operator API key for a bearer token.
type OperatorTokenRequest struct {
	APIKey   string `json:"api_key" example:"ops-api-key"`
	Operator string `json:"operator" example:"oncall"`
}

// OperatorTokenResponse carries the issued bearer token.
type OperatorTokenResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string `json:"expires_at" example:"2024-01-02T09:30:00Z"`
}

// SMSLogsMeta describes pagination metadata for delivery log listings.
type SMSLogsMeta struct {
	Limit  int `json:"limit" example:"50"`
	Offset int `json:"offset" example:"0"`
	Count  int `json:"count" example:"2"`
}
