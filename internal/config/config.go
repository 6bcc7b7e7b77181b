package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	LogstashTCPAddr string
	AllowOrigins    []string

	// SMS gateway
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioFromNumber     string
	TwilioAPIBaseURL     string
	SMSStatusCallbackURL string

	// OTP lifecycle
	DefaultCountryCode string
	OTPTTL             time.Duration
	OTPMaxAttempts     int

	// Operator API
	AdminAPIKey    string
	AdminJWTSecret string
	AdminTokenTTL  time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	otpTTL := 10 * time.Minute
	if v, err := time.ParseDuration(getenv("OTP_TTL", "10m")); err == nil && v > 0 {
		otpTTL = v
	}

	maxAttempts := 3
	if v, err := strconv.Atoi(getenv("OTP_MAX_ATTEMPTS", "3")); err == nil && v > 0 {
		maxAttempts = v
	}

	adminTokenTTL := 12 * time.Hour
	if v, err := time.ParseDuration(getenv("ADMIN_TOKEN_TTL", "12h")); err == nil && v > 0 {
		adminTokenTTL = v
	}

	return Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          must("DATABASE_URL"),
		LogstashTCPAddr:      getenv("LOGSTASH_TCP_ADDR", ""),
		AllowOrigins:         splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		TwilioAccountSID:     must("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      must("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:     must("TWILIO_FROM_NUMBER"),
		TwilioAPIBaseURL:     getenv("TWILIO_API_BASE_URL", ""),
		SMSStatusCallbackURL: getenv("SMS_STATUS_CALLBACK_URL", ""),
		DefaultCountryCode:   getenv("DEFAULT_COUNTRY_CODE", "+233"),
		OTPTTL:               otpTTL,
		OTPMaxAttempts:       maxAttempts,
		AdminAPIKey:          getenv("ADMIN_API_KEY", ""),
		AdminJWTSecret:       must("ADMIN_JWT_SECRET"),
		AdminTokenTTL:        adminTokenTTL,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
