package main

import (
	"io"
	"log"
	"os"

	"github.com/s3ts/otp-backend/internal/config"
	"github.com/s3ts/otp-backend/internal/gateway/sms"
	"github.com/s3ts/otp-backend/internal/logging"
	"github.com/s3ts/otp-backend/internal/repository/postgres"
	"github.com/s3ts/otp-backend/internal/service"
	transport "github.com/s3ts/otp-backend/internal/transport/http"
	"github.com/s3ts/otp-backend/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	gatewayCfg := sms.Config{
		AccountSID:     cfg.TwilioAccountSID,
		AuthToken:      cfg.TwilioAuthToken,
		FromNumber:     cfg.TwilioFromNumber,
		APIBaseURL:     cfg.TwilioAPIBaseURL,
		StatusCallback: cfg.SMSStatusCallbackURL,
	}
	if err := gatewayCfg.Validate(); err != nil {
		log.Fatalf("sms gateway config: %v", err)
	}

	otpService := service.NewOTPService(
		postgres.NewOutboundEmailRepo(db),
		postgres.NewSMSLogRepo(db),
		postgres.NewOTPCodeRepo(db),
		sms.NewClient(gatewayCfg),
		cfg.DefaultCountryCode,
		cfg.OTPTTL,
		cfg.OTPMaxAttempts,
	)

	tokens := util.NewJWTManager(cfg.AdminJWTSecret, cfg.AdminTokenTTL)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterOTP(e, otpService)
	transport.RegisterWebhooks(e, otpService)
	transport.RegisterAdmin(e, otpService, tokens, cfg.AdminAPIKey)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
