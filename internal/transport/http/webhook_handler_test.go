package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postWebhookForm(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/sms-status", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookUpdatesLog(t *testing.T) {
	logs := &stubSMSLogRepo{matched: true}
	e := echo.New()
	RegisterWebhooks(e, newTestService(nil, logs, nil, nil))

	form := url.Values{}
	form.Set("MessageSid", "SM1234")
	form.Set("MessageStatus", "delivered")
	form.Set("To", "+233557881454")
	rec := postWebhookForm(e, form)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook received" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if len(logs.updateSIDs) != 1 || logs.updateSIDs[0] != "SM1234" {
		t.Fatalf("expected update for SM1234, got %v", logs.updateSIDs)
	}
}

func TestWebhookUnknownSIDStillAcknowledged(t *testing.T) {
	logs := &stubSMSLogRepo{matched: false}
	e := echo.New()
	RegisterWebhooks(e, newTestService(nil, logs, nil, nil))

	form := url.Values{}
	form.Set("MessageSid", "SMunknown")
	form.Set("MessageStatus", "delivered")
	rec := postWebhookForm(e, form)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown sid, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook received" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestWebhookStoreFault(t *testing.T) {
	logs := &stubSMSLogRepo{updateErr: errors.New("write failed")}
	e := echo.New()
	RegisterWebhooks(e, newTestService(nil, logs, nil, nil))

	form := url.Values{}
	form.Set("MessageSid", "SM1234")
	form.Set("MessageStatus", "delivered")
	rec := postWebhookForm(e, form)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on store fault, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook error" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
