package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s3ts/otp-backend/internal/service"
)

type WebhookHandler struct {
	otp *service.OTPService
}

func RegisterWebhooks(e *echo.Echo, otp *service.OTPService) {
	handler := &WebhookHandler{otp: otp}
	e.POST("/v1/webhooks/sms-status", handler.smsStatus)
}

// smsStatus receives the gateway's asynchronous delivery-status callback. The
// gateway posts form fields and expects a plain-text acknowledgement; a miss
// on the message id is acknowledged the same as a hit. Only a store fault
// returns 500, which the gateway treats as a signal to retry.
func (h *WebhookHandler) smsStatus(c echo.Context) error {
	messageSID := c.FormValue("MessageSid")
	messageStatus := c.FormValue("MessageStatus")

	if err := h.otp.UpdateDeliveryStatus(c.Request().Context(), messageSID, messageStatus); err != nil {
		c.Logger().Errorf("sms status webhook: %v", err)
		return c.String(http.StatusInternalServerError, "Webhook error")
	}
	return c.String(http.StatusOK, "Webhook received")
}
