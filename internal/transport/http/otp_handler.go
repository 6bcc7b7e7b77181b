package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s3ts/otp-backend/internal/service"
	"github.com/s3ts/otp-backend/internal/util"
)

type OTPHandler struct {
	otp *service.OTPService
}

func RegisterOTP(e *echo.Echo, otp *service.OTPService) {
	handler := &OTPHandler{otp: otp}
	group := e.Group("/v1/otp")
	group.POST("/send", handler.send)
	group.POST("/verify", handler.verify)
}

// send issues a verification code across the email and SMS channels and
// persists the OTP record.
func (h *OTPHandler) send(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.otp.Issue(c.Request().Context(), service.IssueRequest{
		Email: req.Email,
		Phone: req.Phone,
		Name:  req.Name,
		Code:  req.OTPCode,
		Type:  req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrIssueInputMissing) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("send otp: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("failed to send OTP"))
	}

	return c.JSON(http.StatusOK, SendOTPResponse{
		Success: result.Success,
		Results: SendOTPResults{Email: result.Email, SMS: result.SMS, Store: result.Store},
		Message: result.Message,
	})
}

// verify checks a submitted code. Wrong, expired, and locked-out codes are
// normal outcomes reported with Success=false, not HTTP errors.
func (h *OTPHandler) verify(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.otp.Verify(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrVerifyInputMissing) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		c.Logger().Errorf("verify otp: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("failed to verify OTP"))
	}

	return c.JSON(http.StatusOK, VerifyOTPResponse{Success: result.Success, Message: result.Message})
}
