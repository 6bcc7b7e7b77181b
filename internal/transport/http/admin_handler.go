package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/s3ts/otp-backend/internal/repository/ports"
	"github.com/s3ts/otp-backend/internal/service"
	"github.com/s3ts/otp-backend/internal/util"
)

type AdminHandler struct {
	otp    *service.OTPService
	tokens *util.JWTManager
	apiKey string
}

// RegisterAdmin wires the operator endpoints: a token exchange and a
// delivery-log listing for inspecting SMS send attempts.
func RegisterAdmin(e *echo.Echo, otp *service.OTPService, tokens *util.JWTManager, apiKey string) {
	handler := &AdminHandler{otp: otp, tokens: tokens, apiKey: apiKey}
	e.POST("/v1/admin/token", handler.issueToken)
	e.GET("/v1/admin/sms-logs", handler.listSMSLogs, RequireOperator(tokens))
}

func (h *AdminHandler) issueToken(c echo.Context) error {
	var req OperatorTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, util.Error("invalid api key"))
	}
	operator := req.Operator
	if operator == "" {
		operator = "operator"
	}

	token, expiresAt, err := h.tokens.Generate(operator)
	if err != nil {
		c.Logger().Errorf("issue operator token: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to issue token"))
	}
	return c.JSON(http.StatusOK, OperatorTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

func (h *AdminHandler) listSMSLogs(c echo.Context) error {
	filter := ports.SMSLogFilter{
		Phone:  c.QueryParam("phone"),
		Status: c.QueryParam("status"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Offset = v
		}
	}

	logs, err := h.otp.DeliveryLogs(c.Request().Context(), filter)
	if err != nil {
		c.Logger().Errorf("list sms logs: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list delivery logs"))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return c.JSON(http.StatusOK, echo.Map{
		"logs": logs,
		"meta": SMSLogsMeta{Limit: limit, Offset: offset, Count: len(logs)},
	})
}
