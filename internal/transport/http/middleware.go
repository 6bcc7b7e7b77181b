package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/s3ts/otp-backend/internal/util"
)

const contextOperatorKey = "operator"

func RequireOperator(tokens *util.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
			}
			c.Set(contextOperatorKey, claims.Operator)
			return next(c)
		}
	}
}

func CurrentOperator(c echo.Context) (string, bool) {
	operator, ok := c.Get(contextOperatorKey).(string)
	return operator, ok
}
