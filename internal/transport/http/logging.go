package http

import (
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			operator := "anonymous"
			if op, ok := CurrentOperator(c); ok && op != "" {
				operator = op
			}

			reqBodySummary := c.Get(requestBodyLogKey)
			resBodySummary := c.Get(responseBodyLogKey)

			payload := struct {
				Time      string `json:"time"`
				Operator  string `json:"operator"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string      `json:"method"`
					URI    string      `json:"uri"`
					Body   interface{} `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int         `json:"status"`
					Body   interface{} `json:"body,omitempty"`
					Error  string      `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				Operator:  operator,
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			if reqBodySummary != nil {
				payload.Request.Body = reqBodySummary
			}

			payload.Response.Status = v.Status
			if resBodySummary != nil {
				payload.Response.Body = resBodySummary
			}
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}

			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

// sensitiveKey reports whether a field must never reach the logs. OTP codes
// are credentials for the duration of their validity window.
func sensitiveKey(key string) bool {
	lowered := strings.ToLower(key)
	return strings.Contains(lowered, "password") ||
		strings.Contains(lowered, "otp") ||
		lowered == "code" || strings.HasSuffix(lowered, "_code") ||
		strings.Contains(lowered, "api_key") ||
		strings.Contains(lowered, "token")
}

func sanitizeBody(body []byte, contentType string) interface{} {
	if len(body) == 0 {
		return nil
	}

	loweredType := strings.ToLower(strings.TrimSpace(contentType))

	if strings.HasPrefix(loweredType, "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			sanitized := make(map[string]interface{}, len(values))
			for key, vals := range values {
				if sensitiveKey(key) {
					sanitized[key] = "redacted"
					continue
				}
				if len(vals) == 1 {
					sanitized[key] = clampString(vals[0])
				} else {
					slice := make([]interface{}, 0, len(vals))
					for _, v := range vals {
						slice = append(slice, clampString(v))
					}
					sanitized[key] = slice
				}
			}
			if len(sanitized) > 0 {
				return sanitized
			}
		}
	}

	if strings.HasPrefix(loweredType, "application/json") || json.Valid(body) {
		var data interface{}
		if err := json.Unmarshal(body, &data); err == nil {
			return sanitizeJSON(data, "")
		}
	}

	if containsBinaryBytes(body) {
		return "binary"
	}
	return clampString(string(body))
}

func sanitizeJSON(value interface{}, keyHint string) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, val := range v {
			if sensitiveKey(key) {
				result[key] = "redacted"
				continue
			}
			result[key] = sanitizeJSON(val, strings.ToLower(key))
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = sanitizeJSON(item, keyHint)
		}
		return result
	case string:
		if keyHint != "" && sensitiveKey(keyHint) {
			return "redacted"
		}
		return clampString(v)
	default:
		return v
	}
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
