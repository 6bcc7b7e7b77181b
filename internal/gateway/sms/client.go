package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBaseURL = "https://api.twilio.com"

type Config struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	APIBaseURL     string
	StatusCallback string
	Timeout        time.Duration
}

func (c *Config) Validate() error {
	if c.AccountSID == "" {
		return errors.New("sms: account sid is required")
	}
	if c.AuthToken == "" {
		return errors.New("sms: auth token is required")
	}
	if c.FromNumber == "" {
		return errors.New("sms: sender number is required")
	}
	return nil
}

// Message is the subset of the gateway's send response this service cares
// about: the message id used to correlate status callbacks, and the initial
// delivery status.
type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
}

// GatewayError is a non-2xx response from the SMS gateway.
type GatewayError struct {
	HTTPStatus int
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sms gateway: %s (code %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("sms gateway: unexpected status %d", e.HTTPStatus)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	cfg    Config
	client httpDoer
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Send dispatches one SMS through the gateway's messages endpoint and returns
// the gateway's view of the created message.
func (c *Client) Send(ctx context.Context, to, body string) (*Message, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.cfg.FromNumber)
	form.Set("Body", body)
	if c.cfg.StatusCallback != "" {
		form.Set("StatusCallback", c.cfg.StatusCallback)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(c.cfg.APIBaseURL, "/"), c.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &GatewayError{HTTPStatus: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(gwErr)
		return nil, gwErr
	}

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, fmt.Errorf("sms gateway: decode response: %w", err)
	}
	return &msg, nil
}
