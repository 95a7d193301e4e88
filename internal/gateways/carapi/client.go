// Package carapi talks to the car service through the authenticated admin gateway.
package carapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/usecase"
)

const defaultTimeout = 10 * time.Second

var _ usecase.CarGateway = (*Client)(nil)

// Config describes how to reach and authenticate against the admin gateway.
type Config struct {
	BaseURL    string
	Email      string
	Password   string
	AuthCookie string
	Timeout    time.Duration
}

// Client is a car service client; it owns the gateway session.
type Client struct {
	baseURL    string
	email      string
	password   string
	session    *Session
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client with an empty session.
func NewClient(cfg Config, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		email:      cfg.Email,
		password:   cfg.Password,
		session:    NewSession(cfg.AuthCookie),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EnsureAuthenticated logs in unless the held session still carries the auth cookie.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	if c.session.Valid() {
		return nil
	}
	if c.baseURL == "" {
		return fmt.Errorf("%w: admin gateway url is empty", usecase.ErrUpstreamUnavailable)
	}

	body, err := json.Marshal(loginRequest{Email: c.email, Password: c.password})
	if err != nil {
		return fmt.Errorf("marshal login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamLogins.WithLabelValues("error").Inc()
		return transportError("login", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		upstreamLogins.WithLabelValues("rejected").Inc()
		c.log.Warn("admin gateway login rejected", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: login returned status %d", usecase.ErrAuthFailed, resp.StatusCode)
	}

	c.session.Set(resp.Cookies())
	upstreamLogins.WithLabelValues("ok").Inc()
	c.log.Debug("admin gateway login ok")
	return nil
}

// ResetSession forgets the held session.
func (c *Client) ResetSession() {
	c.session.Reset()
}

// PatchCar sends a partial update for the car identified by carID.
func (c *Client) PatchCar(ctx context.Context, carID int64, patch entity.CarPatch) (*entity.UpstreamResponse, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshal car patch: %w", err)
	}
	return c.do(ctx, "patch_car", http.MethodPatch, carID, bytes.NewReader(body))
}

// GetCar fetches the car identified by carID.
func (c *Client) GetCar(ctx context.Context, carID int64) (*entity.UpstreamResponse, error) {
	return c.do(ctx, "get_car", http.MethodGet, carID, nil)
}

func (c *Client) do(ctx context.Context, op, method string, carID int64, body io.Reader) (*entity.UpstreamResponse, error) {
	url := fmt.Sprintf("%s/car/cars/%d", c.baseURL, carID)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, ck := range c.session.Cookies() {
		req.AddCookie(ck)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(op, "error").Inc()
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues(op, "error").Inc()
		return nil, transportError(op, err)
	}
	upstreamRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	return &entity.UpstreamResponse{
		Status: resp.StatusCode,
		Body:   jsonBody(raw),
	}, nil
}

// jsonBody keeps raw when it is JSON and wraps anything else into a message object.
func jsonBody(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(map[string]string{"message": string(trimmed)})
	return wrapped
}

func transportError(op string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %s: %w", usecase.ErrUpstreamTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %w", usecase.ErrUpstreamUnavailable, op, err)
}
