// Package client provides a Go client for the donation logistics REST API,
// including the commitment saga runner volunteers drive multi-item pickups
// with and the polling watcher that tracks a user's current operation state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin HTTP client for the REST API. The bearer token is ambient:
// set once and attached to every request.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates an API client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Delivery mirrors the delivery JSON returned by the API.
type Delivery struct {
	ID           string    `json:"id"`
	BatchID      string    `json:"batch_id"`
	VolunteerID  *string   `json:"volunteer_id"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	PickupCode   *string   `json:"pickup_code"`
	DeliveryCode *string   `json:"delivery_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Reservation mirrors the reservation JSON returned by the API.
type Reservation struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	UserID    string    `json:"user_id"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CommitResult mirrors the response of the commit endpoint.
type CommitResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	PickupCode   string `json:"pickup_code"`
	DeliveryCode string `json:"delivery_code"`
}

// CommitDelivery POSTs a single commitment for the delivery.
func (c *Client) CommitDelivery(ctx context.Context, deliveryID string, quantity int) (CommitResult, error) {
	var result CommitResult
	path := fmt.Sprintf("/api/deliveries/%s/commit", deliveryID)
	err := c.post(ctx, path, map[string]int{"quantity": quantity}, &result)
	return result, err
}

// ListDeliveries fetches deliveries, optionally filtered by volunteer and
// status set.
func (c *Client) ListDeliveries(ctx context.Context, volunteerID string, statuses []string) ([]Delivery, error) {
	params := url.Values{}
	if volunteerID != "" {
		params.Set("volunteer_id", volunteerID)
	}
	if len(statuses) > 0 {
		params.Set("status", strings.Join(statuses, ","))
	}

	var deliveries []Delivery
	if err := c.get(ctx, "/api/deliveries/", params, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// ListReservations fetches reservations, optionally filtered by user.
func (c *Client) ListReservations(ctx context.Context, userID string, activeOnly bool) ([]Reservation, error) {
	params := url.Values{}
	if userID != "" {
		params.Set("user_id", userID)
	}
	if activeOnly {
		params.Set("active_only", "true")
	}

	var reservations []Reservation
	if err := c.get(ctx, "/api/resources/reservations", params, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
