package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backend/internal/domain/models"
)

// Client talks to the playground backend. Zero value is not usable; call New.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError carries the server's error payload.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsConflict reports whether err is a 409 (strict booking rejection).
func IsConflict(err error) bool {
	apiErr, ok := err.(APIError)
	return ok && apiErr.Status == http.StatusConflict
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &payload)
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

type LoginResult struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

// Login authenticates and stores the token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	c.Token = out.Token
	return out, nil
}

// Playgrounds fetches the map screen listing.
func (c *Client) Playgrounds(ctx context.Context) ([]models.Playground, error) {
	var out []models.Playground
	if err := c.do(ctx, http.MethodGet, "/api/playgrounds", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Playground fetches a single playground.
func (c *Client) Playground(ctx context.Context, id int64) (models.Playground, error) {
	var out models.Playground
	err := c.do(ctx, http.MethodGet, "/api/playgrounds/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// BookingResponse mirrors the server's 201 payload.
type BookingResponse struct {
	Payment    models.Payment    `json:"payment"`
	Playground models.Playground `json:"playground"`
}

// Book creates a booking for the playground. Amount 0 lets the server use
// the playground's booking price.
func (c *Client) Book(ctx context.Context, playgroundID int64, method string, amount float64) (BookingResponse, error) {
	var out BookingResponse
	err := c.do(ctx, http.MethodPost, "/api/bookings/"+strconv.FormatInt(playgroundID, 10), map[string]any{
		"method": method,
		"amount": amount,
	}, &out)
	return out, err
}

// CompletePaymentResponse mirrors the completion payload.
type CompletePaymentResponse struct {
	Message string         `json:"message"`
	Payment models.Payment `json:"payment"`
}

// CompletePayment settles the payment.
func (c *Client) CompletePayment(ctx context.Context, paymentID int64) (CompletePaymentResponse, error) {
	var out CompletePaymentResponse
	err := c.do(ctx, http.MethodPut, "/api/payments/"+strconv.FormatInt(paymentID, 10)+"/complete", nil, &out)
	return out, err
}

// BookingFlow drives the screen-level sequence: book, update the local
// tracker, and on payment completion flip the badge to Paid. Tracker state
// stays optimistic and is not re-checked against the server.
type BookingFlow struct {
	Client  *Client
	Tracker *ActivityTracker
}

func trackerKey(playgroundID int64) string {
	return strconv.FormatInt(playgroundID, 10)
}

// Book books the playground and records the local "booked" badge.
func (f *BookingFlow) Book(ctx context.Context, playgroundID int64, method string) (BookingResponse, error) {
	resp, err := f.Client.Book(ctx, playgroundID, method, 0)
	if err != nil {
		return BookingResponse{}, err
	}
	f.Tracker.Book(trackerKey(playgroundID))
	return resp, nil
}

// Pay completes the payment and marks the badge Paid on success.
func (f *BookingFlow) Pay(ctx context.Context, playgroundID, paymentID int64) (CompletePaymentResponse, error) {
	resp, err := f.Client.CompletePayment(ctx, paymentID)
	if err != nil {
		return CompletePaymentResponse{}, err
	}
	if resp.Payment.Status == models.PaymentPaid {
		f.Tracker.MarkPaid(trackerKey(playgroundID))
	}
	return resp, nil
}
