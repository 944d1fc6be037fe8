// Package bookingclient submits booking requests to a remote intake over HTTP.
package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	bookingsPath   = "/api/v1/bookings"
	maxErrorBody   = 4 << 10
)

var (
	ErrTimeout = errors.New("booking intake timeout")
	ErrNetwork = errors.New("booking intake unreachable")
)

// HTTPError is a non-2xx answer from the intake. Message is the
// user-displayable reason when the intake sent one.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("booking intake http error: status=%d code=%s body=%s", e.StatusCode, e.Code, e.Body)
}

// Client represents the booking intake HTTP client.
type Client struct {
	baseURL string
	ua      string
	http    *http.Client
}

// Request is the POST /bookings payload.
type Request struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// Acknowledgement is the intake's answer to an accepted booking.
type Acknowledgement struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

type envelope struct {
	Success bool             `json:"success"`
	Data    *Acknowledgement `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new booking intake client.
func NewClient(baseURL string, timeout time.Duration, ua string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		ua:      ua,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// CreateBooking posts one booking request. idempotencyKey is forwarded so the
// intake can drop retries of the same attempt.
func (c *Client) CreateBooking(ctx context.Context, req Request, idempotencyKey string) (*Acknowledgement, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("booking intake request error: client is nil")
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, fmt.Errorf("booking intake config error: base_url is empty")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("booking intake request error: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookingsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("booking intake request error: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}
	if c.ua != "" {
		httpReq.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		if decodeErr != nil || env.Data == nil {
			return nil, fmt.Errorf("booking intake response error: unexpected body %q", string(body))
		}
		return env.Data, nil
	}

	httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	if decodeErr == nil && env.Error != nil {
		httpErr.Code = env.Error.Code
		httpErr.Message = env.Error.Message
	}
	return nil, httpErr
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return fmt.Errorf("booking intake request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}
