package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"leaveflow/internal/domain/integration"
	"leaveflow/internal/infra/ops"
	"leaveflow/internal/usecase/balance"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	attemptTimeout = 3 * time.Second

	reasonNotConfigured = "Integration not configured"
	reasonUnavailable   = "External balance system unavailable"
)

// Retry schedules are fixed: the first attempt runs immediately, each later
// attempt waits the listed delay first.
var (
	fetchBackoff  = []time.Duration{0, 1 * time.Second, 2 * time.Second, 4 * time.Second}
	deductBackoff = []time.Duration{0, 1 * time.Second, 2 * time.Second}
)

// EndpointResolver supplies the active endpoint for an integration type, or
// (nil, nil) when none is configured.
type EndpointResolver interface {
	FindActive(ctx context.Context, t integration.Type) (*integration.Endpoint, error)
}

// Client talks to the external balance system. Both operations share one
// resilience policy: resolve the endpoint, retry within a fixed budget with
// increasing blocking backoff, and convert every transport failure into a
// result value. Nothing escapes as an error.
type Client struct {
	endpoints  EndpointResolver
	httpClient *http.Client
	monitor    ops.Monitor
	logger     *slog.Logger
	sleep      func(time.Duration)
}

type Option func(*Client)

// WithSleep replaces the inter-attempt sleep, used by tests to observe the
// schedule without real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(endpoints EndpointResolver, monitor ops.Monitor, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: attemptTimeout},
		monitor:    monitor,
		logger:     logger,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type balanceAPIResponse struct {
	Balance *decimal.Decimal `json:"balance"`
}

// FetchBalance asks the external system for the user's official balance.
// Up to 4 attempts with 0/1/2/4s delays; any non-2xx status, timeout, or
// malformed body counts against the budget.
func (c *Client) FetchBalance(ctx context.Context, userID uuid.UUID) balance.Result {
	endpoint, err := c.endpoints.FindActive(ctx, integration.TypeVacationBalance)
	if err != nil {
		c.logger.Error("failed to resolve balance endpoint", "error", err.Error())
		return balance.Unavailable(reasonUnavailable)
	}
	if endpoint == nil {
		return balance.Unavailable(reasonNotConfigured)
	}

	lastFailure := reasonUnavailable
	for attempt, delay := range fetchBackoff {
		if delay > 0 {
			c.sleep(delay)
		}

		result, failure := c.fetchOnce(ctx, endpoint, userID)
		if failure == "" {
			return result
		}
		lastFailure = failure
		c.logger.Warn("balance fetch attempt failed",
			"attempt", attempt+1,
			"user_id", userID.String(),
			"reason", failure,
		)
	}
	return balance.Unavailable(fmt.Sprintf("%s: %s", reasonUnavailable, lastFailure))
}

func (c *Client) fetchOnce(ctx context.Context, endpoint *integration.Endpoint, userID uuid.UUID) (balance.Result, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, endpoint.EndpointURL, nil)
	if err != nil {
		return balance.Result{}, "invalid endpoint URL"
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-Id", userID.String())
	if endpoint.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+endpoint.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return balance.Result{}, "timeout reaching balance endpoint"
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return balance.Result{}, fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	var body balanceAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Balance == nil {
		return balance.Result{}, "malformed response body"
	}
	return balance.Available(*body.Balance), ""
}

type deductionRequest struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	Days      int    `json:"days"`
}

type deductionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Deduct posts an idempotent deduction for a processed request. The request
// id rides along as the idempotency key on every attempt so server-side
// replays of the same logical deduction are safe. Up to 3 attempts with
// 0/1/2s delays; on exhaustion the monitor is notified once and the caller
// sees unavailable.
func (c *Client) Deduct(ctx context.Context, requestID, userID uuid.UUID, days int) balance.DeductionResult {
	endpoint, err := c.endpoints.FindActive(ctx, integration.TypeVacationBalance)
	if err != nil {
		c.logger.Error("failed to resolve deduction endpoint", "error", err.Error())
		return balance.DeductionUnavailable(reasonUnavailable)
	}
	if endpoint == nil {
		return balance.DeductionUnavailable(reasonNotConfigured)
	}

	payload, err := json.Marshal(deductionRequest{
		RequestID: requestID.String(),
		UserID:    userID.String(),
		Days:      days,
	})
	if err != nil {
		return balance.DeductionUnavailable(reasonUnavailable)
	}

	lastFailure := reasonUnavailable
	for attempt, delay := range deductBackoff {
		if delay > 0 {
			c.sleep(delay)
		}

		c.logger.Info("calling deduction endpoint",
			"attempt", attempt+1,
			"request_id", requestID.String(),
		)
		result, failure := c.deductOnce(ctx, endpoint, requestID, payload)
		if failure == "" {
			return result
		}
		lastFailure = failure
		c.logger.Warn("deduction attempt failed",
			"attempt", attempt+1,
			"request_id", requestID.String(),
			"reason", failure,
		)
	}

	reason := fmt.Sprintf("%s: %s", reasonUnavailable, lastFailure)
	c.monitor.RecordDeductionFailure(requestID, reason)
	return balance.DeductionUnavailable(reason)
}

func (c *Client) deductOnce(ctx context.Context, endpoint *integration.Endpoint, requestID uuid.UUID, payload []byte) (balance.DeductionResult, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return balance.DeductionResult{}, "invalid endpoint URL"
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", requestID.String())
	req.Header.Set("X-Request-Id", requestID.String())
	if endpoint.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+endpoint.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return balance.DeductionResult{}, "timeout reaching deduction endpoint"
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return balance.DeductionResult{}, fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return balance.DeductionResult{}, "unreadable response body"
	}
	if len(raw) == 0 {
		return balance.DeductionSuccess(), ""
	}

	var body deductionResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return balance.DeductionResult{}, "malformed response body"
	}
	// An explicit rejection is an answer, not an outage; it is final and is
	// not retried.
	if body.Status == "rejected" {
		message := body.Message
		if message == "" {
			message = "External deduction rejected"
		}
		return balance.DeductionFailure(message), ""
	}
	return balance.DeductionSuccess(), ""
}
