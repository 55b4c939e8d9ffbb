package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"leaveflow/internal/domain/integration"
	"leaveflow/internal/pkg/errs"
	"leaveflow/internal/usecase/commands"

	"github.com/goccy/go-json"
)

const holidayFetchTimeout = 10 * time.Second

// HolidayClient pulls the published holiday calendar. One attempt, generous
// timeout; the import is an explicit admin action that the operator simply
// reruns on failure, so no retry budget applies.
type HolidayClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHolidayClient(logger *slog.Logger) *HolidayClient {
	return &HolidayClient{
		httpClient: &http.Client{Timeout: holidayFetchTimeout},
		logger:     logger,
	}
}

type holidayAPIEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (c *HolidayClient) FetchYear(ctx context.Context, endpoint *integration.Endpoint, year int) ([]commands.ImportedHoliday, int, error) {
	target, err := url.Parse(endpoint.EndpointURL)
	if err != nil {
		return nil, 0, errs.Wrap(err, "invalid holiday endpoint URL")
	}
	q := target.Query()
	q.Set("year", strconv.Itoa(year))
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to build holiday request")
	}
	req.Header.Set("Accept", "application/json")
	if endpoint.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+endpoint.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errs.Wrap(err, "holiday endpoint unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, errs.New(fmt.Sprintf("holiday endpoint returned status %d", resp.StatusCode))
	}

	var entries []holidayAPIEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, 0, errs.Wrap(err, "malformed holiday response")
	}

	var (
		holidays []commands.ImportedHoliday
		skipped  int
	)
	for _, entry := range entries {
		day, err := time.ParseInLocation("2006-01-02", entry.Date, time.UTC)
		if err != nil || entry.Name == "" {
			c.logger.Warn("skipping malformed holiday entry", "date", entry.Date, "name", entry.Name)
			skipped++
			continue
		}
		holidays = append(holidays, commands.ImportedHoliday{Date: day, Name: entry.Name})
	}
	return holidays, skipped, nil
}
