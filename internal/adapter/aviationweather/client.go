package aviationweather

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
)

// DefaultBaseURL is the aviationweather.gov METAR endpoint.
const DefaultBaseURL = "https://aviationweather.gov/api/data/metar"

const maxBodyBytes = 64 << 10

// HTTPError reports a non-200 response from the weather service.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error fetching METAR: %d", e.StatusCode)
}

// Client implements domain.Fetcher against the aviationweather.gov data API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retries    int
	retryWait  time.Duration
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a METAR fetch client. retries is the number of extra
// attempts made after a network error or a 5xx response.
func NewClient(baseURL string, timeout time.Duration, retries int, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		retries:   retries,
		retryWait: 500 * time.Millisecond,
		metrics:   metrics,
		logger:    logger,
	}
}

// FetchMETAR returns the most recent raw METAR for a station.
func (c *Client) FetchMETAR(ctx context.Context, station string) (string, error) {
	u := c.baseURL + "/?" + url.Values{"ids": {station}}.Encode()

	var report string
	op := func() error {
		var err error
		report, err = c.doRequest(ctx, u)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying metar fetch", "station", station, "error", err, "wait", wait)
	}

	if err := backoff.RetryNotify(op, c.backoffPolicy(ctx), notify); err != nil {
		if errors.Is(err, domain.ErrNoReport) {
			return "", fmt.Errorf("%w for airport code: %s", domain.ErrNoReport, station)
		}
		return "", err
	}
	return report, nil
}

func (c *Client) backoffPolicy(ctx context.Context) backoff.BackOffContext {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.retryWait
	eb.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(c.retries)), ctx)
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("network_error").Inc()
		return "", fmt.Errorf("network error fetching METAR: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FetchRequests.WithLabelValues("http_error").Inc()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", &HTTPError{StatusCode: resp.StatusCode}
	}

	report, err := firstLine(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("network_error").Inc()
		return "", fmt.Errorf("network error fetching METAR: %w", err)
	}
	if report == "" {
		c.metrics.FetchRequests.WithLabelValues("empty").Inc()
		return "", domain.ErrNoReport
	}

	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	return report, nil
}

// firstLine returns the first non-blank line of r. The service lists the
// newest observation first.
func firstLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", sc.Err()
}

func retryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, domain.ErrNoReport) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
