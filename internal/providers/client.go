package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

var (
	// ErrNotFound is returned for a 404 from the upstream. It does not count
	// against the circuit breaker.
	ErrNotFound    = errors.New("upstream resource not found")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status code: %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status code: %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type Config struct {
	Name      string
	BaseURL   string
	Timeout   time.Duration
	RetryWait time.Duration
	UserAgent string
}

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRetryWait = 300 * time.Millisecond
	maxErrorBody     = 256
)

// Client is a JSON-over-HTTP client shared by every upstream provider. Each
// call is bounded by the configured timeout and retried once on a network
// error or 5xx before the failure is counted by the breaker.
type Client struct {
	name    string
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = DefaultRetryWait
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(1).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return !statusErr.Temporary()
			}
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &Client{
		name:    cfg.Name,
		http:    httpClient,
		breaker: breaker,
	}
}

func (c *Client) Name() string {
	return c.name
}

// GetJSON requests path with the given query and decodes a 2xx body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	logger := zerolog.Ctx(ctx)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParamsFromValues(query).
			Get(path)
		if err != nil {
			return nil, fmt.Errorf("%s request failed: %w", c.name, err)
		}

		switch {
		case resp.StatusCode() == http.StatusNotFound:
			return nil, ErrNotFound
		case !resp.IsSuccess():
			return nil, &StatusError{Provider: c.name, StatusCode: resp.StatusCode(), Body: truncate(resp.String())}
		}
		return resp.Body(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%s: %w: %v", c.name, ErrCircuitOpen, err)
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn().Err(err).Str("provider", c.name).Str("path", path).Msg("upstream request failed")
		}
		return err
	}

	body, _ := result.([]byte)
	if err := json.Unmarshal(body, out); err != nil {
		logger.Warn().Err(err).Str("provider", c.name).Str("path", path).Msg("upstream returned malformed JSON")
		return fmt.Errorf("%s returned malformed JSON: %w", c.name, err)
	}
	return nil
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
