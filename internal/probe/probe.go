// Package probe checks whether derived solution image URLs exist.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
)

// ErrAssetMissing is returned when the server reports the image does not exist.
var ErrAssetMissing = errors.New("solution image missing")

// Status is the availability of one URL.
type Status string

const (
	StatusAvailable Status = "available"
	StatusMissing   Status = "missing"
	StatusError     Status = "error"
)

// Config configures a Checker.
type Config struct {
	Timeout  time.Duration // Per-request timeout
	Attempts uint          // Total attempts for transient failures
	Delay    time.Duration // Initial delay between attempts
	Logger   *slog.Logger
}

// Checker issues HEAD requests for solution URLs. URLs found missing are
// remembered for the lifetime of the Checker and not requested again.
type Checker struct {
	httpClient *http.Client
	attempts   uint
	delay      time.Duration
	logger     *slog.Logger

	mu      sync.RWMutex
	missing map[string]struct{}
}

// New creates a Checker.
func New(cfg Config) *Checker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Checker{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		attempts:   cfg.Attempts,
		delay:      cfg.Delay,
		logger:     cfg.Logger,
		missing:    make(map[string]struct{}),
	}
}

// Check reports whether url exists. A 404 or 410 yields StatusMissing and
// ErrAssetMissing without retrying; other failures are retried.
func (c *Checker) Check(ctx context.Context, url string) (Status, error) {
	if c.IsKnownMissing(url) {
		return StatusMissing, ErrAssetMissing
	}

	err := retry.Do(
		func() error {
			return c.head(ctx, url)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrAssetMissing)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying solution check", "url", url, "attempt", n+1, "error", err)
		}),
	)

	switch {
	case err == nil:
		return StatusAvailable, nil
	case errors.Is(err, ErrAssetMissing):
		c.mu.Lock()
		c.missing[url] = struct{}{}
		c.mu.Unlock()
		return StatusMissing, err
	default:
		return StatusError, err
	}
}

// IsKnownMissing reports whether url was already found missing.
func (c *Checker) IsKnownMissing(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.missing[url]
	return ok
}

// Missing returns the number of URLs remembered as missing.
func (c *Checker) Missing() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.missing)
}

func (c *Checker) head(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: %s (%d)", ErrAssetMissing, url, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}
