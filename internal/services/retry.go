package services

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	zap "go.uber.org/zap"

	config "github.com/inference-gateway/coordpick/config"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// RetryableHTTPClient wraps http.Client and retries transient failures with
// exponential backoff. Only bodiless requests are safe to retry.
type RetryableHTTPClient struct {
	client *http.Client
	config config.FetchRetryConfig
}

// NewRetryableHTTPClient creates a new retryable HTTP client. A zero timeout means none.
func NewRetryableHTTPClient(timeout time.Duration, cfg config.FetchRetryConfig) *RetryableHTTPClient {
	return &RetryableHTTPClient{
		client: &http.Client{Timeout: timeout},
		config: cfg,
	}
}

// Do executes an HTTP request, retrying while the failure looks transient
func (r *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if !r.config.Enabled || r.config.MaxAttempts <= 1 {
		return r.client.Do(req)
	}

	log := logger.L(req.Context()).With(zap.String("url", req.URL.Redacted()))

	var lastErr error
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		resp, err := r.client.Do(req.Clone(req.Context()))

		switch {
		case err == nil && (!isRetryableStatusCode(resp.StatusCode) || attempt == r.config.MaxAttempts):
			return resp, nil
		case err == nil:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
		case !isRetryableError(err):
			return nil, err
		default:
			lastErr = err
		}

		if attempt == r.config.MaxAttempts {
			break
		}

		backoff := r.backoff(attempt)
		log.Debug("Retrying image fetch",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.NamedError("cause", lastErr))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("max retry attempts (%d) exceeded, last error: %w", r.config.MaxAttempts, lastErr)
}

// backoff returns the delay after the given failed attempt
func (r *RetryableHTTPClient) backoff(attempt int) time.Duration {
	backoff := r.config.InitialBackoffMs
	for i := 1; i < attempt; i++ {
		backoff *= r.config.BackoffMultiplier
		if backoff >= r.config.MaxBackoffMs {
			break
		}
	}

	if r.config.MaxBackoffMs > 0 && backoff > r.config.MaxBackoffMs {
		backoff = r.config.MaxBackoffMs
	}

	return time.Duration(backoff) * time.Millisecond
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	msg := err.Error()
	for _, transient := range []string{"connection refused", "connection reset", "no such host", "timeout awaiting response headers", "i/o timeout", "EOF"} {
		if strings.Contains(msg, transient) {
			return true
		}
	}

	return false
}

func isRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
