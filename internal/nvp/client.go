package nvp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/mark1979smith/farmison/config"
	"github.com/sirupsen/logrus"
)

// ErrTransportFailure wraps every network or HTTP-level failure of a call.
var ErrTransportFailure = errors.New("transport failure")

const maxBodySize = 1 << 20

// Client posts flat parameter sets to a single endpoint and decodes the reply.
// Only transport failures are retried; a decoded reply is always returned as is.
type Client struct {
	Endpoint    string
	HTTPClient  *http.Client
	Timeout     time.Duration
	RetryConfig config.RetryConfig
	Separator   string
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.Timeout = timeout
	}
}

func WithRetry(retryConfig config.RetryConfig) Option {
	return func(c *Client) {
		c.RetryConfig = retryConfig
	}
}

// WithSeparator sets the pair separator of the reply body ("&" by default).
func WithSeparator(sep string) Option {
	return func(c *Client) {
		c.Separator = sep
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = httpClient
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		Endpoint:  endpoint,
		Timeout:   30 * time.Second,
		Separator: "&",
	}
	for _, opt := range opts {
		opt(c)
	}

	// Work on a copy; the caller's http.Client is never modified.
	httpClient := http.Client{}
	if c.HTTPClient != nil {
		httpClient = *c.HTTPClient
	}
	httpClient.Timeout = c.Timeout
	c.HTTPClient = &httpClient

	if c.RetryConfig.MaxAttempts <= 0 {
		c.RetryConfig.MaxAttempts = 1
	}
	if c.RetryConfig.BaseDelay == 0 {
		c.RetryConfig.BaseDelay = 100 * time.Millisecond
	}
	if c.RetryConfig.MaxDelay == 0 {
		c.RetryConfig.MaxDelay = 10 * time.Second
	}

	return c
}

// Call encodes params, posts them and decodes the flat reply.
func (c *Client) Call(ctx context.Context, params Request) (Response, error) {
	body, err := Encode(params)
	if err != nil {
		return nil, err
	}

	raw, err := c.postWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}

	return DecodeSeparated(raw, c.Separator)
}

func (c *Client) postWithRetry(ctx context.Context, body []byte) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		raw, err := c.post(ctx, body)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("[NVP Client] request to %s succeeded after %d attempts", c.Endpoint, attempt+1)
			}
			return raw, nil
		}

		lastErr = err

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := c.calculateBackoff(attempt)

		logrus.Warnf("[NVP Client] Retry %d/%d for %s after %v: %v",
			attempt+1, c.RetryConfig.MaxAttempts, c.Endpoint, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: context cancelled during retry: %w", ErrTransportFailure, ctx.Err())
		}
	}

	if c.RetryConfig.MaxAttempts == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("failed after %d attempts: %w", c.RetryConfig.MaxAttempts, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrTransportFailure, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransportFailure, err)
	}
	if len(raw) > maxBodySize {
		return nil, fmt.Errorf("%w: response larger than %d bytes", ErrMalformedResponse, maxBodySize)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransportFailure, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

// calculateBackoff computes 2^attempt * BaseDelay capped at MaxDelay, with ±15% jitter when enabled.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.RetryConfig.BaseDelay

	if delay > c.RetryConfig.MaxDelay {
		delay = c.RetryConfig.MaxDelay
	}

	if c.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
