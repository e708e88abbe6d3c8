package utils

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedTransport waits on a token bucket before every request and
// sets the JSON headers the API expects.
type RateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func NewRateLimitedTransport(base http.RoundTripper, limit rate.Limit, burst int) *RateLimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedTransport{base: base, limiter: rate.NewLimiter(limit, burst)}
}

func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return t.base.RoundTrip(req)
}

// NewAPIClient returns an HTTP client for the query endpoint. A zero
// requestsPerSecond disables rate limiting.
func NewAPIClient(timeout time.Duration, requestsPerSecond float64, burst int) *http.Client {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: NewRateLimitedTransport(http.DefaultTransport, limit, burst),
	}
}
