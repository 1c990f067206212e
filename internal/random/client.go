// Package random fetches true random numbers from the random.org HTTP
// service. The Source interface is the seam battle logic depends on, so
// tests substitute fixed draws for the network call.
package random

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultURL asks random.org for one decimal fraction with two decimal
// places in plain-text format.
const DefaultURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// DefaultTimeout bounds how long a single draw may take end to end.
const DefaultTimeout = 5 * time.Second

// ErrUnavailable is returned when the request cannot be completed:
// connection failure, timeout, or a non-200 response.
var ErrUnavailable = errors.New("random.org request failed")

// ErrInvalidResponse is returned when the service answers 200 but the
// body does not parse as a decimal fraction.
var ErrInvalidResponse = errors.New("invalid random.org response")

// Source yields one uniformly distributed value in [0, 1).
type Source interface {
	Float(ctx context.Context) (float64, error)
}

// Client is the HTTP implementation of Source backed by random.org.
type Client struct {
	url  string
	http *http.Client
}

// NewClient constructs a Client for the given endpoint. An empty url or
// a non-positive timeout falls back to the package default.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// Float performs one GET against the configured endpoint and parses the
// plain-text body into a float64.
func (c *Client) Float(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	text := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResponse, text)
	}
	return value, nil
}
