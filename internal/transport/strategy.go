// Package transport executes one HTTP GET through an ordered list of
// interchangeable strategies, returning the first successful non-empty body.
// Individual strategy failures are swallowed; only exhaustion of the whole
// chain is reported, and as "no result" rather than an error, because the
// callers always have a fallback value to render.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mkryukov/personal-site-content/internal/common"
)

const maxConnectTimeout = 4 * time.Second

var (
	errEmptyBody    = errors.New("empty response body")
	errBadStatus    = errors.New("unexpected status code")
	errBadScheme    = errors.New("url scheme must be http or https")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// Strategy is one concrete mechanism for performing a GET. Implementations
// must honor ctx and return a non-empty body on success.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// connectTimeout bounds the dial phase to 4s, or the overall timeout when
// that is smaller.
func connectTimeout(overall time.Duration) time.Duration {
	if overall > 0 && overall < maxConnectTimeout {
		return overall
	}
	return maxConnectTimeout
}

// backoffConfig controls exponential backoff behaviour on the primary
// strategy.
type backoffConfig struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// ClientStrategy is the primary transport: a shared net/http client behind a
// circuit breaker and a short retry loop, so a flapping upstream is not
// hammered on every render.
type ClientStrategy struct {
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	backoff backoffConfig
}

// NewClientStrategy builds the primary strategy with the given overall
// timeout.
func NewClientStrategy(timeout time.Duration) *ClientStrategy {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "http-primary",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ClientStrategy{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout(timeout)}).DialContext,
			},
		},
		circuit: cb,
		backoff: backoffConfig{
			maxRetries:      2,
			initialInterval: 300 * time.Millisecond,
			maxInterval:     2 * time.Second,
		},
	}
}

func (s *ClientStrategy) Name() string { return "client" }

// Fetch requires an HTTP status in [200,300) and a non-empty body. Failed
// attempts are retried with exponential backoff; an open circuit aborts
// immediately.
func (s *ClientStrategy) Fetch(ctx context.Context, url string) ([]byte, error) {
	if s.client == nil {
		return nil, errNoHTTPClient
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := s.circuit.Execute(func() (interface{}, error) {
			return s.doRequest(ctx, url)
		})
		if err == nil {
			body, ok := result.([]byte)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return body, nil
		}

		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= s.backoff.maxRetries {
			return nil, lastErr
		}

		// Backoff with exponential delay.
		delay := s.backoff.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > s.backoff.maxInterval && s.backoff.maxInterval > 0 {
			delay = s.backoff.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
			// continue to next attempt
		}

		attempt++
	}
}

// doRequest performs one GET attempt.
func (s *ClientStrategy) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

// StreamStrategy is the fallback: a one-shot client built per call, no
// breaker, no shared state. Non-2xx responses simply produce no body.
type StreamStrategy struct {
	timeout time.Duration
}

// NewStreamStrategy builds the fallback strategy.
func NewStreamStrategy(timeout time.Duration) *StreamStrategy {
	return &StreamStrategy{timeout: timeout}
}

func (s *StreamStrategy) Name() string { return "stream" }

func (s *StreamStrategy) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: s.timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

// CurlStrategy is the last resort: invoking the system curl binary. The URL
// is passed as a single argv element, never through a shell, so quoting
// breakage is impossible; the scheme is still checked defensively.
type CurlStrategy struct {
	binPath string
	timeout time.Duration
}

// NewCurlStrategy returns nil when no curl binary is available; capability
// detection happens once at startup, not per call.
func NewCurlStrategy(timeout time.Duration) *CurlStrategy {
	path, err := exec.LookPath("curl")
	if err != nil {
		return nil
	}
	return &CurlStrategy{binPath: path, timeout: timeout}
}

func (s *CurlStrategy) Name() string { return "curl" }

func (s *CurlStrategy) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !common.HasAnyPrefix(url, "http://", "https://") {
		return nil, errBadScheme
	}

	maxTime := int(s.timeout.Seconds())
	if maxTime <= 0 {
		maxTime = 1
	}
	cmd := exec.CommandContext(ctx, s.binPath,
		"-fsSL",
		"--connect-timeout", strconv.Itoa(int(connectTimeout(s.timeout).Seconds())),
		"--max-time", strconv.Itoa(maxTime),
		"--", url,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(out)) == "" {
		return nil, errEmptyBody
	}
	return out, nil
}
