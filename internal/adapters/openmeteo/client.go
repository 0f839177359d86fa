// internal/adapters/openmeteo/client.go
package openmeteo

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/heynenm/snowreport/internal/adapters/observability"
	"github.com/heynenm/snowreport/internal/domain"
)

const (
	userAgent    = "snowreport/1.0"
	forecastPath = "/v1/forecast"
)

// UpstreamError reports a non-success status from Open-Meteo.
type UpstreamError struct{ Status int }

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("open-meteo returned status %d", e.Status)
}

var ErrCircuitOpen = errors.New("open-meteo circuit open")

// Client fetches modeled hourly snowfall from Open-Meteo. The API needs no
// key; the User-Agent identifies us to the provider as etiquette. Calls are
// rate limited client-side and guarded by a circuit breaker so a struggling
// upstream is not hammered by concurrent per-resort fan-outs.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
	cb   *gobreaker.CircuitBreaker
}

func New(base string, rps int, timeout time.Duration) *Client {
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		cb:   cb,
	}
}

// hourlyPayload is the slice of the forecast response we care about.
// Snowfall decodes through pointers so JSON nulls survive the decode
// instead of failing it; the aggregation treats them as zero.
type hourlyPayload struct {
	Hourly struct {
		Time     []string   `json:"time"`
		Snowfall []*float64 `json:"snowfall"`
	} `json:"hourly"`
}

// FetchSnow returns the trailing 24h/72h snowfall totals in inches for one
// coordinate pair. The request spans the past 3 days plus today, hourly, in
// UTC; the windows are suffixes of that series. An empty series yields null
// totals without error.
func (c *Client) FetchSnow(ctx context.Context, lat, lon float64) (domain.SnowTotals, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", "snowfall")
	q.Set("past_days", "3")
	q.Set("forecast_days", "1")
	q.Set("timezone", "UTC")

	var payload hourlyPayload
	if err := c.get(ctx, c.base+forecastPath+"?"+q.Encode(), &payload); err != nil {
		return domain.SnowTotals{}, err
	}

	n := min(len(payload.Hourly.Time), len(payload.Hourly.Snowfall))
	return domain.TotalsFromHourly(payload.Hourly.Snowfall[:n]), nil
}

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After when
// provided. The circuit breaker sees each attempt's transport-level outcome.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", userAgent)

		start := time.Now()
		res, err := c.cb.Execute(func() (any, error) { return c.hc.Do(req) })
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
			}
			// network error or context canceled
			if ctx.Err() != nil {
				return ctx.Err()
			}
			observability.ObserveExternal("openmeteo", forecastPath, 0, time.Since(start))
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		resp := res.(*http.Response)
		observability.ObserveExternal("openmeteo", forecastPath, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("decode open-meteo response: %w", err)
			}
			return nil

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = &UpstreamError{Status: resp.StatusCode}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			resp.Body.Close()
			return &UpstreamError{Status: resp.StatusCode}
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0                  // 0..1
	j := time.Duration(0.5 * f * float64(base)) // up to +50%
	return base + j
}
