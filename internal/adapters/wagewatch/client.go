// Package wagewatch is the client for the external wage-data API used by
// the admin verification tool. It is the only outbound I/O in the system.
package wagewatch

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"careersite/internal/adapters/observability"
	"careersite/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound     = errors.New("wagewatch: not found")
	ErrUnauthorized = errors.New("wagewatch: unauthorized")
	ErrForbidden    = errors.New("wagewatch: forbidden")
)

type wageResponse struct {
	City      string  `json:"city"`
	HourlyMin float64 `json:"hourly_min"`
	HourlyMax float64 `json:"hourly_max"`
	Source    string  `json:"source"`
}

// ScrapeCityWage fetches the observed hourly wage range for a city. Tries
// the current endpoint first, falls back to the legacy path.
func (c *Client) ScrapeCityWage(ctx context.Context, citySlug string) (domain.WageQuote, error) {
	candidates := []string{
		fmt.Sprintf("%s/v1/wages/%s", c.base, citySlug), // preferred
		fmt.Sprintf("%s/wages/%s", c.base, citySlug),    // legacy
	}

	var out wageResponse
	var last error
	for _, u := range candidates {
		if err := c.get(ctx, u, &out); err != nil {
			if errors.Is(err, ErrNotFound) {
				last = err
				continue // try next pattern
			}
			return domain.WageQuote{}, err
		}
		if out.HourlyMin <= 0 || out.HourlyMax < out.HourlyMin {
			return domain.WageQuote{}, fmt.Errorf("wagewatch: malformed range for %s", citySlug)
		}
		return domain.WageQuote{
			CitySlug:  citySlug,
			Hourly:    domain.Range{Min: out.HourlyMin, Max: out.HourlyMax},
			Source:    out.Source,
			Retrieved: time.Now().UTC(),
		}, nil
	}
	if last != nil {
		return domain.WageQuote{}, last
	}
	return domain.WageQuote{}, errors.New("no candidate URL succeeded")
}

// get performs a GET with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring Retry-After.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-API-Key", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "careersite-verify/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("wagewatch", "wages", resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
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

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
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

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter from crypto/rand, which is safe under concurrency.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
