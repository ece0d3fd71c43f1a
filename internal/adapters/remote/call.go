// internal/adapters/remote/call.go
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"dealership/internal/adapters/observability"
)

// DefaultTimeout bounds every outbound call. It is not configurable.
const DefaultTimeout = 10 * time.Second

// ErrCallFailed covers transport errors, non-2xx statuses and undecodable bodies.
var ErrCallFailed = errors.New("remote call failed")

// NewHTTPClient returns the client used when none is injected.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// Caller issues single JSON request/response exchanges against one service.
type Caller struct {
	Service string // metrics label: backend|sentiment
	HC      *http.Client
}

// Do sends method to url with body (JSON-encoded when non-nil) and decodes the
// JSON response into out. endpoint is only used as a metrics label.
func (c Caller) Do(ctx context.Context, endpoint, method, url string, body, out any) error {
	start := time.Now()
	status, err := c.do(ctx, method, url, body, out)
	observability.ObserveExternal(c.Service, endpoint, status, time.Since(start))
	if err != nil {
		log.Warn().
			Str("service", c.Service).
			Str("method", method).
			Str("url", url).
			Int("status", status).
			Err(err).
			Msg("remote call failed")
	}
	return err
}

func (c Caller) do(ctx context.Context, method, url string, body, out any) (int, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: encode body: %v", ErrCallFailed, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCallFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dealership/1.0")

	log.Debug().Str("service", c.Service).Str("method", method).Str("url", url).Msg("remote call")

	hc := c.HC
	if hc == nil {
		hc = NewHTTPClient()
	}
	resp, err := hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, fmt.Errorf("%w: status %d: %s", ErrCallFailed, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode: %v", ErrCallFailed, err)
	}
	return resp.StatusCode, nil
}
