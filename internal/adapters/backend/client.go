// internal/adapters/backend/client.go
package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"dealership/internal/adapters/remote"
)

const insertReviewPath = "/insert_review"

// NetworkErrorMessage is what PostReview reports under "error" on any failure.
const NetworkErrorMessage = "Network exception occurred"

// Client talks to the review-storage backend.
type Client struct {
	base string
	rc   remote.Caller
}

// New expects base already normalized (no trailing slash). A nil hc gets the
// default client with the fixed timeout.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = remote.NewHTTPClient()
	}
	return &Client{base: base, rc: remote.Caller{Service: "backend", HC: hc}}
}

// Get fetches base+endpoint with params as the query string and returns the
// decoded JSON body. Any failure, or a null body, yields an empty list, so
// callers cannot tell an empty result from a failed call; use Fetch when that
// matters.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any) any {
	out, err := c.Fetch(ctx, endpoint, params)
	if err != nil || out == nil {
		return []any{}
	}
	return out
}

// Fetch is Get without the fallback.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]any) (any, error) {
	u := c.base + endpoint
	if q := encodeParams(params); q != "" {
		u += "?" + q
	}
	var out any
	if err := c.rc.Do(ctx, "get", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostReview submits one review record and returns the backend's decoded reply
// whatever its shape (object, list or null), or {"error": NetworkErrorMessage}
// when the call fails.
func (c *Client) PostReview(ctx context.Context, review map[string]any) any {
	var out any
	// json encodes a nil map as null; send an empty object instead
	if review == nil {
		review = map[string]any{}
	}
	if err := c.rc.Do(ctx, "insert_review", http.MethodPost, c.base+insertReviewPath, review, &out); err != nil {
		return map[string]any{"error": NetworkErrorMessage}
	}
	return out
}

// encodeParams turns scalar values into a query string sorted by key. nil
// values are dropped and slices repeat the key.
func encodeParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	q := url.Values{}
	for k, v := range params {
		switch v := v.(type) {
		case nil:
		case []string:
			for _, s := range v {
				q.Add(k, s)
			}
		case []any:
			for _, s := range v {
				if s != nil {
					q.Add(k, fmt.Sprint(s))
				}
			}
		default:
			q.Add(k, fmt.Sprint(v))
		}
	}
	return q.Encode()
}
