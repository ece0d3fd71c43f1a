// internal/adapters/sentiment/client.go
package sentiment

import (
	"context"
	"net/http"
	"strings"

	"dealership/internal/adapters/remote"
	"dealership/internal/domain"
)

const analyzePath = "analyze/"

// Client talks to the sentiment-analysis microservice.
type Client struct {
	base string
	rc   remote.Caller
}

// New expects base already normalized (exactly one trailing slash).
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = remote.NewHTTPClient()
	}
	return &Client{base: base, rc: remote.Caller{Service: "sentiment", HC: hc}}
}

// Analyze classifies text. The result always carries a "sentiment" key:
// the service's object is returned unchanged when it has one, otherwise
// {"sentiment": "neutral"}.
func (c *Client) Analyze(ctx context.Context, text string) map[string]any {
	var out any
	if err := c.rc.Do(ctx, "analyze", http.MethodGet, c.base+analyzePath+escapeText(text), nil, &out); err != nil {
		return fallback()
	}
	m, ok := out.(map[string]any)
	if !ok {
		return fallback()
	}
	if _, ok := m[domain.FieldSentiment]; !ok {
		return fallback()
	}
	return m
}

func fallback() map[string]any {
	return map[string]any{domain.FieldSentiment: domain.SentimentNeutral}
}

// escapeText percent-encodes every byte except ASCII letters, digits, "_.-~"
// and "/". Slashes stay literal, so text containing them spans several path
// segments under analyze/.
func escapeText(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '_', c == '.', c == '-', c == '~', c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&15])
		}
	}
	return b.String()
}
