package app_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealership/internal/app"
)

// ---- fakes ----

type fakeBackend struct {
	mu      sync.Mutex
	bodies  map[string]any // endpoint -> Get result
	gets    []string
	posted  []map[string]any
	postErr bool
	reply   func() any // overrides the default {"id": n}
}

func (f *fakeBackend) Get(ctx context.Context, endpoint string, params map[string]any) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, endpoint)
	if b, ok := f.bodies[endpoint]; ok {
		return b
	}
	return []any{}
}

func (f *fakeBackend) PostReview(ctx context.Context, review map[string]any) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, review)
	if f.postErr {
		return map[string]any{"error": "Network exception occurred"}
	}
	if f.reply != nil {
		return f.reply()
	}
	return map[string]any{"id": float64(len(f.posted))}
}

type fakeSentiment struct {
	calls  atomic.Int32
	labels map[string]string // text -> label; missing -> neutral
}

func (f *fakeSentiment) Analyze(ctx context.Context, text string) map[string]any {
	f.calls.Add(1)
	if l, ok := f.labels[text]; ok {
		return map[string]any{"sentiment": l}
	}
	return map[string]any{"sentiment": "neutral"}
}

// ---- tests ----

func TestListDealers_Endpoints(t *testing.T) {
	b := &fakeBackend{bodies: map[string]any{
		"/fetchDealers":        []any{map[string]any{"id": 1.0}, map[string]any{"id": 2.0}},
		"/fetchDealers/Kansas": []any{map[string]any{"id": 2.0}},
	}}
	s := app.NewDealerService(b, &fakeSentiment{}, 2)

	assert.Len(t, s.ListDealers(context.Background(), ""), 2)
	assert.Len(t, s.ListDealers(context.Background(), "All"), 2)
	assert.Len(t, s.ListDealers(context.Background(), "Kansas"), 1)
	assert.Equal(t, []string{"/fetchDealers", "/fetchDealers", "/fetchDealers/Kansas"}, b.gets)
}

func TestGetDealer(t *testing.T) {
	b := &fakeBackend{bodies: map[string]any{"/fetchDealer/15": map[string]any{"id": 15.0}}}
	got := app.NewDealerService(b, &fakeSentiment{}, 1).GetDealer(context.Background(), 15)
	assert.Equal(t, map[string]any{"id": 15.0}, got)
}

func TestDealerReviews_AnnotatesEachReview(t *testing.T) {
	b := &fakeBackend{bodies: map[string]any{"/fetchReviews/dealer/7": []any{
		map[string]any{"id": 1.0, "review": "love it"},
		map[string]any{"id": 2.0, "review": "terrible"},
		map[string]any{"id": 3.0},
		"not an object",
	}}}
	sa := &fakeSentiment{labels: map[string]string{"love it": "positive", "terrible": "negative"}}

	got := app.NewDealerService(b, sa, 2).DealerReviews(context.Background(), 7)
	require.Len(t, got, 4)
	assert.Equal(t, "positive", got[0].(map[string]any)["sentiment"])
	assert.Equal(t, "negative", got[1].(map[string]any)["sentiment"])
	assert.Equal(t, "neutral", got[2].(map[string]any)["sentiment"])
	assert.Equal(t, "not an object", got[3])
	assert.EqualValues(t, 3, sa.calls.Load())
}

func TestDealerReviews_NonListBodyIsEmpty(t *testing.T) {
	b := &fakeBackend{bodies: map[string]any{"/fetchReviews/dealer/7": map[string]any{"message": "nope"}}}
	got := app.NewDealerService(b, &fakeSentiment{}, 1).DealerReviews(context.Background(), 7)
	assert.Equal(t, []any{}, got)
}

func TestAddReview(t *testing.T) {
	b := &fakeBackend{}
	s := app.NewDealerService(b, &fakeSentiment{}, 1)

	reply, ok := s.AddReview(context.Background(), map[string]any{"dealership": 15.0, "review": "ok"})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"id": 1.0}, reply)

	b.postErr = true
	reply, ok = s.AddReview(context.Background(), map[string]any{"dealership": "15"})
	assert.False(t, ok)
	assert.Equal(t, map[string]any{"error": "Network exception occurred"}, reply)
}

func TestAddReview_NonObjectReplyIsSuccess(t *testing.T) {
	for _, reply := range []any{[]any{map[string]any{"id": 42.0}}, nil} {
		b := &fakeBackend{reply: func() any { return reply }}
		got, ok := app.NewDealerService(b, &fakeSentiment{}, 1).AddReview(context.Background(), map[string]any{"review": "ok"})
		assert.True(t, ok, "reply %v", reply)
		assert.Equal(t, reply, got)
	}
}
