package domain

import "context"

// Backend is the review-storage service. Both calls fall back instead of failing.
type Backend interface {
	Get(ctx context.Context, endpoint string, params map[string]any) any
	PostReview(ctx context.Context, review map[string]any) any
}

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) map[string]any
}

// Backend endpoints.
const (
	PathDealers       = "/fetchDealers"
	PathDealer        = "/fetchDealer"
	PathDealerReviews = "/fetchReviews/dealer"
)
