package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"dealership/internal/domain"
)

type DealerService struct {
	backend   domain.Backend
	sentiment domain.SentimentAnalyzer
	workers   int
}

// NewDealerService annotates reviews with at most workers concurrent sentiment calls.
func NewDealerService(b domain.Backend, s domain.SentimentAnalyzer, workers int) *DealerService {
	if workers <= 0 {
		workers = 1
	}
	return &DealerService{backend: b, sentiment: s, workers: workers}
}

// ListDealers returns every dealer, or only those in state. "" and "All" mean every dealer.
func (s *DealerService) ListDealers(ctx context.Context, state string) any {
	state = strings.TrimSpace(state)
	if state == "" || strings.EqualFold(state, "all") {
		return s.backend.Get(ctx, domain.PathDealers, nil)
	}
	return s.backend.Get(ctx, domain.PathDealers+"/"+url.PathEscape(state), nil)
}

func (s *DealerService) GetDealer(ctx context.Context, id int64) any {
	return s.backend.Get(ctx, fmt.Sprintf("%s/%d", domain.PathDealer, id), nil)
}

// DealerReviews fetches a dealer's reviews and sets "sentiment" on each review
// object. Entries that are not objects are left as they are. A body that is
// not a list yields an empty list.
func (s *DealerService) DealerReviews(ctx context.Context, id int64) []any {
	raw := s.backend.Get(ctx, fmt.Sprintf("%s/%d", domain.PathDealerReviews, id), nil)
	reviews, ok := raw.([]any)
	if !ok {
		log.Warn().Int64("dealer", id).Str("type", fmt.Sprintf("%T", raw)).Msg("reviews payload is not a list")
		return []any{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, r := range reviews {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		// each goroutine owns its own map
		g.Go(func() error {
			m[domain.FieldSentiment] = sentimentLabel(s.sentiment.Analyze(gctx, reviewText(m)))
			return nil
		})
	}
	_ = g.Wait() // Analyze never fails
	return reviews
}

// AddReview submits review. ok is false when the backend reply is the error fallback.
func (s *DealerService) AddReview(ctx context.Context, review map[string]any) (reply any, ok bool) {
	reply = s.backend.PostReview(ctx, review)
	if domain.Failed(reply) {
		log.Warn().Int64("dealership", dealershipID(review)).Interface("reply", reply).Msg("review not stored")
		return reply, false
	}
	return reply, true
}
