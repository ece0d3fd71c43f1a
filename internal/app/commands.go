package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"dealership/internal/adapters/observability"
	"dealership/internal/domain"
)

type ReviewImporter struct {
	backend   domain.Backend
	sentiment domain.SentimentAnalyzer
	workers   int64
}

type ImportReport struct {
	Total  int `json:"total"`
	Posted int `json:"posted"`
	Failed int `json:"failed"`
}

func NewReviewImporter(b domain.Backend, s domain.SentimentAnalyzer, workers int) *ReviewImporter {
	if workers <= 0 {
		workers = 1
	}
	return &ReviewImporter{backend: b, sentiment: s, workers: int64(workers)}
}

// Import posts every review, at most workers at a time. Reviews with text but
// no sentiment are analyzed first. A nil sentiment analyzer skips that step.
// When ctx is cancelled the reviews not yet started count as failed.
func (s *ReviewImporter) Import(ctx context.Context, reviews []map[string]any) ImportReport {
	sem := semaphore.NewWeighted(s.workers)
	var (
		wg             sync.WaitGroup
		posted, failed atomic.Int64
	)

	for i, r := range reviews {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			remaining := len(reviews) - i
			log.Warn().Err(err).Int("remaining", remaining).Msg("import interrupted")
			failed.Add(int64(remaining))
			observability.ObserveImport("failed", remaining)
			break
		}

		wg.Add(1)
		go func(idx int, review map[string]any) {
			defer wg.Done()
			defer sem.Release(1)

			if ok := s.importOne(ctx, review); !ok {
				failed.Add(1)
				observability.ObserveImport("failed", 1)
				log.Warn().Int("index", idx).Int64("dealership", dealershipID(review)).Msg("review import failed")
				return
			}
			posted.Add(1)
			observability.ObserveImport("posted", 1)
		}(i, r)
	}

	wg.Wait()
	rep := ImportReport{Total: len(reviews), Posted: int(posted.Load()), Failed: int(failed.Load())}
	log.Info().Int("total", rep.Total).Int("posted", rep.Posted).Int("failed", rep.Failed).Msg("import completed")
	return rep
}

func (s *ReviewImporter) importOne(ctx context.Context, review map[string]any) bool {
	if review == nil {
		return false
	}
	if s.sentiment != nil && !hasSentiment(review) {
		if text := reviewText(review); text != "" {
			review[domain.FieldSentiment] = sentimentLabel(s.sentiment.Analyze(ctx, text))
		}
	}
	return !domain.Failed(s.backend.PostReview(ctx, review))
}
