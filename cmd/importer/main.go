package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"dealership/internal/adapters/backend"
	"dealership/internal/adapters/observability"
	"dealership/internal/adapters/sentiment"
	"dealership/internal/app"
	"dealership/internal/domain"
	"dealership/internal/shared"
)

func main() {
	file := flag.String("file", "reviews.json", "JSON array of review objects")
	analyze := flag.Bool("analyze", true, "fill in missing sentiment before posting")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("read reviews failed")
	}
	var reviews []map[string]any
	if err := json.Unmarshal(raw, &reviews); err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("reviews file must be a JSON array of objects")
	}

	log.Info().
		Str("backend", cfg.BackendURL).
		Int("workers", cfg.ImportWorkers).
		Int("reviews", len(reviews)).
		Msg("importer starting")

	var sa domain.SentimentAnalyzer
	if *analyze {
		sa = sentiment.New(cfg.SentimentURL, nil)
	}
	imp := app.NewReviewImporter(backend.New(cfg.BackendURL, nil), sa, cfg.ImportWorkers)

	rep := imp.Import(ctx, reviews)
	if rep.Failed > 0 {
		stop()
		os.Exit(1)
	}
}
