package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"dealership/internal/adapters/backend"
	server "dealership/internal/adapters/http_server"
	"dealership/internal/adapters/observability"
	"dealership/internal/adapters/sentiment"
	"dealership/internal/app"
	"dealership/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	log.Info().
		Str("backend", cfg.BackendURL).
		Str("sentiment", cfg.SentimentURL).
		Msg("upstreams resolved")

	// deps
	be := backend.New(cfg.BackendURL, nil)
	sa := sentiment.New(cfg.SentimentURL, nil)
	dealers := app.NewDealerService(be, sa, cfg.AnnotateWorkers)

	// http
	srv := server.New(log.Logger)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{D: dealers})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
