package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/adapters/imageprobe"
	"stayfinder/internal/adapters/lastminute"
	"stayfinder/internal/adapters/observability"
	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/pricing"
	"stayfinder/internal/shared"
	"stayfinder/internal/store/memory"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	feed, err := lastminute.New(cfg.FeedBase, cfg.FeedRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feed client")
	}

	var prober domain.ImageProber
	if cfg.ValidateGalleries {
		prober = imageprobe.New(cfg.ProbeWorkers, cfg.ProbeTimeout)
	}

	store := memory.New()
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	refresher := app.NewRefreshService(feed, prober, store, cfg.ProbeWorkers)
	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	formatter := pricing.New(cfg.DefaultLocale)

	// initial snapshot; the API still serves (empty) if the feed is down
	if n, err := refresher.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial refresh failed; serving empty snapshot")
	} else {
		log.Info().Int("hotels", n).Msg("initial snapshot ready")
	}
	go refresher.Run(ctx, cfg.RefreshInterval)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, R: refresher, F: formatter})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
