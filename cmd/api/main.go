package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "github.com/heynenm/snowreport/internal/adapters/http_server"
	"github.com/heynenm/snowreport/internal/adapters/observability"
	"github.com/heynenm/snowreport/internal/adapters/openmeteo"
	redisad "github.com/heynenm/snowreport/internal/adapters/redis"
	"github.com/heynenm/snowreport/internal/app"
	"github.com/heynenm/snowreport/internal/domain"
	"github.com/heynenm/snowreport/internal/shared"
)

func main() {
	_ = godotenv.Load()

	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	provider := openmeteo.New(cfg.OpenMeteoURL, cfg.ProviderRPS, cfg.FetchTimeout)
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	svc := app.NewReportService(cfg.Resorts, provider, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Svc: svc})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Int("resorts", len(cfg.Resorts)).
		Msg("snow report API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
