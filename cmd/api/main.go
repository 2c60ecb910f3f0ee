package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "careersite/internal/adapters/http_server"
	"careersite/internal/adapters/observability"
	redisad "careersite/internal/adapters/redis"
	"careersite/internal/app"
	"careersite/internal/catalog"
	"careersite/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	cat, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog integrity check failed")
	}
	log.Info().
		Int("cities", len(cat.Cities)).
		Int("roles", len(cat.Roles)).
		Int("seasons", len(cat.Seasons)).
		Int("events", len(cat.Events)).
		Int("articles", len(cat.Articles)).
		Msg("catalog loaded")

	// deps
	classifier := app.NewClassifier(cat)
	resolver := app.NewResolver(cat)
	assembler := app.NewAssembler(cfg.SiteBaseURL)
	enum := app.NewEnumerator(cat, cfg.SiteBaseURL)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pages := app.NewPageService(classifier, resolver, assembler, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Pages: pages, Enum: enum})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
