package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"careersite/internal/adapters/observability"
	"careersite/internal/app"
	"careersite/internal/catalog"
	"careersite/internal/shared"
)

// Batch sitemap generator. Enumerates every valid URL from the reference
// tables, re-classifies each one to prove it resolves, and only then writes
// the XML. A round-trip failure is a build failure.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	cat, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog integrity check failed")
	}

	enum := app.NewEnumerator(cat, cfg.SiteBaseURL)
	classifier := app.NewClassifier(cat)
	resolver := app.NewResolver(cat)

	now := time.Now().UTC()
	entries := enum.Enumerate(now)
	log.Info().Int("urls", len(entries)).Msg("enumeration complete")

	if err := app.VerifyRoundTrip(ctx, classifier, resolver, entries, cfg.SitemapWorkers); err != nil {
		log.Fatal().Err(err).Msg("sitemap round-trip verification failed")
	}
	log.Info().Msg("round-trip verification ok")

	f, err := os.Create(cfg.SitemapOut)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SitemapOut).Msg("create sitemap file failed")
	}
	defer f.Close()

	if err := enum.WriteXML(f, entries); err != nil {
		log.Fatal().Err(err).Msg("write sitemap failed")
	}
	log.Info().Str("path", cfg.SitemapOut).Int("urls", len(entries)).Msg("sitemap written")
}
