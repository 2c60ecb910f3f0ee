package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"careersite/internal/adapters/observability"
	"careersite/internal/adapters/wagewatch"
	"careersite/internal/app"
	"careersite/internal/catalog"
	"careersite/internal/shared"
	mysqlrepo "careersite/internal/storage/mysql"
)

// Admin-only reconciliation tool: scrapes observed wages per city and
// records corrections where the catalog has drifted. Failures are logged
// once per city and never retried; this tool is not on any critical path.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.WageAPIBase).
		Int("workers", cfg.VerifyWorkers).
		Msg("verify starting")

	cat, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog integrity check failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	store := mysqlrepo.New(db)
	if err := store.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	scraper, err := wagewatch.New(cfg.WageAPIBase, cfg.WageAPIKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize wagewatch client")
	}

	svc := app.NewVerificationService(scraper, store, 0.10)
	sem := semaphore.NewWeighted(int64(cfg.VerifyWorkers))
	var wg sync.WaitGroup

	for _, city := range cat.Cities {
		city := city

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			n, err := svc.VerifyCity(ctx, city)
			if err != nil {
				log.Warn().Str("city", city.Slug).Err(err).Msg("verify failed")
				return
			}
			log.Info().Str("city", city.Slug).Int("corrections", n).Msg("verify ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("verification completed")
}
