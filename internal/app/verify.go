package app

import (
	"context"
	"fmt"

	"careersite/internal/domain"
)

// VerificationService is the admin-only reconciliation tool: it scrapes an
// external wage source per city and records a correction whenever the
// catalog figure drifts outside tolerance. It never mutates the catalog;
// corrections go to the store for a human to review.
type VerificationService struct {
	scraper   domain.WageScraper
	store     domain.CorrectionStore
	tolerance float64 // fraction, e.g. 0.10 = 10%
}

func NewVerificationService(sc domain.WageScraper, st domain.CorrectionStore, tolerance float64) *VerificationService {
	if tolerance <= 0 {
		tolerance = 0.10
	}
	return &VerificationService{scraper: sc, store: st, tolerance: tolerance}
}

// VerifyCity checks one city and returns how many corrections were recorded.
// Scrape and store failures bubble up as a single error; the caller logs one
// message per city and moves on, no retry beyond the client's own transport
// retries.
func (s *VerificationService) VerifyCity(ctx context.Context, city domain.City) (int, error) {
	quote, err := s.scraper.ScrapeCityWage(ctx, city.Slug)
	if err != nil {
		return 0, fmt.Errorf("scrape %s: %w", city.Slug, err)
	}

	var recorded int
	if drifts(city.WageRange.Min, quote.Hourly.Min, s.tolerance) {
		c := domain.WageCorrection{
			CitySlug:  city.Slug,
			Field:     "wage_min",
			Recorded:  city.WageRange.Min,
			Suggested: quote.Hourly.Min,
			Source:    quote.Source,
			Note:      fmt.Sprintf("scraped %s", quote.Retrieved.Format("2006-01-02")),
		}
		if err := s.store.UpsertCorrection(ctx, c); err != nil {
			return recorded, fmt.Errorf("store correction %s/%s: %w", c.CitySlug, c.Field, err)
		}
		recorded++
	}
	if drifts(city.WageRange.Max, quote.Hourly.Max, s.tolerance) {
		c := domain.WageCorrection{
			CitySlug:  city.Slug,
			Field:     "wage_max",
			Recorded:  city.WageRange.Max,
			Suggested: quote.Hourly.Max,
			Source:    quote.Source,
			Note:      fmt.Sprintf("scraped %s", quote.Retrieved.Format("2006-01-02")),
		}
		if err := s.store.UpsertCorrection(ctx, c); err != nil {
			return recorded, fmt.Errorf("store correction %s/%s: %w", c.CitySlug, c.Field, err)
		}
		recorded++
	}
	return recorded, nil
}

// drifts reports whether got differs from have by more than tol fraction.
func drifts(have, got, tol float64) bool {
	if have <= 0 {
		return true
	}
	diff := got - have
	if diff < 0 {
		diff = -diff
	}
	return diff/have > tol
}
