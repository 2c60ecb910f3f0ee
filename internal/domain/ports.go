package domain

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// WageScraper is the outbound port of the admin verification tool: an
// external API that reports observed hourly wages for a city.
type WageScraper interface {
	ScrapeCityWage(ctx context.Context, citySlug string) (WageQuote, error)
}

type WageQuote struct {
	CitySlug  string
	Hourly    Range
	Source    string
	Retrieved time.Time
}

// CorrectionStore persists wage corrections recorded by the verification
// tool. This is the only persistence in the system; reference tables are
// in-memory and read-only.
type CorrectionStore interface {
	UpsertCorrection(ctx context.Context, c WageCorrection) error
	ListCorrections(ctx context.Context, citySlug string) ([]WageCorrection, error)
}

// WageCorrection flags a catalog figure that disagrees with a scraped one.
// Field is "wage_min" or "wage_max".
type WageCorrection struct {
	CitySlug  string
	Field     string
	Recorded  float64 // value currently in the catalog
	Suggested float64 // value the scrape suggests
	Source    string
	Note      string
}
