// Package mysql persists the wage corrections recorded by the admin
// verification tool. Reference tables never live here; this store is
// review queue state only.
package mysql

import (
	"context"
	"database/sql"

	"careersite/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate creates the corrections table if missing. The verify tool calls
// it on startup; there is no separate migration pipeline for one table.
func (r *Repo) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createCorrectionsSQL)
	return err
}

func (r *Repo) UpsertCorrection(ctx context.Context, c domain.WageCorrection) error {
	_, err := r.db.ExecContext(ctx, upsertCorrectionSQL,
		c.CitySlug,
		c.Field,
		c.Recorded,
		c.Suggested,
		c.Source,
		c.Note,
	)
	return err
}

func (r *Repo) ListCorrections(ctx context.Context, citySlug string) ([]domain.WageCorrection, error) {
	rows, err := r.db.QueryContext(ctx, listCorrectionsSQL, citySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WageCorrection
	for rows.Next() {
		var c domain.WageCorrection
		if err := rows.Scan(&c.CitySlug, &c.Field, &c.Recorded, &c.Suggested, &c.Source, &c.Note); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
