package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- READS ----------------

// GetVenueByID → fetch one venue by its ID
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// ListVenues → fetch all venues ordered by ID
func (d *DB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVenuesByName → case-insensitive substring match on name
func (d *DB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("lower(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// GetShowsByVenue → fetch a venue's shows with their artists attached
func (d *DB) GetShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shows, nil
}

type venueShowCount struct {
	VenueID int64 `bun:"venue_id"`
	Count   int   `bun:"num_shows"`
}

// CountUpcomingShowsByVenue → number of shows per venue starting after now
func (d *DB) CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[int64]int, error) {
	var rows []venueShowCount
	err := d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("venue_id").
		ColumnExpr("count(*) AS num_shows").
		Where("start_time > ?", now).
		Group("venue_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}
	return counts, nil
}

// ---------------- MUTATIONS ----------------
// Every mutation runs in its own transaction; a failed step rolls the
// whole operation back before returning.

// CreateVenue → insert new venue
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Exec(ctx)
		return err
	})
}

// UpdateVenue → overwrite every mutable field
func (d *DB) UpdateVenue(ctx context.Context, venue models.Venue) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(&venue).
			Column("name", "city", "state", "address", "phone", "image_link",
				"facebook_link", "website_link", "genres", "seeking_talent",
				"seeking_description").
			Where("id = ?", venue.ID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}

// DeleteVenue → remove a venue and, in the same transaction, every show
// it hosts. The schema-level ON DELETE CASCADE backstops the same
// invariant.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}
