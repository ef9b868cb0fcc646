package db

import (
	"context"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListShows → fetch all shows with artist and venue attached
func (d *DB) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Relation("Venue").
		Order("show.start_time").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// ArtistExists → report whether an artist row exists
func (d *DB) ArtistExists(ctx context.Context, id int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Artist)(nil)).
		Where("id = ?", id).
		Exists(ctx)
}

// VenueExists → report whether a venue row exists
func (d *DB) VenueExists(ctx context.Context, id int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Venue)(nil)).
		Where("id = ?", id).
		Exists(ctx)
}

// CreateShow → insert new show inside its own transaction
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(show).Exec(ctx)
		return err
	})
}
