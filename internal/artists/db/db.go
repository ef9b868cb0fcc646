package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"

	"gigbook/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- READS ----------------

// GetArtistByID → fetch one artist by its ID
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// ListArtists → fetch all artists ordered by ID
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchArtistsByName → case-insensitive substring match on name
func (d *DB) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Where("lower(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// GetShowsByArtist → fetch an artist's shows with their venues attached
func (d *DB) GetShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// ---------------- MUTATIONS ----------------

// CreateArtist → insert new artist
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
}

// UpdateArtist → overwrite every mutable field
func (d *DB) UpdateArtist(ctx context.Context, artist models.Artist) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(&artist).
			Column("name", "city", "state", "phone", "genres", "image_link",
				"facebook_link", "seeking_venue", "seeking_description").
			Where("id = ?", artist.ID).
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

// DeleteArtist → remove an artist and its shows in one transaction.
// Not routed over HTTP; kept for operational use and exercised by the
// storage tests.
func (d *DB) DeleteArtist(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("artist_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*models.Artist)(nil)).
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
