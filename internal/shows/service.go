package shows

import (
	"context"
	"errors"
	"fmt"

	"gigbook/internal/models"
	"gigbook/internal/utils"
)

// ErrUnknownReference reports a show submission naming an artist or
// venue that does not exist.
var ErrUnknownReference = errors.New("referenced artist or venue does not exist")

type DBLayer interface {
	ListShows(ctx context.Context) ([]models.Show, error)
	ArtistExists(ctx context.Context, id int64) (bool, error)
	VenueExists(ctx context.Context, id int64) (bool, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type ShowService struct {
	DB DBLayer
}

func NewShowService(db DBLayer) *ShowService {
	return &ShowService{DB: db}
}

// List projects all shows, joined to their artist and venue, into
// listing rows.
func (s *ShowService) List(ctx context.Context) ([]models.ShowSummary, error) {
	shows, err := s.DB.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	summaries := make([]models.ShowSummary, 0, len(shows))
	for _, show := range shows {
		summary := models.ShowSummary{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			summary.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			summary.ArtistName = show.Artist.Name
			summary.ArtistImageLink = show.Artist.ImageLink
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Create persists a new show after verifying both references resolve.
// The foreign keys backstop the same check at the schema level.
func (s *ShowService) Create(ctx context.Context, form models.ShowForm) error {
	artistOK, err := s.DB.ArtistExists(ctx, form.ArtistID)
	if err != nil {
		return fmt.Errorf("failed to check artist %d: %w", form.ArtistID, err)
	}
	venueOK, err := s.DB.VenueExists(ctx, form.VenueID)
	if err != nil {
		return fmt.Errorf("failed to check venue %d: %w", form.VenueID, err)
	}
	if !artistOK || !venueOK {
		return ErrUnknownReference
	}

	show := models.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	}
	if err := s.DB.CreateShow(ctx, &show); err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}
