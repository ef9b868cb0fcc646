package artists

import (
	"context"
	"fmt"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/utils"
)

type DBLayer interface {
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error)
	GetShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist models.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
}

type ArtistService struct {
	DB DBLayer
}

func NewArtistService(db DBLayer) *ArtistService {
	return &ArtistService{DB: db}
}

// List projects all artists to (id, name).
func (s *ArtistService) List(ctx context.Context) ([]models.ArtistRef, error) {
	artists, err := s.DB.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	refs := make([]models.ArtistRef, 0, len(artists))
	for _, artist := range artists {
		refs = append(refs, models.ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return refs, nil
}

// Search returns the artists whose name contains the term,
// case-insensitively. An empty term matches every artist.
func (s *ArtistService) Search(ctx context.Context, term string) (models.ArtistSearchResult, error) {
	artists, err := s.DB.SearchArtistsByName(ctx, term)
	if err != nil {
		return models.ArtistSearchResult{}, fmt.Errorf("artist search failed: %w", err)
	}

	result := models.ArtistSearchResult{
		Count: len(artists),
		Data:  make([]models.ArtistRef, 0, len(artists)),
	}
	for _, artist := range artists {
		result.Data = append(result.Data, models.ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return result, nil
}

// Detail loads one artist and partitions its shows into past and
// upcoming relative to now, the venue being the counterpart on each.
func (s *ArtistService) Detail(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error) {
	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artist %d not found: %w", id, err)
	}

	shows, err := s.DB.GetShowsByArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for artist %d: %w", id, err)
	}

	detail := &models.ArtistDetail{Artist: artist}
	for _, show := range shows {
		attachment := models.ShowAttachment{
			CounterpartID: show.VenueID,
			StartTime:     utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			attachment.CounterpartName = show.Venue.Name
			attachment.CounterpartImage = show.Venue.ImageLink
		}
		if show.StartTime.After(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, attachment)
		} else {
			detail.PastShows = append(detail.PastShows, attachment)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

// Create persists a new artist from its form fields and returns it.
func (s *ArtistService) Create(ctx context.Context, form models.ArtistForm) (*models.Artist, error) {
	var artist models.Artist
	form.Apply(&artist)

	if err := s.DB.CreateArtist(ctx, &artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	return &artist, nil
}

// Update overwrites every mutable field of the artist from the form.
func (s *ArtistService) Update(ctx context.Context, id int64, form models.ArtistForm) error {
	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return fmt.Errorf("artist %d not found: %w", id, err)
	}

	form.Apply(artist)

	if err := s.DB.UpdateArtist(ctx, *artist); err != nil {
		return fmt.Errorf("failed to update artist %d: %w", id, err)
	}
	return nil
}

// Delete removes the artist and its shows. Not reachable over HTTP;
// kept for parity with venue deletion.
func (s *ArtistService) Delete(ctx context.Context, id int64) (string, error) {
	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("artist %d not found: %w", id, err)
	}

	if err := s.DB.DeleteArtist(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete artist %d: %w", id, err)
	}
	return artist.Name, nil
}

// Get loads one artist, for pre-filling the edit form.
func (s *ArtistService) Get(ctx context.Context, id int64) (*models.Artist, error) {
	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artist %d not found: %w", id, err)
	}
	return artist, nil
}
