package venues

import (
	"context"
	"fmt"
	"time"

	"gigbook/internal/models"
	"gigbook/internal/utils"
)

type DBLayer interface {
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error)
	GetShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error)
	CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[int64]int, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type VenueService struct {
	DB DBLayer
}

func NewVenueService(db DBLayer) *VenueService {
	return &VenueService{DB: db}
}

// ListByLocation groups all venues by their (city, state) pair, in the
// order each pair is first seen, with each venue's upcoming show count.
func (s *VenueService) ListByLocation(ctx context.Context, now time.Time) ([]models.CityGroup, error) {
	venues, err := s.DB.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	counts, err := s.DB.CountUpcomingShowsByVenue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows: %w", err)
	}

	type locationKey struct {
		city  string
		state string
	}

	groups := make([]models.CityGroup, 0)
	index := make(map[locationKey]int)

	for _, venue := range venues {
		key := locationKey{city: venue.City, state: venue.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.CityGroup{City: venue.City, State: venue.State})
		}
		groups[i].Venues = append(groups[i].Venues, models.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return groups, nil
}

// Search returns the venues whose name contains the term,
// case-insensitively. An empty term matches every venue.
func (s *VenueService) Search(ctx context.Context, term string) (models.VenueSearchResult, error) {
	venues, err := s.DB.SearchVenuesByName(ctx, term)
	if err != nil {
		return models.VenueSearchResult{}, fmt.Errorf("venue search failed: %w", err)
	}

	result := models.VenueSearchResult{
		Count: len(venues),
		Data:  make([]models.VenueSummary, 0, len(venues)),
	}
	for _, venue := range venues {
		result.Data = append(result.Data, models.VenueSummary{
			ID:   venue.ID,
			Name: venue.Name,
		})
	}
	return result, nil
}

// Detail loads one venue and partitions its shows into past and
// upcoming relative to now. The partitions are disjoint and exhaustive:
// a show starting exactly at now is past.
func (s *VenueService) Detail(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error) {
	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venue %d not found: %w", id, err)
	}

	shows, err := s.DB.GetShowsByVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for venue %d: %w", id, err)
	}

	detail := &models.VenueDetail{Venue: venue}
	for _, show := range shows {
		attachment := models.ShowAttachment{
			CounterpartID: show.ArtistID,
			StartTime:     utils.FormatShowTime(show.StartTime),
		}
		if show.Artist != nil {
			attachment.CounterpartName = show.Artist.Name
			attachment.CounterpartImage = show.Artist.ImageLink
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

// Create persists a new venue from its form fields and returns it.
func (s *VenueService) Create(ctx context.Context, form models.VenueForm) (*models.Venue, error) {
	var venue models.Venue
	form.Apply(&venue)

	if err := s.DB.CreateVenue(ctx, &venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return &venue, nil
}

// Update overwrites every mutable field of the venue from the form.
func (s *VenueService) Update(ctx context.Context, id int64, form models.VenueForm) error {
	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return fmt.Errorf("venue %d not found: %w", id, err)
	}

	form.Apply(venue)

	if err := s.DB.UpdateVenue(ctx, *venue); err != nil {
		return fmt.Errorf("failed to update venue %d: %w", id, err)
	}
	return nil
}

// Delete removes the venue and its shows, returning the deleted
// venue's name for the user notice.
func (s *VenueService) Delete(ctx context.Context, id int64) (string, error) {
	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("venue %d not found: %w", id, err)
	}

	if err := s.DB.DeleteVenue(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete venue %d: %w", id, err)
	}
	return venue.Name, nil
}

// Get loads one venue, for pre-filling the edit form.
func (s *VenueService) Get(ctx context.Context, id int64) (*models.Venue, error) {
	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venue %d not found: %w", id, err)
	}
	return venue, nil
}
