package shows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gigbook/internal/models"
	"gigbook/internal/shows"
)

type MockShowDB struct {
	shows      []models.Show
	artistIDs  map[int64]bool
	venueIDs   map[int64]bool
	shouldFail string
}

func NewMockShowDB() *MockShowDB {
	return &MockShowDB{
		artistIDs: make(map[int64]bool),
		venueIDs:  make(map[int64]bool),
	}
}

func (m *MockShowDB) fail(op string) error {
	if m.shouldFail == op {
		return errors.New("database failure")
	}
	return nil
}

func (m *MockShowDB) ListShows(ctx context.Context) ([]models.Show, error) {
	if err := m.fail("ListShows"); err != nil {
		return nil, err
	}
	return m.shows, nil
}

func (m *MockShowDB) ArtistExists(ctx context.Context, id int64) (bool, error) {
	if err := m.fail("ArtistExists"); err != nil {
		return false, err
	}
	return m.artistIDs[id], nil
}

func (m *MockShowDB) VenueExists(ctx context.Context, id int64) (bool, error) {
	if err := m.fail("VenueExists"); err != nil {
		return false, err
	}
	return m.venueIDs[id], nil
}

func (m *MockShowDB) CreateShow(ctx context.Context, show *models.Show) error {
	if err := m.fail("CreateShow"); err != nil {
		return err
	}
	show.ID = int64(len(m.shows) + 1)
	m.shows = append(m.shows, *show)
	return nil
}

func TestListProjectsSummaries(t *testing.T) {
	mockDB := NewMockShowDB()
	service := shows.NewShowService(mockDB)

	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	mockDB.shows = []models.Show{
		{
			ID:        1,
			VenueID:   1,
			ArtistID:  4,
			StartTime: start,
			Venue:     &models.Venue{ID: 1, Name: "The Musical Hop"},
			Artist:    &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://images.example.com/artist.jpg"},
		},
	}

	summaries, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, int64(1), summaries[0].VenueID)
	assert.Equal(t, "The Musical Hop", summaries[0].VenueName)
	assert.Equal(t, int64(4), summaries[0].ArtistID)
	assert.Equal(t, "Guns N Petals", summaries[0].ArtistName)
	assert.Equal(t, "https://images.example.com/artist.jpg", summaries[0].ArtistImageLink)
	assert.Equal(t, "2026-09-01 20:00:00", summaries[0].StartTime)
}

func TestListPropagatesError(t *testing.T) {
	mockDB := NewMockShowDB()
	mockDB.shouldFail = "ListShows"
	service := shows.NewShowService(mockDB)

	_, err := service.List(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list shows")
}

func TestCreateShow(t *testing.T) {
	mockDB := NewMockShowDB()
	service := shows.NewShowService(mockDB)

	mockDB.artistIDs[4] = true
	mockDB.venueIDs[1] = true

	form := models.ShowForm{
		ArtistID:  4,
		VenueID:   1,
		StartTime: time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, service.Create(context.Background(), form))
	assert.Len(t, mockDB.shows, 1)
	assert.Equal(t, int64(4), mockDB.shows[0].ArtistID)
	assert.Equal(t, int64(1), mockDB.shows[0].VenueID)
}

func TestCreateShowUnknownArtist(t *testing.T) {
	mockDB := NewMockShowDB()
	service := shows.NewShowService(mockDB)

	mockDB.venueIDs[1] = true

	err := service.Create(context.Background(), models.ShowForm{ArtistID: 99, VenueID: 1})
	assert.True(t, errors.Is(err, shows.ErrUnknownReference))
	assert.Len(t, mockDB.shows, 0)
}

func TestCreateShowUnknownVenue(t *testing.T) {
	mockDB := NewMockShowDB()
	service := shows.NewShowService(mockDB)

	mockDB.artistIDs[4] = true

	err := service.Create(context.Background(), models.ShowForm{ArtistID: 4, VenueID: 99})
	assert.True(t, errors.Is(err, shows.ErrUnknownReference))
}

func TestCreateShowInsertFailure(t *testing.T) {
	mockDB := NewMockShowDB()
	mockDB.shouldFail = "CreateShow"
	service := shows.NewShowService(mockDB)

	mockDB.artistIDs[4] = true
	mockDB.venueIDs[1] = true

	err := service.Create(context.Background(), models.ShowForm{ArtistID: 4, VenueID: 1})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, shows.ErrUnknownReference))
}
