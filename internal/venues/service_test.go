package venues_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gigbook/internal/models"
	"gigbook/internal/venues"
)

type MockVenueDB struct {
	venues       map[int64]*models.Venue
	showsByVenue map[int64][]models.Show
	order        []int64
	shouldFail   string
	failErr      error
}

func NewMockVenueDB() *MockVenueDB {
	return &MockVenueDB{
		venues:       make(map[int64]*models.Venue),
		showsByVenue: make(map[int64][]models.Show),
	}
}

func (m *MockVenueDB) add(v *models.Venue) {
	m.venues[v.ID] = v
	m.order = append(m.order, v.ID)
}

func (m *MockVenueDB) fail(op string) error {
	if m.shouldFail == op {
		if m.failErr != nil {
			return m.failErr
		}
		return errors.New("database failure")
	}
	return nil
}

func (m *MockVenueDB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	if err := m.fail("GetVenueByID"); err != nil {
		return nil, err
	}
	venue, ok := m.venues[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *venue
	return &copied, nil
}

func (m *MockVenueDB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	if err := m.fail("ListVenues"); err != nil {
		return nil, err
	}
	listed := make([]models.Venue, 0, len(m.order))
	for _, id := range m.order {
		listed = append(listed, *m.venues[id])
	}
	return listed, nil
}

func (m *MockVenueDB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	if err := m.fail("SearchVenuesByName"); err != nil {
		return nil, err
	}
	matches := make([]models.Venue, 0)
	for _, id := range m.order {
		matches = append(matches, *m.venues[id])
	}
	return matches, nil
}

func (m *MockVenueDB) GetShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error) {
	if err := m.fail("GetShowsByVenue"); err != nil {
		return nil, err
	}
	return m.showsByVenue[venueID], nil
}

func (m *MockVenueDB) CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[int64]int, error) {
	if err := m.fail("CountUpcomingShowsByVenue"); err != nil {
		return nil, err
	}
	counts := make(map[int64]int)
	for venueID, shows := range m.showsByVenue {
		for _, show := range shows {
			if show.StartTime.After(now) {
				counts[venueID]++
			}
		}
	}
	return counts, nil
}

func (m *MockVenueDB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := m.fail("CreateVenue"); err != nil {
		return err
	}
	venue.ID = int64(len(m.venues) + 1)
	copied := *venue
	m.add(&copied)
	return nil
}

func (m *MockVenueDB) UpdateVenue(ctx context.Context, venue models.Venue) error {
	if err := m.fail("UpdateVenue"); err != nil {
		return err
	}
	if _, ok := m.venues[venue.ID]; !ok {
		return sql.ErrNoRows
	}
	m.venues[venue.ID] = &venue
	return nil
}

func (m *MockVenueDB) DeleteVenue(ctx context.Context, id int64) error {
	if err := m.fail("DeleteVenue"); err != nil {
		return err
	}
	if _, ok := m.venues[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.venues, id)
	delete(m.showsByVenue, id)
	for i, ordered := range m.order {
		if ordered == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestListByLocationGroupsInFirstSeenOrder(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)
	now := time.Now()

	mockDB.add(&models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	mockDB.add(&models.Venue{ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"})
	mockDB.add(&models.Venue{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	mockDB.showsByVenue[2] = []models.Show{
		{ID: 1, VenueID: 2, ArtistID: 1, StartTime: now.Add(time.Hour)},
		{ID: 2, VenueID: 2, ArtistID: 1, StartTime: now.Add(-time.Hour)},
	}

	groups, err := service.ListByLocation(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "CA", groups[0].State)
	assert.Len(t, groups[0].Venues, 2)
	assert.Equal(t, int64(1), groups[0].Venues[0].ID)
	assert.Equal(t, 0, groups[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, int64(2), groups[0].Venues[1].ID)
	assert.Equal(t, 1, groups[0].Venues[1].NumUpcomingShows)

	assert.Equal(t, "New York", groups[1].City)
	assert.Len(t, groups[1].Venues, 1)
	assert.Equal(t, "The Dueling Pianos Bar", groups[1].Venues[0].Name)
}

func TestListByLocationSameCityDifferentState(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	mockDB.add(&models.Venue{ID: 1, Name: "Springfield Hall", City: "Springfield", State: "IL"})
	mockDB.add(&models.Venue{ID: 2, Name: "Springfield Stage", City: "Springfield", State: "MO"})

	groups, err := service.ListByLocation(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "IL", groups[0].State)
	assert.Equal(t, "MO", groups[1].State)
}

func TestListByLocationPropagatesError(t *testing.T) {
	mockDB := NewMockVenueDB()
	mockDB.shouldFail = "ListVenues"
	service := venues.NewVenueService(mockDB)

	_, err := service.ListByLocation(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list venues")
}

func TestSearchProjectsSummaries(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	mockDB.add(&models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	mockDB.add(&models.Venue{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"})

	result, err := service.Search(context.Background(), "music")
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Data, result.Count)
	assert.Equal(t, int64(1), result.Data[0].ID)
	assert.Equal(t, "The Musical Hop", result.Data[0].Name)
}

func TestDetailPartitionsShows(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	mockDB.add(&models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	artist := &models.Artist{ID: 7, Name: "Guns N Petals", ImageLink: "https://images.example.com/artist.jpg"}
	mockDB.showsByVenue[1] = []models.Show{
		{ID: 1, VenueID: 1, ArtistID: 7, Artist: artist, StartTime: now.Add(-24 * time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 7, Artist: artist, StartTime: now},
		{ID: 3, VenueID: 1, ArtistID: 7, Artist: artist, StartTime: now.Add(24 * time.Hour)},
	}

	detail, err := service.Detail(context.Background(), 1, now)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop", detail.Venue.Name)

	// A show starting exactly at now is past, never both or neither.
	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Len(t, detail.PastShows, 2)
	assert.Len(t, detail.UpcomingShows, 1)

	assert.Equal(t, int64(7), detail.UpcomingShows[0].CounterpartID)
	assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].CounterpartName)
	assert.Equal(t, "https://images.example.com/artist.jpg", detail.UpcomingShows[0].CounterpartImage)
	assert.Equal(t, "2026-08-30 12:00:00", detail.UpcomingShows[0].StartTime)
}

func TestDetailMissingVenue(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	_, err := service.Detail(context.Background(), 99, time.Now())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCreateVenueAppliesForm(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	form := models.VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		ImageLink:     "https://images.example.com/venue.jpg",
		Genres:        models.GenreList{"Jazz", "Folk"},
		SeekingTalent: true,
	}

	venue, err := service.Create(context.Background(), form)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, models.GenreList{"Jazz", "Folk"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
	assert.Len(t, mockDB.venues, 1)
}

func TestCreateVenueFailure(t *testing.T) {
	mockDB := NewMockVenueDB()
	mockDB.shouldFail = "CreateVenue"
	service := venues.NewVenueService(mockDB)

	_, err := service.Create(context.Background(), models.VenueForm{Name: "The Musical Hop"})
	assert.Error(t, err)
	assert.Len(t, mockDB.venues, 0)
}

func TestUpdateVenueOverwritesAllFields(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	mockDB.add(&models.Venue{
		ID:      1,
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
	})

	form := models.VenueForm{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "415-000-1234",
	}
	assert.NoError(t, service.Update(context.Background(), 1, form))

	got := mockDB.venues[1]
	assert.Equal(t, "415-000-1234", got.Phone)
	assert.Equal(t, "The Musical Hop", got.Name)

	err := service.Update(context.Background(), 99, form)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestDeleteVenueReturnsName(t *testing.T) {
	mockDB := NewMockVenueDB()
	service := venues.NewVenueService(mockDB)

	mockDB.add(&models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"})

	name, err := service.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop", name)
	assert.Len(t, mockDB.venues, 0)

	_, err = service.Delete(context.Background(), 1)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
