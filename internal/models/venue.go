package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int64     `bun:"id,pk,autoincrement"`
	Name               string    `bun:"name,notnull"`
	City               string    `bun:"city,notnull"`
	State              string    `bun:"state,nullzero"`
	Address            string    `bun:"address,notnull"`
	Phone              string    `bun:"phone,nullzero"`
	ImageLink          string    `bun:"image_link,notnull"`
	FacebookLink       string    `bun:"facebook_link,nullzero"`
	WebsiteLink        string    `bun:"website_link,nullzero"`
	Genres             GenreList `bun:"genres,notnull,type:text"`
	SeekingTalent      bool      `bun:"seeking_talent,default:true"`
	SeekingDescription string    `bun:"seeking_description,nullzero"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id"`
}

// VenueForm carries the submitted create/edit venue fields. Every field
// maps onto the like-named Venue attribute.
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             GenreList
	SeekingTalent      bool
	SeekingDescription string
}

func (f VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.Genres = f.Genres
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

// VenueSummary is one row of the grouped venue listing.
type VenueSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// CityGroup collects the venues sharing one (city, state) pair.
type CityGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueDetail is the venue page payload with its show partitions.
type VenueDetail struct {
	Venue              *Venue
	PastShows          []ShowAttachment
	UpcomingShows      []ShowAttachment
	PastShowsCount     int
	UpcomingShowsCount int
}

// VenueSearchResult holds the matches for one search term.
type VenueSearchResult struct {
	Count int
	Data  []VenueSummary
}
