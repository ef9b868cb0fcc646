package models

import (
	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int64     `bun:"id,pk,autoincrement"`
	Name               string    `bun:"name,notnull"`
	City               string    `bun:"city,notnull"`
	State              string    `bun:"state,nullzero"`
	Phone              string    `bun:"phone,notnull"`
	Genres             GenreList `bun:"genres,nullzero,type:text"`
	ImageLink          string    `bun:"image_link,nullzero"`
	FacebookLink       string    `bun:"facebook_link,nullzero"`
	SeekingVenue       bool      `bun:"seeking_venue,default:true"`
	SeekingDescription string    `bun:"seeking_description,nullzero"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id"`
}

// ArtistForm carries the submitted create/edit artist fields, each
// mapping onto the like-named Artist attribute.
type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             GenreList
	ImageLink          string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
}

func (f ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

// ArtistRef is the (id, name) projection used by the artist listing.
type ArtistRef struct {
	ID   int64
	Name string
}

// ArtistDetail is the artist page payload with its show partitions.
type ArtistDetail struct {
	Artist             *Artist
	PastShows          []ShowAttachment
	UpcomingShows      []ShowAttachment
	PastShowsCount     int
	UpcomingShowsCount int
}

// ArtistSearchResult holds the matches for one search term.
type ArtistSearchResult struct {
	Count int
	Data  []ArtistRef
}
