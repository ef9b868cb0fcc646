package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Show struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ArtistID  int64     `bun:"artist_id,notnull"`
	VenueID   int64     `bun:"venue_id,notnull"`
	StartTime time.Time `bun:"start_time,notnull"`

	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id"`
	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id"`
}

// ShowForm carries the submitted create-show fields.
type ShowForm struct {
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}

// ShowAttachment is one past or upcoming show on a detail page; the
// counterpart is the artist when shown on a venue page and the venue
// when shown on an artist page.
type ShowAttachment struct {
	CounterpartID    int64
	CounterpartName  string
	CounterpartImage string
	StartTime        string
}

// ShowSummary is one row of the /shows listing.
type ShowSummary struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}
