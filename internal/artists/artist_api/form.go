package artist_api

import (
	"fmt"
	"net/http"
	"strings"

	"gigbook/internal/models"
)

// parseArtistForm maps each submitted field onto its like-named artist
// attribute and rejects the submission when a required field is blank.
func parseArtistForm(r *http.Request) (models.ArtistForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.ArtistForm{}, fmt.Errorf("malformed form submission: %w", err)
	}

	form := models.ArtistForm{
		Name:               strings.TrimSpace(r.PostFormValue("name")),
		City:               strings.TrimSpace(r.PostFormValue("city")),
		State:              strings.TrimSpace(r.PostFormValue("state")),
		Phone:              strings.TrimSpace(r.PostFormValue("phone")),
		Genres:             parseGenres(r.PostForm["genres"]),
		ImageLink:          strings.TrimSpace(r.PostFormValue("image_link")),
		FacebookLink:       strings.TrimSpace(r.PostFormValue("facebook_link")),
		SeekingVenue:       parseCheckbox(r.PostFormValue("seeking_venue")),
		SeekingDescription: strings.TrimSpace(r.PostFormValue("seeking_description")),
	}

	var missing []string
	if form.Name == "" {
		missing = append(missing, "name")
	}
	if form.City == "" {
		missing = append(missing, "city")
	}
	if form.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return form, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return form, nil
}

// artistFormFromModel pre-fills the edit form from the stored artist.
func artistFormFromModel(a *models.Artist) models.ArtistForm {
	return models.ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func parseGenres(values []string) models.GenreList {
	if len(values) > 1 {
		out := make(models.GenreList, 0, len(values))
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if len(values) == 1 {
		return models.ParseGenres(values[0])
	}
	return nil
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(value) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}
