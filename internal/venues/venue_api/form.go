package venue_api

import (
	"fmt"
	"net/http"
	"strings"

	"gigbook/internal/models"
)

// parseVenueForm maps each submitted field onto its like-named venue
// attribute and rejects the submission when a required field is blank.
func parseVenueForm(r *http.Request) (models.VenueForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.VenueForm{}, fmt.Errorf("malformed form submission: %w", err)
	}

	form := models.VenueForm{
		Name:               strings.TrimSpace(r.PostFormValue("name")),
		City:               strings.TrimSpace(r.PostFormValue("city")),
		State:              strings.TrimSpace(r.PostFormValue("state")),
		Address:            strings.TrimSpace(r.PostFormValue("address")),
		Phone:              strings.TrimSpace(r.PostFormValue("phone")),
		ImageLink:          strings.TrimSpace(r.PostFormValue("image_link")),
		FacebookLink:       strings.TrimSpace(r.PostFormValue("facebook_link")),
		WebsiteLink:        strings.TrimSpace(r.PostFormValue("website_link")),
		Genres:             parseGenres(r.PostForm["genres"]),
		SeekingTalent:      parseCheckbox(r.PostFormValue("seeking_talent")),
		SeekingDescription: strings.TrimSpace(r.PostFormValue("seeking_description")),
	}

	var missing []string
	if form.Name == "" {
		missing = append(missing, "name")
	}
	if form.City == "" {
		missing = append(missing, "city")
	}
	if form.Address == "" {
		missing = append(missing, "address")
	}
	if form.ImageLink == "" {
		missing = append(missing, "image link")
	}
	if len(form.Genres) == 0 {
		missing = append(missing, "genres")
	}
	if len(missing) > 0 {
		return form, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return form, nil
}

// venueFormFromModel pre-fills the edit form from the stored venue.
func venueFormFromModel(v *models.Venue) models.VenueForm {
	return models.VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		Genres:             v.Genres,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// parseGenres accepts either a multi-select submission or one
// comma-separated text value.
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
