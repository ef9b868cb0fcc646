package show_api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gigbook/internal/logger"
	"gigbook/internal/models"
	"gigbook/internal/shows"
	"gigbook/internal/utils"
	"gigbook/internal/web"
)

type ShowService interface {
	List(ctx context.Context) ([]models.ShowSummary, error)
	Create(ctx context.Context, form models.ShowForm) error
}

type Handler struct {
	ShowService ShowService
	Renderer    *web.Renderer
	Logger      *logger.Logger
}

// ListShows renders all shows joined to their artist and venue.
func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ShowService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "shows.html", "Shows", summaries)
}

// NewShowForm renders the empty create-show form.
func (h *Handler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_show.html", "New Show", nil)
}

// CreateShow creates a show from the submitted form.
func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	form, err := parseShowForm(r)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateShow: invalid form: %v", err))
		h.Renderer.HTMLWithFlash(w, r, http.StatusUnprocessableEntity, "new_show.html", "New Show", nil,
			web.Flash{Category: web.FlashError, Message: err.Error()})
		return
	}

	if err := h.ShowService.Create(r.Context(), form); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		message := "An error occurred. Show could not be listed."
		if errors.Is(err, shows.ErrUnknownReference) {
			message = "The referenced artist or venue does not exist."
		}
		web.AddFlash(w, web.FlashError, message)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	web.AddFlash(w, web.FlashSuccess, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseShowForm maps the submitted fields onto their like-named show
// attributes; both references and the start time are required.
func parseShowForm(r *http.Request) (models.ShowForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.ShowForm{}, fmt.Errorf("malformed form submission: %w", err)
	}

	artistID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("artist_id")), 10, 64)
	if err != nil {
		return models.ShowForm{}, errors.New("artist_id must be a number")
	}

	venueID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("venue_id")), 10, 64)
	if err != nil {
		return models.ShowForm{}, errors.New("venue_id must be a number")
	}

	startTime, err := parseStartTime(strings.TrimSpace(r.PostFormValue("start_time")))
	if err != nil {
		return models.ShowForm{}, err
	}

	return models.ShowForm{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}, nil
}

// parseStartTime accepts the display layout and the datetime-local
// input format.
func parseStartTime(value string) (time.Time, error) {
	layouts := []string{utils.ShowTimeLayout, "2006-01-02T15:04", time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time %q is not a valid timestamp", value)
}
