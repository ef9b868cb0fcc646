package venue_api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"gigbook/internal/logger"
	"gigbook/internal/models"
	"gigbook/internal/web"
)

type VenueService interface {
	ListByLocation(ctx context.Context, now time.Time) ([]models.CityGroup, error)
	Search(ctx context.Context, term string) (models.VenueSearchResult, error)
	Detail(ctx context.Context, id int64, now time.Time) (*models.VenueDetail, error)
	Get(ctx context.Context, id int64) (*models.Venue, error)
	Create(ctx context.Context, form models.VenueForm) (*models.Venue, error)
	Update(ctx context.Context, id int64, form models.VenueForm) error
	Delete(ctx context.Context, id int64) (string, error)
}

type Handler struct {
	VenueService VenueService
	Renderer     *web.Renderer
	Logger       *logger.Logger
}

// venueSearchPage is the search results payload.
type venueSearchPage struct {
	SearchTerm string
	Results    models.VenueSearchResult
}

// venueEditPage is the pre-filled edit form payload.
type venueEditPage struct {
	Venue *models.Venue
	Form  models.VenueForm
}

// ListVenues renders the venue listing grouped by (city, state).
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := h.VenueService.ListByLocation(r.Context(), time.Now())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "venues.html", "Venues", groups)
}

// SearchVenues renders the venues matching the search_term form field.
func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")

	results, err := h.VenueService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: term=%q: %v", term, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "search_venues.html", "Search Venues", venueSearchPage{
		SearchTerm: term,
		Results:    results,
	})
}

// ShowVenue renders a venue's detail page with its past and upcoming
// shows.
func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	detail, err := h.VenueService.Detail(r.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("ShowVenue: id=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "show_venue.html", detail.Venue.Name, detail)
}

// NewVenueForm renders the empty create-venue form.
func (h *Handler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_venue.html", "New Venue", models.VenueForm{SeekingTalent: true})
}

// CreateVenue creates a venue from the submitted form.
func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	form, err := parseVenueForm(r)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateVenue: invalid form: %v", err))
		h.Renderer.HTMLWithFlash(w, r, http.StatusUnprocessableEntity, "new_venue.html", "New Venue", form,
			web.Flash{Category: web.FlashError, Message: err.Error()})
		return
	}

	venue, err := h.VenueService.Create(r.Context(), form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		web.AddFlash(w, web.FlashError, "An error occurred. Venue "+form.Name+" could not be listed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateVenue: created venue %d", venue.ID))
	web.AddFlash(w, web.FlashSuccess, "Venue "+venue.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditVenueForm renders the edit form pre-filled from the stored venue.
func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	venue, err := h.VenueService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("EditVenueForm: id=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	h.Renderer.HTML(w, r, http.StatusOK, "edit_venue.html", "Edit "+venue.Name, venueEditPage{
		Venue: venue,
		Form:  venueFormFromModel(venue),
	})
}

// EditVenue applies the submitted edits and redirects to the detail
// page.
func (h *Handler) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	form, err := parseVenueForm(r)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("EditVenue: id=%d invalid form: %v", id, err))
		web.AddFlash(w, web.FlashError, err.Error())
		http.Redirect(w, r, fmt.Sprintf("/venues/%d/edit", id), http.StatusSeeOther)
		return
	}

	if err := h.VenueService.Update(r.Context(), id, form); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("EditVenue: id=%d: %v", id, err))
		web.AddFlash(w, web.FlashError, "An error occurred while trying to update Venue "+form.Name+".")
		http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
		return
	}

	web.AddFlash(w, web.FlashSuccess, "Venue "+form.Name+" has been updated.")
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// DeleteVenue deletes a venue and its shows, then redirects home.
func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	name, err := h.VenueService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue: id=%d: %v", id, err))
		web.AddFlash(w, web.FlashError, "An error occurred and the venue was not deleted.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("DeleteVenue: deleted venue %d", id))
	web.AddFlash(w, web.FlashSuccess, "Venue "+name+" was deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func venueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
}
