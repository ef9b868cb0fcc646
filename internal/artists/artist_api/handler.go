package artist_api

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

type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string) (models.ArtistSearchResult, error)
	Detail(ctx context.Context, id int64, now time.Time) (*models.ArtistDetail, error)
	Get(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, form models.ArtistForm) (*models.Artist, error)
	Update(ctx context.Context, id int64, form models.ArtistForm) error
}

type Handler struct {
	ArtistService ArtistService
	Renderer      *web.Renderer
	Logger        *logger.Logger
}

type artistSearchPage struct {
	SearchTerm string
	Results    models.ArtistSearchResult
}

type artistEditPage struct {
	Artist *models.Artist
	Form   models.ArtistForm
}

// ListArtists renders the artist listing.
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	refs, err := h.ArtistService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "artists.html", "Artists", refs)
}

// SearchArtists renders the artists matching the search_term form
// field.
func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")

	results, err := h.ArtistService.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: term=%q: %v", term, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "search_artists.html", "Search Artists", artistSearchPage{
		SearchTerm: term,
		Results:    results,
	})
}

// ShowArtist renders an artist's detail page with its past and
// upcoming shows.
func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	detail, err := h.ArtistService.Detail(r.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("ShowArtist: id=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.HTML(w, r, http.StatusOK, "show_artist.html", detail.Artist.Name, detail)
}

// NewArtistForm renders the empty create-artist form.
func (h *Handler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HTML(w, r, http.StatusOK, "new_artist.html", "New Artist", models.ArtistForm{SeekingVenue: true})
}

// CreateArtist creates an artist from the submitted form.
func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	form, err := parseArtistForm(r)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateArtist: invalid form: %v", err))
		h.Renderer.HTMLWithFlash(w, r, http.StatusUnprocessableEntity, "new_artist.html", "New Artist", form,
			web.Flash{Category: web.FlashError, Message: err.Error()})
		return
	}

	artist, err := h.ArtistService.Create(r.Context(), form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		web.AddFlash(w, web.FlashError, "An error occurred. Artist "+form.Name+" could not be listed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateArtist: created artist %d", artist.ID))
	web.AddFlash(w, web.FlashSuccess, "Artist "+artist.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditArtistForm renders the edit form pre-filled from the stored
// artist.
func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	artist, err := h.ArtistService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("EditArtistForm: id=%d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	h.Renderer.HTML(w, r, http.StatusOK, "edit_artist.html", "Edit "+artist.Name, artistEditPage{
		Artist: artist,
		Form:   artistFormFromModel(artist),
	})
}

// EditArtist applies the submitted edits and redirects to the detail
// page.
func (h *Handler) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	form, err := parseArtistForm(r)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("EditArtist: id=%d invalid form: %v", id, err))
		web.AddFlash(w, web.FlashError, err.Error())
		http.Redirect(w, r, fmt.Sprintf("/artists/%d/edit", id), http.StatusSeeOther)
		return
	}

	if err := h.ArtistService.Update(r.Context(), id, form); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("EditArtist: id=%d: %v", id, err))
		web.AddFlash(w, web.FlashError, "An error occurred, the update was not applied.")
		http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
		return
	}

	web.AddFlash(w, web.FlashSuccess, "Artist "+form.Name+" has been successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

func artistID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
}
