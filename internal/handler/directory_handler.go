package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Raymond9734/profile-directory/internal/controller"
	"github.com/Raymond9734/profile-directory/internal/directory"
	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/service"
)

// DirectoryHandler serves the public directory pages
type DirectoryHandler struct {
	profileSvc service.ProfileService
	tiles      mapview.TileLayer
	logger     *slog.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(profileSvc service.ProfileService, tiles mapview.TileLayer, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		profileSvc: profileSvc,
		tiles:      tiles,
		logger:     logger,
	}
}

// LocationsResponse lists the location filter choices
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// Directory handles GET /api/directory?search=&location=&page=
func (h *DirectoryHandler) Directory(w http.ResponseWriter, r *http.Request) {
	query := service.DirectoryQuery{
		Search:   r.URL.Query().Get("search"),
		Location: r.URL.Query().Get("location"),
		Page:     1,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "page must be a number")
			return
		}
		query.Page = page
	}

	result, err := h.profileSvc.Browse(r.Context(), &query)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

// Locations handles GET /api/directory/locations
func (h *DirectoryHandler) Locations(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileSvc.List(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, LocationsResponse{
		Locations: append([]string{directory.AllLocations}, directory.LocationOptions(profiles)...),
	})
}

// Profile handles GET /api/directory/profiles/{id}.
// Missing profiles answer 404 with the not-found view.
func (h *DirectoryHandler) Profile(w http.ResponseWriter, r *http.Request) {
	view, err := controller.NewDetails(h.profileSvc).Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	if !view.Found {
		respondJSON(w, http.StatusNotFound, view)
		return
	}
	respondSuccess(w, view)
}

// Map handles GET /api/map?focus={id}
func (h *DirectoryHandler) Map(w http.ResponseWriter, r *http.Request) {
	home := controller.NewHome(h.profileSvc, mapview.NewCamera(), h.logger)
	if err := home.Load(r.Context()); err != nil {
		handleError(w, err, h.logger)
		return
	}

	if focus := r.URL.Query().Get("focus"); focus != "" {
		id, err := strconv.ParseInt(focus, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", "focus must be a profile id")
			return
		}
		if err := home.ShowOnMap(id); err != nil {
			handleError(w, err, h.logger)
			return
		}
	}

	respondSuccess(w, MapResponse{
		Model:    home.Map(h.tiles),
		Selected: home.Selected(),
	})
}

// MapResponse is the map view model plus the focused profile
type MapResponse struct {
	mapview.Model
	Selected *models.Profile `json:"selected,omitempty"`
}
