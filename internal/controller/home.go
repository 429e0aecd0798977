// Package controller holds the page state of the directory front ends.
// Controllers belong to one session or request and are not safe for
// concurrent use.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Raymond9734/profile-directory/internal/directory"
	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/service"
)

// Home is the directory page: search, location filter, pagination, and the
// map with an optional selected profile.
type Home struct {
	profileSvc service.ProfileService
	logger     *slog.Logger

	profiles  []*models.Profile
	criteria  directory.Criteria
	paginator *directory.Paginator
	selected  *models.Profile
	mapView   *mapview.View
}

// NewHome creates a home controller driving widget. A nil widget gets a headless camera.
func NewHome(profileSvc service.ProfileService, widget mapview.Widget, logger *slog.Logger) *Home {
	if widget == nil {
		widget = mapview.NewCamera()
	}
	return &Home{
		profileSvc: profileSvc,
		logger:     logger,
		criteria:   directory.Criteria{Location: directory.AllLocations},
		paginator:  directory.NewPaginator(models.DefaultPageSize),
		mapView:    mapview.NewView(widget),
	}
}

// Load fetches the profiles
func (h *Home) Load(ctx context.Context) error {
	profiles, err := h.profileSvc.List(ctx)
	if err != nil {
		h.logger.Error("failed to load directory",
			slog.String("error", err.Error()),
		)
		return err
	}
	h.profiles = profiles
	h.sync()
	return nil
}

// Search sets the search text and goes back to the first page
func (h *Home) Search(query string) {
	h.criteria.Search = strings.TrimSpace(query)
	h.paginator.Reset()
	h.sync()
}

// FilterLocation sets the location filter and goes back to the first page.
// An empty value means every location.
func (h *Home) FilterLocation(location string) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = directory.AllLocations
	}
	h.criteria.Location = location
	h.paginator.Reset()
	h.sync()
}

// Criteria returns the active filter
func (h *Home) Criteria() directory.Criteria {
	return h.criteria
}

// GoToPage moves to page when it exists
func (h *Home) GoToPage(page int) bool {
	h.sync()
	return h.paginator.GoToPage(page)
}

// NextPage moves forward one page when possible
func (h *Home) NextPage() bool {
	h.sync()
	return h.paginator.Next()
}

// PrevPage moves back one page when possible
func (h *Home) PrevPage() bool {
	h.sync()
	return h.paginator.Prev()
}

// View renders the visible cards
func (h *Home) View() directory.View {
	return directory.Render(h.profiles, h.criteria, h.paginator)
}

// Locations returns the choices of the location filter
func (h *Home) Locations() []string {
	return directory.LocationOptions(h.profiles)
}

// ShowOnMap selects a profile and flies the map to it
func (h *Home) ShowOnMap(id int64) error {
	for _, p := range h.profiles {
		if p.ID == id {
			h.selected = p
			if !h.mapView.Focus(p) {
				h.logger.Debug("profile has no coordinates",
					slog.Int64("profile_id", id),
				)
			}
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
}

// ResetMap clears the selection and returns the map to its default camera
func (h *Home) ResetMap() {
	h.selected = nil
	h.mapView.Reset()
}

// ZoomIn zooms the map in one level
func (h *Home) ZoomIn() {
	h.mapView.ZoomIn()
}

// ZoomOut zooms the map out one level
func (h *Home) ZoomOut() {
	h.mapView.ZoomOut()
}

// Selected returns the profile last shown on the map, or nil
func (h *Home) Selected() *models.Profile {
	return h.selected
}

// Markers places every loaded profile on the map, regardless of the list filter
func (h *Home) Markers() []mapview.Marker {
	return mapview.Markers(h.profiles)
}

// Map returns the full map model for the given tile layer
func (h *Home) Map(tiles mapview.TileLayer) mapview.Model {
	return mapview.Model{
		Tiles:   tiles,
		Camera:  h.mapView.Camera(),
		Markers: h.Markers(),
	}
}

// sync keeps the paginator's total in step with the current filter
func (h *Home) sync() {
	h.paginator.SetTotal(len(directory.Filter(h.profiles, h.criteria)))
}
