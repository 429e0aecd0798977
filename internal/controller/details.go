package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/service"
)

// NotFoundMessage is shown when a details page has no profile
const NotFoundMessage = "The profile you're looking for could not be found."

// DetailsView is the profile details page
type DetailsView struct {
	Found        bool            `json:"found"`
	Message      string          `json:"message,omitempty"`
	Profile      *models.Profile `json:"profile,omitempty"`
	Address      string          `json:"address,omitempty"`
	StaticMapURL string          `json:"staticMapUrl,omitempty"`
	BackURL      string          `json:"backUrl"`
}

// NotFound is the details view for a missing or malformed id
func NotFound() DetailsView {
	return DetailsView{Message: NotFoundMessage, BackURL: "/"}
}

// Details loads profile details pages
type Details struct {
	profileSvc service.ProfileService
}

// NewDetails creates a details controller
func NewDetails(profileSvc service.ProfileService) *Details {
	return &Details{profileSvc: profileSvc}
}

// Load resolves rawID into a details view. A malformed id or a missing
// profile yields the not-found view; other failures are returned.
func (d *Details) Load(ctx context.Context, rawID string) (DetailsView, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return NotFound(), nil
	}

	profile, err := d.profileSvc.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return NotFound(), nil
	}
	if err != nil {
		return DetailsView{}, err
	}

	view := DetailsView{
		Found:   true,
		Profile: profile,
		Address: mapview.FormatAddress(profile),
		BackURL: "/",
	}
	if profile.Location != nil {
		view.StaticMapURL = mapview.StaticMapURL(*profile.Location, mapview.StaticZoom, mapview.StaticWidth, mapview.StaticHeight)
	}
	return view, nil
}
