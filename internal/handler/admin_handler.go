package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Raymond9734/profile-directory/internal/admin"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
	"github.com/Raymond9734/profile-directory/internal/service"
)

// AdminHandler handles profile management requests. Each request drives a
// fresh admin.Panel, so validation and notifications match the terminal client.
type AdminHandler struct {
	profileSvc service.ProfileService
	notifier   notify.Notifier
	logger     *slog.Logger
}

// NewAdminHandler creates a new admin handler. notifier also receives every
// notification, in addition to the response body.
func NewAdminHandler(profileSvc service.ProfileService, notifier notify.Notifier, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		profileSvc: profileSvc,
		notifier:   notifier,
		logger:     logger,
	}
}

// MutationResponse is returned by every successful admin write
type MutationResponse struct {
	Profile      *models.Profile      `json:"profile,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// ListProfiles handles GET /api/admin/profiles
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileSvc.List(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, service.ProfileListResult{
		Data:  profiles,
		Total: len(profiles),
	})
}

// CreateProfile handles POST /api/admin/profiles
func (h *AdminHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	values, ok := decodeFormValues(w, r)
	if !ok {
		return
	}

	panel, rec, err := h.openPanel(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	if err := panel.StartCreate(); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if err := applyFormValues(panel, values); err != nil {
		handleError(w, err, h.logger)
		return
	}

	created, err := panel.Submit(r.Context())
	if err != nil {
		handleErrorWithNotification(w, err, lastNotification(rec), h.logger)
		return
	}

	respondCreated(w, MutationResponse{Profile: created, Notification: lastNotification(rec)})
}

// UpdateProfile handles PATCH /api/admin/profiles/{id}.
// Fields missing from the body keep their stored values; the whole record is saved.
func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	values, ok := decodeFormValues(w, r)
	if !ok {
		return
	}

	panel, rec, err := h.openPanel(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	if err := panel.StartEdit(id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if err := applyFormValues(panel, values); err != nil {
		handleError(w, err, h.logger)
		return
	}

	updated, err := panel.Submit(r.Context())
	if err != nil {
		handleErrorWithNotification(w, err, lastNotification(rec), h.logger)
		return
	}

	respondSuccess(w, MutationResponse{Profile: updated, Notification: lastNotification(rec)})
}

// DeleteProfile handles DELETE /api/admin/profiles/{id}
func (h *AdminHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	panel, rec, err := h.openPanel(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	if err := panel.Delete(r.Context(), id); err != nil {
		handleErrorWithNotification(w, err, lastNotification(rec), h.logger)
		return
	}

	respondSuccess(w, MutationResponse{Notification: lastNotification(rec)})
}

func (h *AdminHandler) openPanel(r *http.Request) (*admin.Panel, *notify.Recorder, error) {
	rec := &notify.Recorder{}
	panel := admin.NewPanel(h.profileSvc, notify.Multi(rec, h.notifier), h.logger)
	if err := panel.Open(r.Context()); err != nil {
		return nil, nil, err
	}
	return panel, rec, nil
}

func lastNotification(rec *notify.Recorder) *notify.Notification {
	if rec == nil {
		return nil
	}
	n, ok := rec.Last()
	if !ok {
		return nil
	}
	return &n
}

func profileIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid profile id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// decodeFormValues reads a JSON object of form fields. Numbers and string
// arrays are accepted and converted to their form text.
func decodeFormValues(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return nil, false
	}

	values := make(map[string]string, len(raw))
	for field, v := range raw {
		switch val := v.(type) {
		case nil:
			values[field] = ""
		case string:
			values[field] = val
		case float64:
			values[field] = strconv.FormatFloat(val, 'f', -1, 64)
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, fmt.Sprint(item))
			}
			values[field] = strings.Join(parts, ", ")
		default:
			respondError(w, http.StatusBadRequest, "INVALID_INPUT", fmt.Sprintf("unsupported value for %s", field))
			return nil, false
		}
	}
	return values, true
}

// applyFormValues sets each known field on the panel's form. Field validation
// messages are collected by Submit; only unknown fields fail here.
func applyFormValues(panel *admin.Panel, values map[string]string) error {
	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		form := panel.Form()
		if _, ok := form.Get(field); !ok {
			if field == "id" {
				continue
			}
			return models.ErrInvalidInput(fmt.Sprintf("unknown form field: %s", field))
		}
		_ = panel.SetField(field, values[field])
	}
	return nil
}
