package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Raymond9734/profile-directory/internal/cache"
	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
	"github.com/Raymond9734/profile-directory/internal/repository"
	"github.com/Raymond9734/profile-directory/internal/service"
)

type failingDeleteRepository struct {
	repository.ProfileRepository
}

func (failingDeleteRepository) Delete(context.Context, int64) error {
	return models.NewAPIError(http.StatusInternalServerError, "")
}

type downChecker struct{}

func (downChecker) Health(context.Context) error { return errors.New("connection refused") }

func newTestServer(t *testing.T, repo repository.ProfileRepository, checks map[string]HealthChecker) (*httptest.Server, *notify.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cache.NewMemoryStore(cache.DefaultTTL)
	svc := service.NewProfileService(repo, store, logger)
	rec := &notify.Recorder{}

	if checks == nil {
		checks = map[string]HealthChecker{"cache": store}
	}

	router := NewRouter(Handlers{
		Directory: NewDirectoryHandler(svc, mapview.Tiles("", ""), logger),
		Admin:     NewAdminHandler(svc, rec, logger),
		Health:    NewHealthHandler(checks, logger),
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, rec
}

func seededRepo() repository.ProfileRepository {
	return repository.NewMemoryRepository(repository.SeedProfiles())
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

type directoryBody struct {
	Profiles   []models.Profile        `json:"profiles"`
	Matched    int                     `json:"matched"`
	Summary    string                  `json:"summary"`
	Pagination models.PaginationResult `json:"pagination"`
	Locations  []string                `json:"locations"`
}

func TestDirectory(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantMatched int
		wantSummary string
	}{
		{name: "all", query: "", wantStatus: http.StatusOK, wantMatched: 4, wantSummary: "4 profiles found"},
		{name: "search", query: "?search=design", wantStatus: http.StatusOK, wantMatched: 2, wantSummary: "2 profiles found"},
		{name: "location", query: "?location=Mumbai,%20Maharastra", wantStatus: http.StatusOK, wantMatched: 1, wantSummary: "1 profile found"},
		{name: "location all", query: "?location=all", wantStatus: http.StatusOK, wantMatched: 4, wantSummary: "4 profiles found"},
		{name: "bad page", query: "?page=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body directoryBody
			var out any = &body
			if tt.wantStatus != http.StatusOK {
				out = nil
			}
			status := doJSON(t, http.MethodGet, srv.URL+"/api/directory"+tt.query, "", out)
			if status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, status)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if body.Matched != tt.wantMatched || body.Summary != tt.wantSummary {
				t.Errorf("expected %d/%q, got %d/%q", tt.wantMatched, tt.wantSummary, body.Matched, body.Summary)
			}
			if body.Pagination.PageSize != 4 {
				t.Errorf("expected page size 4, got %d", body.Pagination.PageSize)
			}
			if len(body.Locations) != 4 {
				t.Errorf("expected 4 locations, got %v", body.Locations)
			}
		})
	}
}

func TestLocations(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	var body LocationsResponse
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/directory/locations", "", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Locations) != 5 || body.Locations[0] != "all" {
		t.Errorf("unexpected locations %v", body.Locations)
	}
}

func TestProfileDetails(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	var found struct {
		Found   bool           `json:"found"`
		Profile models.Profile `json:"profile"`
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/directory/profiles/3", "", &found); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !found.Found || found.Profile.Name != "Kiran Fugat" {
		t.Errorf("unexpected details %+v", found)
	}

	var missing struct {
		Found   bool   `json:"found"`
		Message string `json:"message"`
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/directory/profiles/abc", "", &missing); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if missing.Found || missing.Message != "The profile you're looking for could not be found." {
		t.Errorf("unexpected not-found view %+v", missing)
	}
}

func TestMap(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	var body struct {
		Tiles   mapview.TileLayer   `json:"tiles"`
		Camera  mapview.CameraState `json:"camera"`
		Markers []mapview.Marker    `json:"markers"`
	}
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/map", "", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Camera.Zoom != mapview.DefaultZoom || body.Tiles.URL != mapview.OSMTileURL || len(body.Markers) != 4 {
		t.Errorf("unexpected default map %+v", body)
	}

	if status := doJSON(t, http.MethodGet, srv.URL+"/api/map?focus=2", "", &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Camera.Zoom != mapview.FocusZoom || body.Camera.Center.Lat != 19.9975 {
		t.Errorf("expected camera on Nashik, got %+v", body.Camera)
	}

	if status := doJSON(t, http.MethodGet, srv.URL+"/api/map?focus=99", "", nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown focus, got %d", status)
	}
}

func TestAdmin_CreateValidation(t *testing.T) {
	srv, rec := newTestServer(t, seededRepo(), nil)

	var body ErrorResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/api/admin/profiles",
		`{"name": "A", "email": "a@b", "phone": "12345"}`, &body)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	for field, msg := range map[string]string{
		"name":  "Name must be at least 2 characters",
		"email": "Please enter a valid email",
		"phone": "Please enter a valid phone number",
	} {
		if body.Fields[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, body.Fields[field])
		}
	}
	if len(rec.All()) != 0 {
		t.Errorf("expected no notification for a blocked submit, got %v", rec.All())
	}
}

func TestAdmin_CreateUpdateDelete(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	var created MutationResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/api/admin/profiles",
		`{"name": "Asha Patil", "role": "Data Scientist", "email": "asha@example.com",
		  "phone": "9876543210", "latitude": 19.87, "longitude": "75.34", "skills": ["Python", "R"]}`, &created)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.Profile == nil || created.Profile.ID != 5 {
		t.Fatalf("unexpected created profile %+v", created.Profile)
	}
	if created.Notification == nil || created.Notification.Title != "Profile Created" {
		t.Errorf("unexpected notification %+v", created.Notification)
	}
	if len(created.Profile.Skills) != 2 || created.Profile.Location == nil {
		t.Errorf("expected skills and location, got %+v", created.Profile)
	}

	var updated MutationResponse
	status = doJSON(t, http.MethodPatch, srv.URL+"/api/admin/profiles/5", `{"city": "Aurangabad"}`, &updated)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if updated.Profile.City != "Aurangabad" || updated.Profile.Email != "asha@example.com" {
		t.Errorf("expected a merged record, got %+v", updated.Profile)
	}
	if updated.Notification == nil || updated.Notification.Title != "Profile Updated" {
		t.Errorf("unexpected notification %+v", updated.Notification)
	}

	var deleted MutationResponse
	if status := doJSON(t, http.MethodDelete, srv.URL+"/api/admin/profiles/2", "", &deleted); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if deleted.Notification == nil || deleted.Notification.Title != "Profile Deleted" {
		t.Errorf("unexpected notification %+v", deleted.Notification)
	}

	var list service.ProfileListResult
	doJSON(t, http.MethodGet, srv.URL+"/api/admin/profiles", "", &list)
	for _, p := range list.Data {
		if p.ID == 2 {
			t.Error("deleted profile still listed")
		}
	}
	if list.Total != 4 {
		t.Errorf("expected 4 profiles after add and delete, got %d", list.Total)
	}
}

func TestAdmin_DeleteFailure(t *testing.T) {
	srv, rec := newTestServer(t, failingDeleteRepository{seededRepo()}, nil)

	var body ErrorResponse
	status := doJSON(t, http.MethodDelete, srv.URL+"/api/admin/profiles/2", "", &body)
	if status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if body.Notification == nil || body.Notification.Description != "Failed to delete profile. Please try again." {
		t.Errorf("unexpected notification %+v", body.Notification)
	}
	if last, ok := rec.Last(); !ok || !last.IsError() {
		t.Errorf("expected the error notification to reach the notifier, got %+v", last)
	}

	var list service.ProfileListResult
	doJSON(t, http.MethodGet, srv.URL+"/api/admin/profiles", "", &list)
	if list.Total != 4 {
		t.Errorf("expected the list unchanged, got %d profiles", list.Total)
	}
}

func TestAdmin_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t, seededRepo(), nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "invalid json", method: http.MethodPost, path: "/api/admin/profiles", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: "/api/admin/profiles", body: `{"nickname": "x"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid id", method: http.MethodDelete, path: "/api/admin/profiles/abc", wantStatus: http.StatusBadRequest},
		{name: "missing profile", method: http.MethodPatch, path: "/api/admin/profiles/99", body: `{}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := doJSON(t, tt.method, srv.URL+tt.path, tt.body, nil); status != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, status)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv, _ := newTestServer(t, seededRepo(), nil)

		var body HealthResponse
		if status := doJSON(t, http.MethodGet, srv.URL+"/health", "", &body); status != http.StatusOK {
			t.Fatalf("expected 200, got %d", status)
		}
		if body.Services["cache"] != "healthy" {
			t.Errorf("unexpected services %v", body.Services)
		}
	})

	t.Run("unhealthy", func(t *testing.T) {
		srv, _ := newTestServer(t, seededRepo(), map[string]HealthChecker{
			"database": downChecker{},
			"redis":    nil,
		})

		var body HealthResponse
		if status := doJSON(t, http.MethodGet, srv.URL+"/health", "", &body); status != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", status)
		}
		if body.Services["database"] != "unhealthy" || body.Services["redis"] != "not_configured" {
			t.Errorf("unexpected services %v", body.Services)
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}
