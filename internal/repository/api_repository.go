package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// ProfilesPath is the collection endpoint of the profiles REST backend
const ProfilesPath = "/api/profiles"

// APIConfig holds the REST backend settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// apiRepository implements ProfileRepository against the external REST backend
type apiRepository struct {
	baseURL string
	client  *http.Client
}

// NewAPIRepository creates a repository backed by the profiles REST API.
// A nil client gets a default one with cfg.Timeout.
func NewAPIRepository(cfg APIConfig, client *http.Client) ProfileRepository {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &apiRepository{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}
}

// List handles GET /api/profiles
func (r *apiRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var payload []wireProfile
	if err := r.do(ctx, http.MethodGet, ProfilesPath, nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(payload))
	for i := range payload {
		profiles = append(profiles, payload[i].toModel())
	}
	return profiles, nil
}

// GetByID selects a profile from the list endpoint
func (r *apiRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	profiles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
}

// Create handles POST /api/profiles
func (r *apiRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	body := toWire(profile)
	body.ID = 0

	var created wireProfile
	if err := r.do(ctx, http.MethodPost, ProfilesPath, body, &created); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created.toModel(), nil
}

// Update handles PATCH /api/profiles/:id, always sending the whole record
func (r *apiRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var updated wireProfile
	if err := r.do(ctx, http.MethodPatch, profilePath(profile.ID), toWire(profile), &updated); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if updated.ID == 0 {
		return profile.Clone(), nil
	}
	return updated.toModel(), nil
}

// Delete handles DELETE /api/profiles/:id
func (r *apiRepository) Delete(ctx context.Context, id int64) error {
	if err := r.do(ctx, http.MethodDelete, profilePath(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func profilePath(id int64) string {
	return ProfilesPath + "/" + strconv.FormatInt(id, 10)
}

// do sends a JSON request and decodes a JSON answer into out.
// Non-2xx answers become *models.APIError.
func (r *apiRepository) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError uses the JSON "message" field when present
func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		_ = json.Unmarshal(data, &payload)
	}
	return models.NewAPIError(resp.StatusCode, payload.Message)
}
