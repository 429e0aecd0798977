package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/profile-directory/internal/cache"
	"github.com/Raymond9734/profile-directory/internal/directory"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/repository"
)

// ProfileService handles profile business logic. Reads go through the query
// cache; every successful mutation invalidates it.
type ProfileService interface {
	List(ctx context.Context) ([]*models.Profile, error)
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	Browse(ctx context.Context, query *DirectoryQuery) (*DirectoryResult, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	store       cache.Store
	logger      *slog.Logger
}

// NewProfileService creates a new profile service. A nil store disables caching.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	store cache.Store,
	logger *slog.Logger,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		store:       store,
		logger:      logger,
	}
}

// List retrieves every profile, served from cache while fresh
func (s *profileService) List(ctx context.Context) ([]*models.Profile, error) {
	var cached []*models.Profile
	if s.cacheGet(ctx, cache.ProfilesKey, &cached) {
		return cached, nil
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list profiles",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	s.cacheSet(ctx, cache.ProfilesKey, profiles)
	return profiles, nil
}

// GetByID retrieves a profile by ID
func (s *profileService) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	if id <= 0 {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}

	var cached models.Profile
	if s.cacheGet(ctx, cache.ProfileKey(id), &cached) {
		return &cached, nil
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.ProfileKey(id), profile)
	return profile, nil
}

// Browse filters and paginates the directory
func (s *profileService) Browse(ctx context.Context, query *DirectoryQuery) (*DirectoryResult, error) {
	query.Normalize()

	profiles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	view := directory.Browse(profiles, query.Criteria(), query.Page)
	query.Page = view.Pagination.Page

	return &DirectoryResult{
		View:      view,
		Query:     *query,
		Locations: directory.LocationOptions(profiles),
	}, nil
}

// Create creates a new profile
func (s *profileService) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		s.logger.Error("failed to create profile",
			slog.String("name", profile.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.invalidate(ctx)

	s.logger.Info("profile created",
		slog.Int64("profile_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Update replaces an existing profile
func (s *profileService) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.Update(ctx, profile)
	if err != nil {
		s.logger.Error("failed to update profile",
			slog.Int64("profile_id", profile.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx)

	s.logger.Info("profile updated",
		slog.Int64("profile_id", profile.ID),
	)

	return updated, nil
}

// Delete removes a profile
func (s *profileService) Delete(ctx context.Context, id int64) error {
	if err := s.profileRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete profile",
			slog.Int64("profile_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	s.invalidate(ctx)

	s.logger.Info("profile deleted",
		slog.Int64("profile_id", id),
	)

	return nil
}

// cacheGet reports a hit. Cache failures are logged and count as a miss.
func (s *profileService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.store == nil {
		return false
	}
	ok, err := s.store.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn("cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return ok
}

func (s *profileService) cacheSet(ctx context.Context, key string, value any) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Warn("cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (s *profileService) invalidate(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Invalidate(ctx, cache.ProfilesKey); err != nil {
		s.logger.Warn("cache invalidation failed",
			slog.String("error", err.Error()),
		)
	}
}
