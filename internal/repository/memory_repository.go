package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// memoryRepository implements ProfileRepository over an in-process map.
// Stored records are copied on the way in and out.
type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]*models.Profile
	nextID   int64
}

// NewMemoryRepository creates an in-memory repository holding a copy of seed
func NewMemoryRepository(seed []*models.Profile) ProfileRepository {
	r := &memoryRepository{
		profiles: make(map[int64]*models.Profile, len(seed)),
		nextID:   1,
	}
	for _, p := range seed {
		r.profiles[p.ID] = p.Clone()
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

// List returns all profiles ordered by id
func (r *memoryRepository) List(ctx context.Context) ([]*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p.Clone())
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

// GetByID retrieves a profile by ID
func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}
	return p.Clone(), nil
}

// Create stores a new profile under the next free id
func (r *memoryRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := profile.Clone()
	created.ID = r.nextID
	r.nextID++
	r.profiles[created.ID] = created
	return created.Clone(), nil
}

// Update replaces the whole stored record
func (r *memoryRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; !ok {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", profile.ID))
	}
	r.profiles[profile.ID] = profile.Clone()
	return profile.Clone(), nil
}

// Delete removes a profile
func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}
	delete(r.profiles, id)
	return nil
}
