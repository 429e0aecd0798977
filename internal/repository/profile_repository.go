package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// ProfileRepository defines the interface for profile data access.
// Every provider (in-memory, REST backend, PostgreSQL) satisfies it.
type ProfileRepository interface {
	List(ctx context.Context) ([]*models.Profile, error)
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// profileRepository implements ProfileRepository using PostgreSQL
type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, name, title, role, description, image_url, email, phone, website, linkedin,
	address, city, state, zip_code, latitude, longitude, skills, interests, experience, availability`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	profile := &models.Profile{}
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Title,
		&profile.Role,
		&profile.Description,
		&profile.ImageURL,
		&profile.Email,
		&profile.Phone,
		&profile.Website,
		&profile.LinkedIn,
		&profile.Address,
		&profile.City,
		&profile.State,
		&profile.ZipCode,
		&lat,
		&lng,
		pq.Array(&profile.Skills),
		pq.Array(&profile.Interests),
		&profile.Experience,
		&profile.Availability,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		profile.Location = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}
	return profile, nil
}

func coordinateArgs(profile *models.Profile) (sql.NullFloat64, sql.NullFloat64) {
	if profile.Location == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: profile.Location.Lat, Valid: true},
		sql.NullFloat64{Float64: profile.Location.Lng, Valid: true}
}

// List retrieves all profiles in insertion order
func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// GetByID retrieves a profile by ID
func (r *profileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// Create inserts a new profile
func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (name, title, role, description, image_url, email, phone, website, linkedin,
			address, city, state, zip_code, latitude, longitude, skills, interests, experience, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	created := profile.Clone()
	lat, lng := coordinateArgs(created)

	err := r.db.QueryRowContext(
		ctx,
		query,
		created.Name,
		created.Title,
		created.Role,
		created.Description,
		created.ImageURL,
		created.Email,
		created.Phone,
		created.Website,
		created.LinkedIn,
		created.Address,
		created.City,
		created.State,
		created.ZipCode,
		lat,
		lng,
		pq.Array(created.Skills),
		pq.Array(created.Interests),
		created.Experience,
		created.Availability,
	).Scan(&created.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}

// Update replaces an existing profile
func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET name = $1, title = $2, role = $3, description = $4, image_url = $5, email = $6, phone = $7,
			website = $8, linkedin = $9, address = $10, city = $11, state = $12, zip_code = $13,
			latitude = $14, longitude = $15, skills = $16, interests = $17, experience = $18, availability = $19
		WHERE id = $20`

	lat, lng := coordinateArgs(profile)

	result, err := r.db.ExecContext(
		ctx,
		query,
		profile.Name,
		profile.Title,
		profile.Role,
		profile.Description,
		profile.ImageURL,
		profile.Email,
		profile.Phone,
		profile.Website,
		profile.LinkedIn,
		profile.Address,
		profile.City,
		profile.State,
		profile.ZipCode,
		lat,
		lng,
		pq.Array(profile.Skills),
		pq.Array(profile.Interests),
		profile.Experience,
		profile.Availability,
		profile.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", profile.ID))
	}

	return profile.Clone(), nil
}

// Delete removes a profile
func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM profiles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("profile with ID %d not found", id))
	}

	return nil
}
