package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Coordinate bounds in decimal degrees
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Coordinates is a point in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is inside the latitude/longitude bounds
func (c Coordinates) Valid() bool {
	return c.Lat >= MinLatitude && c.Lat <= MaxLatitude &&
		c.Lng >= MinLongitude && c.Lng <= MaxLongitude
}

// Profile represents one professional listed in the directory
type Profile struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Role         string       `json:"role"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Website      string       `json:"website,omitempty"`
	LinkedIn     string       `json:"linkedin,omitempty"`
	Address      string       `json:"address,omitempty"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zipCode,omitempty"`
	Location     *Coordinates `json:"location,omitempty"`
	Skills       []string     `json:"skills"`
	Interests    []string     `json:"interests"`
	Experience   string       `json:"experience,omitempty"`
	Availability string       `json:"availability,omitempty"`
}

// CityState returns the "city, state" label used by the location filter
func (p *Profile) CityState() string {
	return fmt.Sprintf("%s, %s", p.City, p.State)
}

// Clone returns a deep copy so callers can mutate without touching stored records
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Location != nil {
		loc := *p.Location
		c.Location = &loc
	}
	c.Skills = append([]string(nil), p.Skills...)
	c.Interests = append([]string(nil), p.Interests...)
	return &c
}

// Validate performs validation on profile data
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidInput("name is required")
	}
	if p.Email != "" {
		if err := validate.Var(p.Email, "email"); err != nil {
			return ErrInvalidInput(fmt.Sprintf("invalid email: %s", p.Email))
		}
	}
	if p.Website != "" {
		if err := validate.Var(p.Website, "url"); err != nil {
			return ErrInvalidInput(fmt.Sprintf("invalid website: %s", p.Website))
		}
	}
	if p.Location != nil && !p.Location.Valid() {
		return ErrInvalidInput(fmt.Sprintf(
			"coordinates out of range: lat=%g lng=%g (lat must be in [-90,90], lng in [-180,180])",
			p.Location.Lat, p.Location.Lng,
		))
	}
	return nil
}
