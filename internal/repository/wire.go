package repository

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// wireProfile is the JSON shape exchanged with the REST backend. The backend has
// served two layouts: nested location/contact objects and flat admin-form
// fields. Both are read, and both are written.
type wireProfile struct {
	ID           int64         `json:"id,omitempty"`
	Name         string        `json:"name"`
	Title        string        `json:"title,omitempty"`
	Role         string        `json:"role,omitempty"`
	Description  string        `json:"description,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	Image        string        `json:"image,omitempty"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Website      string        `json:"website,omitempty"`
	Address      string        `json:"address,omitempty"`
	City         string        `json:"city,omitempty"`
	State        string        `json:"state,omitempty"`
	ZipCode      string        `json:"zipCode,omitempty"`
	Latitude     *flexFloat    `json:"latitude,omitempty"`
	Longitude    *flexFloat    `json:"longitude,omitempty"`
	Location     *wireLocation `json:"location,omitempty"`
	Contact      *wireContact  `json:"contact,omitempty"`
	Skills       flexList      `json:"skills"`
	Interests    flexList      `json:"interests"`
	Experience   string        `json:"experience,omitempty"`
	Availability string        `json:"availability,omitempty"`
}

type wireLocation struct {
	Lat     *flexFloat `json:"lat,omitempty"`
	Lng     *flexFloat `json:"lng,omitempty"`
	Address string     `json:"address,omitempty"`
}

type wireContact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// flexFloat accepts a JSON number or a numeric string. A blank string leaves
// it unset, the same as an absent field.
type flexFloat struct {
	value float64
	set   bool
}

func newFlexFloat(v float64) *flexFloat {
	return &flexFloat{value: v, set: true}
}

// present reports whether f carries a parsed number
func (f *flexFloat) present() bool {
	return f != nil && f.set
}

func (f flexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.value, f.set = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

// flexList accepts a JSON array of strings or a comma separated string
type flexList []string

func (l *flexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		out := []string{}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*l = out
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (w *wireProfile) toModel() *models.Profile {
	p := &models.Profile{
		ID:           w.ID,
		Name:         w.Name,
		Title:        w.Title,
		Role:         w.Role,
		Description:  w.Description,
		ImageURL:     firstNonEmpty(w.ImageURL, w.Image),
		Email:        w.Email,
		Phone:        w.Phone,
		Website:      w.Website,
		Address:      w.Address,
		City:         w.City,
		State:        w.State,
		ZipCode:      w.ZipCode,
		Skills:       append([]string{}, w.Skills...),
		Interests:    append([]string{}, w.Interests...),
		Experience:   w.Experience,
		Availability: w.Availability,
	}

	if w.Contact != nil {
		p.Email = firstNonEmpty(w.Contact.Email, p.Email)
		p.Phone = firstNonEmpty(w.Contact.Phone, p.Phone)
		p.LinkedIn = w.Contact.LinkedIn
	}

	switch {
	case w.Location != nil && w.Location.Lat.present() && w.Location.Lng.present():
		p.Location = &models.Coordinates{Lat: w.Location.Lat.value, Lng: w.Location.Lng.value}
	case w.Latitude.present() && w.Longitude.present():
		p.Location = &models.Coordinates{Lat: w.Latitude.value, Lng: w.Longitude.value}
	}

	if p.Title == "" {
		p.Title = p.Role
	}
	return p
}

func toWire(p *models.Profile) *wireProfile {
	w := &wireProfile{
		ID:           p.ID,
		Name:         p.Name,
		Title:        p.Title,
		Role:         p.Role,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Image:        p.ImageURL,
		Email:        p.Email,
		Phone:        p.Phone,
		Website:      p.Website,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Skills:       flexList(append([]string{}, p.Skills...)),
		Interests:    flexList(append([]string{}, p.Interests...)),
		Experience:   p.Experience,
		Availability: p.Availability,
		Contact: &wireContact{
			Email:    p.Email,
			Phone:    p.Phone,
			LinkedIn: p.LinkedIn,
		},
	}

	if p.Location != nil {
		lat, lng := newFlexFloat(p.Location.Lat), newFlexFloat(p.Location.Lng)
		w.Latitude, w.Longitude = lat, lng
		w.Location = &wireLocation{Lat: lat, Lng: lng, Address: p.CityState()}
	}
	return w
}
