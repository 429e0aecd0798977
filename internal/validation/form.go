// Package validation implements the admin profile form: its field schema,
// field-level error messages and the conversion to and from models.Profile.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// DefaultImageURL is prefilled when adding a new profile
const DefaultImageURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=120&h=120&q=80"

// ProfileForm holds the raw values of the add/edit profile form
type ProfileForm struct {
	Name        string `json:"name" validate:"min=2"`
	Role        string `json:"role"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"email"`
	Phone       string `json:"phone" validate:"min=10"`
	Website     string `json:"website" validate:"omitempty,url"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Latitude    string `json:"latitude" validate:"coordinate=lat"`
	Longitude   string `json:"longitude" validate:"coordinate=lng"`
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
}

// Fields lists the form fields in display order
var Fields = []string{
	"name", "role", "email", "phone", "address", "city", "state", "zipCode",
	"latitude", "longitude", "image", "website", "description", "skills", "interests",
}

var messages = map[string]string{
	"name":      "Name must be at least 2 characters",
	"email":     "Please enter a valid email",
	"phone":     "Please enter a valid phone number",
	"website":   "Please enter a valid URL",
	"latitude":  "Latitude must be a number between -90 and 90",
	"longitude": "Longitude must be a number between -180 and 180",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// coordinate=lat|lng: the value must parse as a number inside the axis
	// bounds. Blank means "no location" and is only valid when the other axis
	// is blank too.
	if err := v.RegisterValidation("coordinate", func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		if raw == "" {
			other := "Longitude"
			if fl.Param() == "lng" {
				other = "Latitude"
			}
			sibling := fl.Parent().FieldByName(other)
			return !sibling.IsValid() || strings.TrimSpace(sibling.String()) == ""
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		if fl.Param() == "lat" {
			return f >= models.MinLatitude && f <= models.MaxLatitude
		}
		return f >= models.MinLongitude && f <= models.MaxLongitude
	}); err != nil {
		panic(fmt.Sprintf("failed to register coordinate validation: %v", err))
	}

	return v
}

// FieldErrors maps a form field name to its message. It implements error so a
// blocked submission can be returned through ordinary error paths.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Validate runs every rule and returns the failing fields. A nil result means the form is valid.
func Validate(form ProfileForm) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("Invalid %s", fe.Field())
		}
		out[fe.Field()] = msg
	}
	return out
}

// Paired returns the field validated together with field, if any.
// Latitude and longitude are set or cleared as a pair.
func Paired(field string) (string, bool) {
	switch field {
	case "latitude":
		return "longitude", true
	case "longitude":
		return "latitude", true
	default:
		return "", false
	}
}

// ValidateField re-runs the rules and returns the error for one field only
func ValidateField(form ProfileForm, field string) error {
	if msg, ok := Validate(form)[field]; ok {
		return errors.New(msg)
	}
	return nil
}

// Set assigns a field by its form name
func (f *ProfileForm) Set(field, value string) error {
	ptr := f.field(field)
	if ptr == nil {
		return models.ErrInvalidInput(fmt.Sprintf("unknown form field: %s", field))
	}
	*ptr = value
	return nil
}

// Get reads a field by its form name
func (f *ProfileForm) Get(field string) (string, bool) {
	ptr := f.field(field)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

func (f *ProfileForm) field(name string) *string {
	switch name {
	case "name":
		return &f.Name
	case "role":
		return &f.Role
	case "image":
		return &f.Image
	case "description":
		return &f.Description
	case "email":
		return &f.Email
	case "phone":
		return &f.Phone
	case "website":
		return &f.Website
	case "address":
		return &f.Address
	case "city":
		return &f.City
	case "state":
		return &f.State
	case "zipCode":
		return &f.ZipCode
	case "latitude":
		return &f.Latitude
	case "longitude":
		return &f.Longitude
	case "skills":
		return &f.Skills
	case "interests":
		return &f.Interests
	default:
		return nil
	}
}

// NewProfileForm returns the blank form used when adding a profile
func NewProfileForm() ProfileForm {
	return ProfileForm{Image: DefaultImageURL}
}

// FormFromProfile prefills the form for editing
func FormFromProfile(p *models.Profile) ProfileForm {
	if p == nil {
		return ProfileForm{}
	}
	form := ProfileForm{
		Name:        p.Name,
		Role:        p.Role,
		Image:       p.ImageURL,
		Description: p.Description,
		Email:       p.Email,
		Phone:       p.Phone,
		Website:     p.Website,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Skills:      strings.Join(p.Skills, ", "),
		Interests:   strings.Join(p.Interests, ", "),
	}
	if p.Location != nil {
		form.Latitude = strconv.FormatFloat(p.Location.Lat, 'f', -1, 64)
		form.Longitude = strconv.FormatFloat(p.Location.Lng, 'f', -1, 64)
	}
	return form
}

// ToProfile converts a validated form into a profile without an id.
// The location is set only when both coordinates are present.
func (f ProfileForm) ToProfile() *models.Profile {
	p := &models.Profile{
		Name:        strings.TrimSpace(f.Name),
		Title:       strings.TrimSpace(f.Role),
		Role:        strings.TrimSpace(f.Role),
		ImageURL:    strings.TrimSpace(f.Image),
		Description: f.Description,
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		Website:     strings.TrimSpace(f.Website),
		Address:     strings.TrimSpace(f.Address),
		City:        strings.TrimSpace(f.City),
		State:       strings.TrimSpace(f.State),
		ZipCode:     strings.TrimSpace(f.ZipCode),
		Skills:      SplitList(f.Skills),
		Interests:   SplitList(f.Interests),
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(f.Latitude), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(f.Longitude), 64)
	if latErr == nil && lngErr == nil {
		p.Location = &models.Coordinates{Lat: lat, Lng: lng}
	}
	return p
}

// SplitList splits a comma separated value, trimming blanks and dropping empty entries
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
