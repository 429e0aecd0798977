// Package mapview turns profiles into map markers and drives the camera of
// whatever map widget the front end renders.
package mapview

import (
	"fmt"
	"strings"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// Category groups profiles for marker styling
type Category string

// Marker categories
const (
	CategoryDesign      Category = "design"
	CategoryEngineering Category = "engineering"
	CategoryScience     Category = "science"
	CategoryProduct     Category = "product"
	CategoryDefault     Category = "default"
)

var categoryRules = []struct {
	keywords []string
	category Category
}{
	{keywords: []string{"design"}, category: CategoryDesign},
	{keywords: []string{"engineer"}, category: CategoryEngineering},
	{keywords: []string{"scientist", "science"}, category: CategoryScience},
	{keywords: []string{"product"}, category: CategoryProduct},
}

var categoryColors = map[Category]string{
	CategoryDesign:      "#3b82f6",
	CategoryEngineering: "#ec4899",
	CategoryScience:     "#10b981",
	CategoryProduct:     "#f59e0b",
	CategoryDefault:     "#2563eb",
}

// Classify picks the marker category for a title. Rules are checked in order
// and the first match wins, so "Product Designer" is a design marker.
func Classify(title string) Category {
	t := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}

// Color returns the marker color of a category
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryDefault]
}

// Popup is the summary shown when a marker is opened
type Popup struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
	Address    string `json:"address"`
	ProfileURL string `json:"profileUrl"`
}

// Marker places one profile on the map
type Marker struct {
	ProfileID int64              `json:"profileId"`
	Position  models.Coordinates `json:"position"`
	Located   bool               `json:"located"`
	Category  Category           `json:"category"`
	Color     string             `json:"color"`
	Popup     Popup              `json:"popup"`
}

// ProfileURL is the details page link of a profile
func ProfileURL(id int64) string {
	return fmt.Sprintf("/profile/%d", id)
}

// Markers builds one marker per profile. Profiles without coordinates are
// placed at DefaultCenter with Located=false.
func Markers(profiles []*models.Profile) []Marker {
	markers := make([]Marker, 0, len(profiles))
	for _, p := range profiles {
		category := Classify(p.Title)
		m := Marker{
			ProfileID: p.ID,
			Position:  DefaultCenter,
			Category:  category,
			Color:     category.Color(),
			Popup: Popup{
				Name:       p.Name,
				Title:      p.Title,
				ImageURL:   p.ImageURL,
				Address:    FormatAddress(p),
				ProfileURL: ProfileURL(p.ID),
			},
		}
		if p.Location != nil {
			m.Position = *p.Location
			m.Located = true
		}
		markers = append(markers, m)
	}
	return markers
}

// FormatAddress joins the non-empty address parts as "street, city, state zip"
func FormatAddress(p *models.Profile) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{
		strings.TrimSpace(p.Address),
		strings.TrimSpace(p.City),
		strings.TrimSpace(strings.TrimSpace(p.State) + " " + strings.TrimSpace(p.ZipCode)),
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
