// Package directory holds the in-memory search, location filter and
// pagination applied to the profile collection before it is rendered.
package directory

import (
	"sort"
	"strings"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// AllLocations is the location filter value that disables the location predicate
const AllLocations = "all"

// Criteria holds the transient search and location predicates
type Criteria struct {
	Search   string
	Location string
}

// Matches reports whether a profile satisfies both predicates.
// Search is a case-insensitive substring of name, description or role;
// Location is a case-insensitive substring of "city, state".
func (c Criteria) Matches(p *models.Profile) bool {
	return c.matchesSearch(p) && c.matchesLocation(p)
}

func (c Criteria) matchesSearch(p *models.Profile) bool {
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	for _, field := range []string{p.Name, p.Description, p.Role} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesLocation(p *models.Profile) bool {
	if c.Location == "" || c.Location == AllLocations {
		return true
	}
	return strings.Contains(strings.ToLower(p.CityState()), strings.ToLower(c.Location))
}

// Filter returns the profiles matching c, keeping their original order
func Filter(profiles []*models.Profile, c Criteria) []*models.Profile {
	filtered := make([]*models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if c.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// LocationOptions returns the distinct "city, state" labels, sorted
func LocationOptions(profiles []*models.Profile) []string {
	seen := make(map[string]struct{}, len(profiles))
	options := make([]string, 0, len(profiles))
	for _, p := range profiles {
		label := p.CityState()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		options = append(options, label)
	}
	sort.Strings(options)
	return options
}

// Badge variants shown next to a profile title
const (
	BadgeDesigner  = "designer"
	BadgeDeveloper = "developer"
	BadgeMarketing = "marketing"
	BadgeProduct   = "product"
)

// BadgeVariant picks the card badge for a title; the first keyword that matches wins.
// An empty string means the neutral badge.
func BadgeVariant(title string) string {
	t := strings.ToLower(title)
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "design"):
		return BadgeDesigner
	case strings.Contains(t, "develop"):
		return BadgeDeveloper
	case strings.Contains(t, "market"):
		return BadgeMarketing
	case strings.Contains(t, "product"):
		return BadgeProduct
	default:
		return ""
	}
}
