package service

import (
	"strings"

	"github.com/Raymond9734/profile-directory/internal/directory"
	"github.com/Raymond9734/profile-directory/internal/models"
)

// DirectoryQuery represents one directory page request
type DirectoryQuery struct {
	Search   string `json:"search"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

// Criteria returns the filter part of the query
func (q *DirectoryQuery) Criteria() directory.Criteria {
	return directory.Criteria{
		Search:   strings.TrimSpace(q.Search),
		Location: strings.TrimSpace(q.Location),
	}
}

// Normalize applies defaults: page 1 and the "all" location
func (q *DirectoryQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if strings.TrimSpace(q.Location) == "" {
		q.Location = directory.AllLocations
	}
}

// DirectoryResult is one rendered directory page plus the location choices
type DirectoryResult struct {
	directory.View
	Query     DirectoryQuery `json:"query"`
	Locations []string       `json:"locations"`
}

// ProfileListResult represents the full profile list
type ProfileListResult struct {
	Data  []*models.Profile `json:"data"`
	Total int               `json:"total"`
}
