package directory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/repository"
)

func names(profiles []*models.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Name)
	}
	return out
}

func TestFilter_Search(t *testing.T) {
	profiles := repository.SeedProfiles()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "empty search passes everything",
			search: "",
			want:   []string{"Atharva Kadam", "Mayur Girase", "Kiran Fugat", "Rohit Diobale"},
		},
		{
			name:   "design matches role and description",
			search: "design",
			want:   []string{"Mayur Girase", "Kiran Fugat"},
		},
		{
			name:   "case-insensitive",
			search: "DESIGN",
			want:   []string{"Mayur Girase", "Kiran Fugat"},
		},
		{
			name:   "matches name",
			search: "fugat",
			want:   []string{"Kiran Fugat"},
		},
		{
			name:   "matches role only",
			search: "engineering lead",
			want:   []string{"Atharva Kadam"},
		},
		{
			name:   "title is not searched",
			search: "Full Stack",
			want:   []string{},
		},
		{
			name:   "no match",
			search: "astronaut",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(profiles, Criteria{Search: tt.search}))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_SearchResultsContainTerm(t *testing.T) {
	profiles := repository.SeedProfiles()

	for _, term := range []string{"a", "lead", "cloud", "mobile", "ux", "er"} {
		for _, p := range Filter(profiles, Criteria{Search: term}) {
			haystack := strings.ToLower(p.Name + "\x00" + p.Description + "\x00" + p.Role)
			if !strings.Contains(haystack, strings.ToLower(term)) {
				t.Errorf("profile %q returned for %q but does not contain it", p.Name, term)
			}
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	profiles := repository.SeedProfiles()
	// reverse the input; the output must follow the input order
	for i, j := 0, len(profiles)-1; i < j; i, j = i+1, j-1 {
		profiles[i], profiles[j] = profiles[j], profiles[i]
	}

	got := names(Filter(profiles, Criteria{Search: "design"}))
	want := []string{"Kiran Fugat", "Mayur Girase"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Location(t *testing.T) {
	profiles := repository.SeedProfiles()

	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{
			name:     "empty location passes everything",
			location: "",
			want:     names(profiles),
		},
		{
			name:     "all sentinel passes everything",
			location: AllLocations,
			want:     names(profiles),
		},
		{
			name:     "exact city, state",
			location: "Mumbai, Maharastra",
			want:     []string{"Kiran Fugat"},
		},
		{
			name:     "lower-case city in data still matches",
			location: "Pune, Maharastra",
			want:     []string{"Atharva Kadam"},
		},
		{
			name:     "state substring matches all",
			location: "maharastra",
			want:     names(profiles),
		},
		{
			name:     "unknown city",
			location: "Delhi, Delhi",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(profiles, Criteria{Location: tt.location}))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_SearchAndLocationCombine(t *testing.T) {
	profiles := repository.SeedProfiles()

	got := names(Filter(profiles, Criteria{Search: "design", Location: "Nashik, Maharastra"}))
	if diff := cmp.Diff([]string{"Mayur Girase"}, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationOptions(t *testing.T) {
	profiles := repository.SeedProfiles()
	profiles = append(profiles, &models.Profile{ID: 5, City: "Mumbai", State: "Maharastra"})

	got := LocationOptions(profiles)
	want := []string{
		"Mumbai, Maharastra",
		"Nanded, Maharastra",
		"Nashik, Maharastra",
		"pune, Maharastra",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LocationOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestBadgeVariant(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Product Designer", BadgeDesigner},
		{"Senior Full Stack Developer", BadgeDeveloper},
		{"Marketing Manager", BadgeMarketing},
		{"Product Owner", BadgeProduct},
		{"Data Scientist", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := BadgeVariant(tt.title); got != tt.want {
			t.Errorf("BadgeVariant(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
