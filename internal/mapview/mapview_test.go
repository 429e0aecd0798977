package mapview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/repository"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title     string
		want      Category
		wantColor string
	}{
		{title: "Product Designer", want: CategoryDesign, wantColor: "#3b82f6"},
		{title: "Software Engineer", want: CategoryEngineering, wantColor: "#ec4899"},
		{title: "Data Scientist", want: CategoryScience, wantColor: "#10b981"},
		{title: "Product Manager", want: CategoryProduct, wantColor: "#f59e0b"},
		{title: "Design Engineer", want: CategoryDesign, wantColor: "#3b82f6"},
		{title: "Mobile Developer", want: CategoryDefault, wantColor: "#2563eb"},
		{title: "", want: CategoryDefault, wantColor: "#2563eb"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Classify(tt.title)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if got.Color() != tt.wantColor {
				t.Errorf("color = %q, want %q", got.Color(), tt.wantColor)
			}
		})
	}
}

func TestMarkers(t *testing.T) {
	profiles := repository.SeedProfiles()
	profiles = append(profiles, &models.Profile{ID: 9, Name: "Nowhere", Title: "Analyst"})

	markers := Markers(profiles)
	if len(markers) != len(profiles) {
		t.Fatalf("expected %d markers, got %d", len(profiles), len(markers))
	}

	nashik := markers[1]
	if nashik.Position != (models.Coordinates{Lat: 19.9975, Lng: 73.7898}) || !nashik.Located {
		t.Errorf("unexpected Nashik marker position %+v", nashik.Position)
	}
	if nashik.Category != CategoryDesign {
		t.Errorf("expected design marker, got %q", nashik.Category)
	}
	if nashik.Popup.ProfileURL != "/profile/2" {
		t.Errorf("unexpected profile url %q", nashik.Popup.ProfileURL)
	}

	nowhere := markers[4]
	if nowhere.Position != DefaultCenter || nowhere.Located {
		t.Errorf("expected default center for a profile without coordinates, got %+v", nowhere)
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		want    string
	}{
		{
			name:    "all parts",
			profile: models.Profile{Address: "12 MG Road", City: "Pune", State: "Maharastra", ZipCode: "411001"},
			want:    "12 MG Road, Pune, Maharastra 411001",
		},
		{
			name:    "no street or zip",
			profile: models.Profile{City: "Nashik", State: "Maharastra"},
			want:    "Nashik, Maharastra",
		},
		{
			name:    "empty",
			profile: models.Profile{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAddress(&tt.profile); got != tt.want {
				t.Errorf("FormatAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestView_FocusAndReset(t *testing.T) {
	camera := NewCamera()
	view := NewView(camera)

	profile := repository.SeedProfiles()[2]
	if !view.Focus(profile) {
		t.Fatal("expected Focus to succeed")
	}

	want := CameraState{Center: *profile.Location, Zoom: FocusZoom}
	if diff := cmp.Diff(want, view.Camera()); diff != "" {
		t.Errorf("camera mismatch after focus (-want +got):\n%s", diff)
	}
	if camera.LastDuration() != FlyDuration {
		t.Errorf("expected flight of %v, got %v", FlyDuration, camera.LastDuration())
	}

	if view.Focus(&models.Profile{ID: 9}) {
		t.Error("expected Focus without coordinates to report false")
	}

	view.Reset()
	want = CameraState{Center: DefaultCenter, Zoom: DefaultZoom}
	if diff := cmp.Diff(want, view.Camera()); diff != "" {
		t.Errorf("camera mismatch after reset (-want +got):\n%s", diff)
	}
}

func TestView_ZoomClamped(t *testing.T) {
	view := NewView(NewCamera())

	for i := 0; i < 30; i++ {
		view.ZoomIn()
	}
	if got := view.Camera().Zoom; got != MaxZoom {
		t.Errorf("expected zoom %d, got %d", MaxZoom, got)
	}

	for i := 0; i < 30; i++ {
		view.ZoomOut()
	}
	if got := view.Camera().Zoom; got != MinZoom {
		t.Errorf("expected zoom %d, got %d", MinZoom, got)
	}
}

func TestView_NilWidget(t *testing.T) {
	view := NewView(nil)

	view.ZoomIn()
	view.ZoomOut()
	view.Reset()
	if view.Focus(repository.SeedProfiles()[0]) {
		t.Error("expected Focus without a widget to report false")
	}
	if got := view.Camera(); got.Zoom != DefaultZoom || got.Center != DefaultCenter {
		t.Errorf("unexpected camera %+v", got)
	}
}

func TestTiles(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		token   string
		wantURL string
	}{
		{name: "default osm", wantURL: OSMTileURL},
		{name: "mapbox token", token: "pk.abc", wantURL: mapboxTileURL + "pk.abc"},
		{name: "explicit url with token", url: "https://tiles/{z}/{x}/{y}?key={token}", token: "k", wantURL: "https://tiles/{z}/{x}/{y}?key=k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tiles(tt.url, tt.token); got.URL != tt.wantURL {
				t.Errorf("Tiles().URL = %q, want %q", got.URL, tt.wantURL)
			}
		})
	}
}

func TestStaticMapURL(t *testing.T) {
	got := StaticMapURL(models.Coordinates{Lat: 19.9975, Lng: 73.7898}, StaticZoom, StaticWidth, StaticHeight)
	want := "https://maps.geoapify.com/v1/staticmap?style=osm-bright&width=400&height=300&center=lonlat:73.7898,19.9975&zoom=14"
	if got != want {
		t.Errorf("StaticMapURL() = %q, want %q", got, want)
	}
}
