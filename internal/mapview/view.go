package mapview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Raymond9734/profile-directory/internal/models"
)

// Camera defaults
const (
	DefaultZoom   = 7
	FocusZoom     = 12
	MinZoom       = 1
	MaxZoom       = 18
	FlyDuration   = 1500 * time.Millisecond
	StaticZoom    = 14
	StaticWidth   = 400
	StaticHeight  = 300
	staticMapBase = "https://maps.geoapify.com/v1/staticmap"
)

// DefaultCenter is the initial map center (Maharashtra, India)
var DefaultCenter = models.Coordinates{Lat: 19.7515, Lng: 75.7139}

// CameraState is where a widget is looking
type CameraState struct {
	Center models.Coordinates `json:"center"`
	Zoom   int                `json:"zoom"`
}

// Widget is the map rendering component driven by View
type Widget interface {
	FlyTo(center models.Coordinates, zoom int, duration time.Duration)
	ZoomIn()
	ZoomOut()
	State() CameraState
}

// Camera is a headless Widget. It tracks the camera the way a rendered map
// would, clamping zoom to [MinZoom, MaxZoom].
type Camera struct {
	state        CameraState
	lastDuration time.Duration
}

// NewCamera creates a camera at the default center and zoom
func NewCamera() *Camera {
	return &Camera{state: CameraState{Center: DefaultCenter, Zoom: DefaultZoom}}
}

func (c *Camera) FlyTo(center models.Coordinates, zoom int, duration time.Duration) {
	c.state = CameraState{Center: center, Zoom: clampZoom(zoom)}
	c.lastDuration = duration
}

func (c *Camera) ZoomIn() {
	c.state.Zoom = clampZoom(c.state.Zoom + 1)
}

func (c *Camera) ZoomOut() {
	c.state.Zoom = clampZoom(c.state.Zoom - 1)
}

func (c *Camera) State() CameraState {
	return c.state
}

// LastDuration returns the duration of the most recent flight
func (c *Camera) LastDuration() time.Duration {
	return c.lastDuration
}

func clampZoom(z int) int {
	return min(max(z, MinZoom), MaxZoom)
}

// View controls the map camera. A View without a widget ignores every call.
type View struct {
	widget Widget
}

// NewView creates a view driving w
func NewView(w Widget) *View {
	return &View{widget: w}
}

// Focus flies to the profile's coordinates. Profiles without coordinates
// leave the camera where it is and report false.
func (v *View) Focus(p *models.Profile) bool {
	if v.widget == nil || p == nil || p.Location == nil {
		return false
	}
	v.widget.FlyTo(*p.Location, FocusZoom, FlyDuration)
	return true
}

// Reset flies back to the default center and zoom
func (v *View) Reset() {
	if v.widget == nil {
		return
	}
	v.widget.FlyTo(DefaultCenter, DefaultZoom, FlyDuration)
}

func (v *View) ZoomIn() {
	if v.widget != nil {
		v.widget.ZoomIn()
	}
}

func (v *View) ZoomOut() {
	if v.widget != nil {
		v.widget.ZoomOut()
	}
}

// Camera returns the widget's camera, or the default camera without a widget
func (v *View) Camera() CameraState {
	if v.widget == nil {
		return CameraState{Center: DefaultCenter, Zoom: DefaultZoom}
	}
	return v.widget.State()
}

// TileLayer is the raster tile source shown under the markers
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// Tile sources
const (
	OSMTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	OSMAttribution     = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	mapboxTileURL      = "https://api.mapbox.com/styles/v1/mapbox/streets-v12/tiles/{z}/{x}/{y}?access_token="
	mapboxAttribution  = `&copy; <a href="https://www.mapbox.com/about/maps/">Mapbox</a> ` + OSMAttribution
	tileTokenPlacehold = "{token}"
)

// Tiles picks the tile layer: an explicit url wins, then Mapbox when a token
// is configured, then OpenStreetMap. A "{token}" placeholder in url is
// replaced by the token.
func Tiles(url, token string) TileLayer {
	switch {
	case url != "":
		return TileLayer{URL: strings.ReplaceAll(url, tileTokenPlacehold, token), Attribution: OSMAttribution}
	case token != "":
		return TileLayer{URL: mapboxTileURL + token, Attribution: mapboxAttribution}
	default:
		return TileLayer{URL: OSMTileURL, Attribution: OSMAttribution}
	}
}

// StaticMapURL returns a static preview image of the given point
func StaticMapURL(c models.Coordinates, zoom, width, height int) string {
	return fmt.Sprintf("%s?style=osm-bright&width=%d&height=%d&center=lonlat:%s,%s&zoom=%d",
		staticMapBase, width, height, formatCoord(c.Lng), formatCoord(c.Lat), zoom)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Model is everything a front end needs to draw the map
type Model struct {
	Tiles   TileLayer   `json:"tiles"`
	Camera  CameraState `json:"camera"`
	Markers []Marker    `json:"markers"`
}
