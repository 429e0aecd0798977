package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Raymond9734/profile-directory/internal/controller"
	"github.com/Raymond9734/profile-directory/internal/directory"
	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/models"
	"github.com/Raymond9734/profile-directory/internal/notify"
)

var (
	colorBlue   = lipgloss.Color("#2563eb")
	colorGray   = lipgloss.Color("#6b7280")
	colorRed    = lipgloss.Color("#dc2626")
	colorGreen  = lipgloss.Color("#16a34a")
	colorBorder = lipgloss.Color("#d1d5db")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1).Width(60)
	skillStyle  = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var badgeColors = map[string]lipgloss.Color{
	directory.BadgeDesigner:  lipgloss.Color("#db2777"),
	directory.BadgeDeveloper: lipgloss.Color("#2563eb"),
	directory.BadgeMarketing: lipgloss.Color("#d97706"),
	directory.BadgeProduct:   lipgloss.Color("#059669"),
}

// badge renders a title with the color of its badge variant
func badge(title string) string {
	if title == "" {
		return ""
	}
	color, ok := badgeColors[directory.BadgeVariant(title)]
	if !ok {
		color = colorGray
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(color).Padding(0, 1).Render(title)
}

func renderCard(p *models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", nameStyle.Render(p.Name), mutedStyle.Render(fmt.Sprintf("#%d", p.ID)))
	if t := badge(p.Title); t != "" {
		b.WriteString(t + "\n")
	}
	if p.Description != "" {
		b.WriteString(p.Description + "\n")
	}
	b.WriteString(mutedStyle.Render(p.CityState()))
	if len(p.Skills) > 0 {
		b.WriteString("\n" + skillStyle.Render(strings.Join(p.Skills, " · ")))
	}
	return cardStyle.Render(b.String())
}

func printView(w io.Writer, v directory.View) {
	fmt.Fprintln(w, titleStyle.Render(v.Summary))
	for _, p := range v.Profiles {
		fmt.Fprintln(w, renderCard(p))
	}
	if v.Pagination.TotalPages > 1 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Page %d of %d", v.Pagination.Page, v.Pagination.TotalPages)))
	}
}

func printDetails(w io.Writer, v controller.DetailsView) {
	if !v.Found {
		fmt.Fprintln(w, errorStyle.Render("Profile Not Found"))
		fmt.Fprintln(w, v.Message)
		return
	}

	p := v.Profile
	fmt.Fprintln(w, nameStyle.Render(p.Name))
	if t := badge(p.Title); t != "" {
		fmt.Fprintln(w, t)
	}
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Contact"))
	printField(w, "Email", p.Email)
	printField(w, "Phone", p.Phone)
	printField(w, "Website", p.Website)
	printField(w, "LinkedIn", p.LinkedIn)
	printField(w, "Address", v.Address)

	if len(p.Skills) > 0 || len(p.Interests) > 0 {
		fmt.Fprintln(w)
		printField(w, "Skills", strings.Join(p.Skills, ", "))
		printField(w, "Interests", strings.Join(p.Interests, ", "))
	}
	printField(w, "Experience", p.Experience)
	printField(w, "Availability", p.Availability)

	if v.StaticMapURL != "" {
		fmt.Fprintln(w)
		printField(w, "Map", v.StaticMapURL)
	}
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render(label+":"), value)
}

func printMap(w io.Writer, m mapview.Model, selected *models.Profile) {
	fmt.Fprintln(w, titleStyle.Render("Map"))
	printField(w, "Tiles", m.Tiles.URL)
	printField(w, "Attribution", m.Tiles.Attribution)
	fmt.Fprintf(w, "%s %.4f, %.4f (zoom %d)\n",
		mutedStyle.Render("Center:"), m.Camera.Center.Lat, m.Camera.Center.Lng, m.Camera.Zoom)
	if selected != nil {
		printField(w, "Focused", selected.Name)
	}

	fmt.Fprintln(w)
	for _, mk := range m.Markers {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(mk.Color)).Render("●")
		where := fmt.Sprintf("%.4f, %.4f", mk.Position.Lat, mk.Position.Lng)
		if !mk.Located {
			where = "no location"
		}
		fmt.Fprintf(w, "%s %s %s %s\n", dot, nameStyle.Render(mk.Popup.Name),
			mutedStyle.Render(string(mk.Category)), mutedStyle.Render(where))
	}
}

func printNotification(w io.Writer, n notify.Notification) {
	if n.IsError() {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render("✗ "+n.Title), n.Description)
		return
	}
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("✓ "+n.Title), n.Description)
}

// terminalNotifier prints each notification as it is raised
func terminalNotifier(w io.Writer) notify.Notifier {
	return notify.NotifierFunc(func(n notify.Notification) {
		printNotification(w, n)
	})
}
