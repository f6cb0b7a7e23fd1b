package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Heading       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	HelpBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Category      lipgloss.Style
	Duration      lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	FieldError    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	Card          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Category:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		Duration:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		FieldError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
	}
}

// CategoryColor returns the accent color for a course category
func CategoryColor(category string) string {
	switch category {
	case "Frontend":
		return "33" // blue
	case "Backend":
		return "78" // green
	case "DevOps", "Cloud":
		return "214" // yellow
	case "Data", "Data Science":
		return "171" // magenta
	case "Design":
		return "205" // pink
	default:
		return "252"
	}
}
