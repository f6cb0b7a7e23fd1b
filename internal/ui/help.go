package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title string
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(title string) *HelpRenderer {
	return &HelpRenderer{title: title}
}

// RenderHelpContent renders the help screen, scrolled to fit height
func (r *HelpRenderer) RenderHelpContent(height int, scrollOffset int) string {
	lines := strings.Split(r.RenderHelpContentPlain(), "\n")
	totalLines := len(lines)

	// Calculate visible window (account for border and padding)
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	endLine := scrollOffset + visibleHeight
	lines = lines[scrollOffset:endLine]

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		lines[0] = dim.Render("↑ (more above)")
	}
	if endLine < totalLines {
		lines[len(lines)-1] = dim.Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}

// RenderHelpContentPlain generates the full help text, also used for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(r.title + " Help"))
	help.WriteString("\n")

	sections := helpSections()
	for i, section := range sections {
		help.WriteString(sectionStyle.Render(section.Title))
		help.WriteString("\n")
		for _, b := range section.Bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), descStyle.Render(h.Desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
