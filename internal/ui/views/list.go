package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coursecat/internal/catalog"
	"coursecat/internal/domain"
)

// ListRenderer handles rendering of the course catalog
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// Render renders the catalog screen body
func (r *ListRenderer) Render(vs ViewState) string {
	snap := vs.Catalog
	var lines []string

	if snap.ErrorText != "" {
		lines = append(lines, r.styles.StatusError.Render(snap.ErrorText+" (r to retry)"))
	}

	switch {
	case len(snap.Displayed) == 0 && (snap.Phase == catalog.Loading || snap.Phase == catalog.Idle):
		lines = append(lines, r.styles.StatusLoading.Render(strings.TrimSpace(vs.Spinner+" Loading courses...")))
	case len(snap.Displayed) == 0 && snap.Phase == catalog.Ready:
		if snap.Query != "" {
			lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("No courses found for %q.", snap.Query)))
		} else {
			lines = append(lines, r.styles.Dim.Render("No courses found. Press n to add one."))
		}
	case len(snap.Displayed) > 0:
		lines = append(lines, r.renderCourses(vs)...)
		lines = append(lines, r.renderSummary(vs))
	}

	if len(vs.Recent) > 0 {
		lines = append(lines, "", r.styles.Heading.Render("Added this session"))
		for _, c := range vs.Recent {
			lines = append(lines, "  "+r.styles.Dim.Render(fmt.Sprintf("#%d %s", c.ID, c.Title)))
		}
	}

	return strings.Join(lines, "\n")
}

// renderCourses renders the rows inside the viewport with scroll indicators
func (r *ListRenderer) renderCourses(vs ViewState) []string {
	courses := vs.Catalog.Displayed
	height := vs.ViewportHeight
	if height <= 0 {
		height = len(courses)
	}

	start := vs.ViewportOffset
	if start < 0 || start >= len(courses) {
		start = 0
	}
	end := start + height
	if end > len(courses) {
		end = len(courses)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.RenderCourse(courses[i], i == vs.SelectedIndex, vs.Catalog.Query))
	}
	if below := len(courses) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return lines
}

// RenderCourse renders one catalog row
func (r *ListRenderer) RenderCourse(course domain.Course, isSelected bool, query string) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}

	title := course.Title
	if query != "" && strings.Contains(strings.ToLower(title), strings.ToLower(query)) {
		title = r.highlightMatch(title, query, base.Foreground(lipgloss.Color("226")), base)
	} else {
		title = base.Render(title)
	}

	category := base.Foreground(lipgloss.Color(CategoryColor(course.Category))).Render(course.Category)
	duration := base.Foreground(lipgloss.Color("78")).Render(fmt.Sprintf("%dh", course.DurationHours))

	return strings.Join([]string{
		base.Render(cursor),
		title,
		base.Render("  "),
		category,
		base.Render("  "),
		duration,
	}, "")
}

// highlightMatch highlights the first case-insensitive occurrence of query in text
func (r *ListRenderer) highlightMatch(text, query string, matchStyle, normalStyle lipgloss.Style) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	end := idx + len(query)
	if idx < 0 || end > len(text) {
		return normalStyle.Render(text)
	}
	return normalStyle.Render(text[:idx]) + matchStyle.Render(text[idx:end]) + normalStyle.Render(text[end:])
}

func (r *ListRenderer) renderSummary(vs ViewState) string {
	snap := vs.Catalog
	summary := fmt.Sprintf("Showing %d of %d courses", snap.ResultCount, snap.TotalCount)
	switch {
	case snap.LoadingMore:
		summary += " • loading more..."
	case snap.HasMore:
		summary += " • space for more"
	}
	if snap.Phase == catalog.Loading {
		summary += " • " + strings.TrimSpace(vs.Spinner+" refreshing")
	}
	return r.styles.Status.Render(summary)
}
