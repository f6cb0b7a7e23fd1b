package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coursecat/internal/details"
	"coursecat/internal/domain"
)

// DetailsRenderer handles rendering of a single course
type DetailsRenderer struct {
	styles *Styles
}

// NewDetailsRenderer creates a new details renderer
func NewDetailsRenderer(styles *Styles) *DetailsRenderer {
	return &DetailsRenderer{styles: styles}
}

// Render renders the details body
func (r *DetailsRenderer) Render(view DetailsView, spinner string) string {
	if view.Course == nil {
		if view.ErrorText != "" {
			return r.styles.StatusError.Render(view.ErrorText)
		}
		return r.styles.StatusLoading.Render(strings.TrimSpace(spinner + " Loading course..."))
	}

	course := *view.Course
	body := []string{
		r.styles.Heading.Render(course.Title),
		"",
		fmt.Sprintf("%s %s", r.styles.Label.Render("Category:"),
			lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(course.Category))).Render(course.Category)),
		fmt.Sprintf("%s %s", r.styles.Label.Render("Duration:"), r.styles.Duration.Render(fmt.Sprintf("%dh", course.DurationHours))),
		"",
		r.styles.Dim.Render(details.Description(course)),
	}
	out := r.styles.Card.Render(strings.Join(body, "\n"))

	if view.Loading {
		out += "\n" + r.styles.StatusLoading.Render(strings.TrimSpace(spinner+" refreshing"))
	}
	return out
}

// PlainDetails renders a course as uncolored text for the pager and CLI
func PlainDetails(course domain.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", course.Title)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", len([]rune(course.Title))))
	fmt.Fprintf(&b, "ID:       %d\n", course.ID)
	fmt.Fprintf(&b, "Category: %s\n", course.Category)
	fmt.Fprintf(&b, "Duration: %dh\n\n", course.DurationHours)
	fmt.Fprintf(&b, "%s\n", details.Description(course))
	return b.String()
}
