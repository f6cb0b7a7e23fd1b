package views

import (
	"strings"
)

// FormRenderer handles rendering of the create-course form
type FormRenderer struct {
	styles *Styles
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{styles: styles}
}

// Render renders the form body
func (r *FormRenderer) Render(form FormView) string {
	var lines []string

	for i, label := range form.Labels {
		labelStyle := r.styles.Label
		if i == form.Focus {
			labelStyle = r.styles.FocusedLabel
		}
		lines = append(lines, labelStyle.Render(label))

		input := ""
		if i < len(form.Inputs) {
			input = form.Inputs[i]
		}
		lines = append(lines, "  "+input)

		if i < len(form.Errors) {
			for _, msg := range form.Errors[i] {
				lines = append(lines, "  "+r.styles.FieldError.Render(msg))
			}
		}
		lines = append(lines, "")
	}

	switch {
	case form.Loading:
		lines = append(lines, r.styles.StatusLoading.Render("Saving..."))
	case form.Success:
		lines = append(lines, r.styles.StatusSuccess.Render("Course saved."))
	case form.ErrorText != "":
		lines = append(lines, r.styles.StatusError.Render(form.ErrorText))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
