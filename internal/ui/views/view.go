package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"coursecat/internal/catalog"
	"coursecat/internal/domain"
	"coursecat/internal/ui/state"
)

// FormView is the render-ready create-course form
type FormView struct {
	Labels    []string
	Inputs    []string   // rendered text inputs, one per label
	Errors    [][]string // localized messages, one slice per label
	Focus     int
	ErrorText string
	Loading   bool
	Success   bool
}

// DetailsView is the render-ready single-course screen
type DetailsView struct {
	Course    *domain.Course
	Loading   bool
	ErrorText string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	AppTitle       string
	PageTitle      string
	Screen         state.Screen
	Catalog        catalog.Snapshot
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Form           FormView
	Details        DetailsView
	Recent         []domain.Course
	StatusMessage  string
	Spinner        string
	InputMode      bool
	InputPrompt    string
	TextInput      string
	ShowHelp       bool
	HelpContent    string
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *ListRenderer
	formRender  *FormRenderer
	detailsRend *DetailsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewListRenderer(styles),
		formRender:  NewFormRenderer(styles),
		detailsRend: NewDetailsRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.ShowHelp {
		return r.styles.Main.Render(r.styles.HelpBox.Render(vs.HelpContent))
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(vs))
	content.WriteString("\n")

	if vs.InputMode {
		content.WriteString(r.styles.Search.Render(vs.InputPrompt))
		content.WriteString(vs.TextInput)
		content.WriteString("\n\n")
	}

	switch vs.Screen {
	case state.ScreenForm:
		content.WriteString(r.formRender.Render(vs.Form))
	case state.ScreenDetails:
		content.WriteString(r.detailsRend.Render(vs.Details, vs.Spinner))
	default:
		content.WriteString(r.listRender.Render(vs))
	}

	footer := r.renderFooter(vs)

	// Pad so the footer sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := vs.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitleLine(vs ViewState) string {
	logo := r.styles.Title.Render(vs.AppTitle)

	var right []string
	if vs.Screen == state.ScreenList && vs.Catalog.Query != "" {
		right = append(right, r.styles.Search.Render(fmt.Sprintf("[Search: %s]", vs.Catalog.Query)))
	}
	if vs.PageTitle != "" {
		right = append(right, r.styles.Dim.Render(vs.PageTitle))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

func (r *Renderer) renderFooter(vs ViewState) string {
	var lines []string
	if vs.StatusMessage != "" {
		lines = append(lines, r.styles.StatusSuccess.Render(vs.StatusMessage))
	}
	if vs.Keys != nil {
		lines = append(lines, vs.HelpModel.View(vs.Keys))
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}
