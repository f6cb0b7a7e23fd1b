package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"coursecat/internal/catalog"
	"coursecat/internal/config"
	"coursecat/internal/details"
	"coursecat/internal/domain"
	"coursecat/internal/eventbus"
	"coursecat/internal/gateway"
	"coursecat/internal/presenter"
	"coursecat/internal/submission"
	"coursecat/internal/ui/input"
	inputtypes "coursecat/internal/ui/input/types"
	"coursecat/internal/ui/state"
	"coursecat/internal/ui/views"
)

const statusTTL = 3 * time.Second

// Deps are the collaborators the UI drives
type Deps struct {
	Gateway gateway.Gateway
	Bus     eventbus.Publisher
	Config  *config.Config
	Log     zerolog.Logger
	Head    *presenter.Head

	// Extra catalog options, applied last (tests swap the scheduler here)
	CatalogOptions []catalog.Option
}

// Model represents the UI state
type Model struct {
	gw     gateway.Gateway
	bus    eventbus.Publisher
	config *config.Config
	log    zerolog.Logger
	root   zerolog.Logger // un-scoped logger handed to controllers
	head   *presenter.Head
	site   presenter.Site
	state  *state.AppState

	help        help.Model
	spinner     spinner.Model
	inPagerMode bool
	windowTitle string

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps
	messages     *submission.Messages
	catalogOpts  []catalog.Option

	// Screen controllers; only the one for the current screen is live
	catalog    *catalog.Controller
	form       *submission.Controller
	formInputs []textinput.Model
	details    *details.Controller

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(deps Deps) *Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	site := presenter.Site{
		Name:        cfg.Site.Name,
		URL:         cfg.Site.URL,
		Description: cfg.Site.Description,
		Image:       cfg.Site.Image,
	}
	head := deps.Head
	if head == nil {
		head = presenter.NewHead(site)
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		gw:           deps.Gateway,
		bus:          deps.Bus,
		config:       cfg,
		log:          deps.Log.With().Str("component", "ui").Logger(),
		root:         deps.Log,
		head:         head,
		site:         head.Site(),
		state:        state.NewAppState(),
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(head.Site().Name),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		messages:     submission.NewMessages(cfg.UI.Locale),
	}

	m.catalogOpts = append([]catalog.Option{
		catalog.WithNotifier(head),
		catalog.WithPublisher(deps.Bus),
		catalog.WithLogger(deps.Log),
		catalog.WithDebounce(cfg.Search.Debounce.Std()),
		catalog.WithImmediateSearch(cfg.Search.Immediate),
		catalog.WithTimeout(cfg.API.Timeout.Std()),
		catalog.WithSite(m.site),
	}, deps.CatalogOptions...)
	m.catalog = catalog.New(m.gw, m.catalogOpts...)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the list screen
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.catalog.Init(), m.spinner.Tick, m.syncWindowTitle())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	return m, tea.Batch(cmd, m.syncWindowTitle())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The help screen swallows keys until closed
	if m.state.ShowHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.state.ShowHelp = false
		case "o":
			m.state.ShowHelp = false
			return m.pagerCmd("help", m.helpRenderer.RenderHelpContentPlain())
		case "ctrl+c":
			return tea.Quit
		}
		return nil
	}

	ctx := &input.ModelContext{
		State:   m.state,
		Catalog: m.catalog,
		Form:    m.form,
	}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug().Str("action", action.Type()).Msg("processAction")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		total := len(m.catalog.Snapshot().Displayed)
		page := max(m.state.ViewportHeight-2, 1) // Leave some overlap
		switch a.Direction {
		case "up":
			m.state.Move(-1, total)
		case "down":
			m.state.Move(1, total)
		case "pageup":
			m.state.Move(-page, total)
		case "pagedown":
			m.state.Move(page, total)
		case "home":
			m.state.SetSelectedIndex(0, total)
		case "end":
			m.state.SetSelectedIndex(total-1, total)
		}

	case inputtypes.UpdateTextAction:
		m.state.ResetCursor()
		return m.catalog.SetQuery(a.Text)

	case inputtypes.SubmitTextAction:
		// The query was applied keystroke by keystroke
		return nil

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		if m.catalog.Query() == "" {
			return nil
		}
		m.state.ResetCursor()
		return m.catalog.SetQuery("")

	case inputtypes.LoadMoreAction:
		return m.catalog.LoadMore()

	case inputtypes.ReloadAction:
		if m.state.Screen == state.ScreenDetails && m.details != nil {
			return m.details.Reload()
		}
		return m.catalog.Reload()

	case inputtypes.OpenDetailsAction:
		return m.showDetails(a.ID)

	case inputtypes.NewCourseAction:
		return m.showForm()

	case inputtypes.FocusFieldAction:
		return m.focusField(a.Delta)

	case inputtypes.FormKeyAction:
		return m.typeIntoForm(a.Msg)

	case inputtypes.SubmitFormAction:
		if m.form == nil {
			return nil
		}
		return m.form.Submit()

	case inputtypes.ResetFormAction:
		if m.form == nil {
			return nil
		}
		m.form.Reset()
		m.syncFormInputs()

	case inputtypes.BackAction:
		return m.showList()

	case inputtypes.OpenPagerAction:
		if m.details == nil {
			return nil
		}
		if course, ok := m.details.Course(); ok {
			return m.pagerCmd("details", views.PlainDetails(course))
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// handleNonKeyboardMsg routes async results to the live controllers
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case catalog.FetchedMsg:
		cmd := m.catalog.Update(msg)
		m.state.Clamp(len(m.catalog.Snapshot().Displayed))
		return cmd

	case details.LoadedMsg:
		if m.details != nil {
			return m.details.Update(msg)
		}
		return nil

	case submission.NavigateMsg:
		cmd := m.showList()
		m.state.StatusMessage = "Saved " + msg.Created.Title
		return tea.Batch(cmd, clearStatusAfter(statusTTL))

	case EventMsg:
		return m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if m.inPagerMode {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("pager", msg.what).Msg("pager failed")
			m.state.StatusMessage = "Pager unavailable"
			return clearStatusAfter(statusTTL)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m.spinner.Tick

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return nil
	}

	if m.catalog.Owns(msg) {
		cmd := m.catalog.Update(msg)
		m.state.Clamp(len(m.catalog.Snapshot().Displayed))
		return cmd
	}
	if m.form != nil {
		if cmd := m.form.Update(msg); cmd != nil {
			return cmd
		}
	}
	return m.inputHandler.Update(msg)
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CourseCreatedEvent:
		m.state.RecordCreated(e.Course)
	case eventbus.SubmissionFailedEvent:
		m.log.Info().Str("title", e.Draft.Title).Msg("submission failed")
	}
	return nil
}

// Screens

func (m *Model) showList() tea.Cmd {
	m.form = nil
	m.formInputs = nil
	m.details = nil
	m.state.Screen = state.ScreenList
	m.state.ResetCursor()
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")

	// A fresh controller per visit; results still owed to the old one are dropped
	m.catalog = catalog.New(m.gw, m.catalogOpts...)
	return m.catalog.Init()
}

func (m *Model) showDetails(id int64) tea.Cmd {
	var carried *domain.Course
	for _, c := range m.catalog.Snapshot().Displayed {
		if c.ID == id {
			course := c
			carried = &course
			break
		}
	}

	m.details = details.New(m.gw, strconv.FormatInt(id, 10), carried,
		details.WithNotifier(m.head),
		details.WithLogger(m.root),
		details.WithTimeout(m.config.API.Timeout.Std()),
		details.WithSite(m.site),
	)
	m.state.Screen = state.ScreenDetails
	m.inputHandler.ChangeMode(inputtypes.ModeDetails, "")
	return m.details.Init()
}

func (m *Model) showForm() tea.Cmd {
	m.form = submission.New(m.gw,
		submission.WithNotifier(m.head),
		submission.WithPublisher(m.bus),
		submission.WithLogger(m.root),
		submission.WithTimeout(m.config.API.Timeout.Std()),
		submission.WithSite(m.site),
	)
	m.form.Mount()

	m.formInputs = make([]textinput.Model, len(submission.AllFields))
	for i, field := range submission.AllFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = m.messages.Label(field)
		ti.CharLimit = 120
		if field == submission.FieldDurationHours {
			ti.CharLimit = 6
		}
		m.formInputs[i] = ti
	}

	m.state.Screen = state.ScreenForm
	m.state.FocusedField = 0
	m.inputHandler.ChangeMode(inputtypes.ModeForm, "")
	return m.formInputs[0].Focus()
}

func (m *Model) focusField(delta int) tea.Cmd {
	if len(m.formInputs) == 0 {
		return nil
	}
	m.formInputs[m.state.FocusedField].Blur()
	m.state.FocusField(delta, len(m.formInputs))
	return m.formInputs[m.state.FocusedField].Focus()
}

func (m *Model) typeIntoForm(msg tea.KeyMsg) tea.Cmd {
	if m.form == nil || len(m.formInputs) == 0 {
		return nil
	}
	i := m.state.FocusedField
	var cmd tea.Cmd
	m.formInputs[i], cmd = m.formInputs[i].Update(msg)
	m.form.SetField(submission.AllFields[i], m.formInputs[i].Value())
	return cmd
}

// syncFormInputs copies controller values back into the inputs after a reset
func (m *Model) syncFormInputs() {
	for i, field := range submission.AllFields {
		if i < len(m.formInputs) {
			m.formInputs[i].SetValue(m.form.Field(field))
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		AppTitle:       m.site.Name,
		PageTitle:      m.head.Title(),
		Screen:         m.state.Screen,
		Catalog:        m.catalog.Snapshot(),
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Recent:         m.state.Created,
		StatusMessage:  m.state.StatusMessage,
		Spinner:        m.spinner.View(),
		ShowHelp:       m.state.ShowHelp,
		HelpModel:      m.help,
		Keys:           keysFor(m.state.Screen),
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputMode = true
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}
	if vs.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent(m.state.Height, 0)
	}

	if m.form != nil {
		fs := m.form.State()
		form := views.FormView{
			Focus:     m.state.FocusedField,
			ErrorText: fs.ErrorText,
			Loading:   fs.Loading,
			Success:   fs.Success,
		}
		for i, field := range submission.AllFields {
			form.Labels = append(form.Labels, m.messages.Label(field))
			form.Inputs = append(form.Inputs, m.formInputs[i].View())
			var msgs []string
			if m.form.Invalid(field) {
				for _, kind := range fs.FieldErrors[field] {
					msgs = append(msgs, m.messages.Text(field, kind))
				}
			}
			form.Errors = append(form.Errors, msgs)
		}
		vs.Form = form
	}

	if m.details != nil {
		dv := views.DetailsView{
			Loading:   m.details.Loading(),
			ErrorText: m.details.ErrorText(),
		}
		if course, ok := m.details.Course(); ok {
			dv.Course = &course
		}
		vs.Details = dv
	}

	return vs
}

// updateViewportHeight sizes the list to the terminal
func (m *Model) updateViewportHeight() {
	// title (2) + summary (2) + footer (2) + padding (2) + scroll indicators (2)
	h := m.state.Height - 10
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.state.EnsureVisible()
}

// syncWindowTitle mirrors the document title into the terminal title
func (m *Model) syncWindowTitle() tea.Cmd {
	title := m.head.Title()
	if title == m.windowTitle {
		return nil
	}
	m.windowTitle = title
	return tea.SetWindowTitle(title)
}

// CurrentScreen reports the screen being shown
func (m *Model) CurrentScreen() state.Screen {
	return m.state.Screen
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
