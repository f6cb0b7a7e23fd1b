package submission

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"coursecat/internal/domain"
	"coursecat/internal/eventbus"
	"coursecat/internal/gateway"
	"coursecat/internal/presenter"
)

const (
	SaveErrorText  = "Could not save course. Please try again."
	DefaultTimeout = 10 * time.Second
)

// Phase is the lifecycle of the create-course form
type Phase int

const (
	Editing Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Fields holds the raw form inputs
type Fields struct {
	Title         string
	Category      string
	DurationHours string
}

// Get returns the value of one input
func (f Fields) Get(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldCategory:
		return f.Category
	case FieldDurationHours:
		return f.DurationHours
	}
	return ""
}

func (f *Fields) set(field Field, value string) {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldCategory:
		f.Category = value
	case FieldDurationHours:
		f.DurationHours = value
	}
}

// State is the read-only view of the form handed to renderers
type State struct {
	Phase       Phase
	Fields      Fields
	FieldErrors map[Field][]ErrorKind
	ErrorText   string
	Loading     bool
	Success     bool
	Submitted   bool
}

// NavigateMsg asks the host to leave the form after a successful create
type NavigateMsg struct {
	Created domain.Course
}

type createdMsg struct {
	owner  uint64
	course domain.Course
	err    error
}

type settledMsg struct {
	owner  uint64
	course domain.Course
}

var controllerIDs atomic.Uint64

// Controller is the create-course form state machine. At most one create
// request is in flight at a time. Not safe for concurrent use.
type Controller struct {
	creator  gateway.Creator
	notifier presenter.Notifier
	bus      eventbus.Publisher
	log      zerolog.Logger
	timeout  time.Duration
	site     presenter.Site

	id        uint64
	fields    Fields
	errs      map[Field][]ErrorKind
	phase     Phase
	loading   bool
	success   bool
	submitted bool
	errText   string
}

// Option configures a Controller
type Option func(*Controller)

func WithNotifier(n presenter.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithPublisher(p eventbus.Publisher) Option {
	return func(c *Controller) { c.bus = p }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log.With().Str("component", "submission").Logger() }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithSite(site presenter.Site) Option {
	return func(c *Controller) { c.site = site }
}

// New creates an empty form in the Editing phase
func New(creator gateway.Creator, opts ...Option) *Controller {
	c := &Controller{
		creator:  creator,
		notifier: presenter.Discard{},
		log:      zerolog.Nop(),
		timeout:  DefaultTimeout,
		site:     presenter.DefaultSite,
		id:       controllerIDs.Add(1),
		phase:    Editing,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.errs = Validate(c.fields)
	return c
}

// Mount announces the form page
func (c *Controller) Mount() {
	c.notifier.SetTitle("New Course")
	c.notifier.SetMetaTags(presenter.MetaTags{
		Title:       "New Course | " + c.site.Name,
		Description: "Register a new course on the " + c.site.Name + " platform.",
		URL:         c.site.URL + "/courses/new",
	})
}

// SetField updates one input and revalidates. Editing after a finished
// submission returns the form to Editing.
func (c *Controller) SetField(field Field, value string) {
	c.fields.set(field, value)
	c.errs = Validate(c.fields)

	if c.phase == Failed || c.phase == Succeeded {
		c.phase = Editing
	}
}

// Field returns the raw value of one input
func (c *Controller) Field(field Field) string {
	return c.fields.Get(field)
}

// Errors returns the rules field currently breaks
func (c *Controller) Errors(field Field) []ErrorKind {
	return c.errs[field]
}

// Invalid reports whether field should be presented as invalid:
// the form was submitted at least once and the field currently fails.
func (c *Controller) Invalid(field Field) bool {
	return c.submitted && len(c.errs[field]) > 0
}

// Valid reports whether every field passes
func (c *Controller) Valid() bool {
	return len(c.errs) == 0
}

// Submit starts the create request when the form is valid and idle.
// An invalid form is only marked as submitted.
func (c *Controller) Submit() tea.Cmd {
	c.submitted = true

	if c.loading {
		c.log.Debug().Msg("submit ignored, request in flight")
		return nil
	}
	if !c.Valid() {
		c.log.Debug().Int("invalid_fields", len(c.errs)).Msg("submit blocked by validation")
		return nil
	}

	course := c.course()
	c.phase = Submitting
	c.loading = true
	c.success = false
	c.errText = ""

	c.log.Debug().Str("title", course.Title).Msg("creating course")

	creator, timeout, owner := c.creator, c.timeout, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		created, err := creator.Create(ctx, course)
		return createdMsg{owner: owner, course: created, err: err}
	}
}

// Update applies create completions and the post-success deferral
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case createdMsg:
		if msg.owner != c.id {
			return nil
		}
		return c.applyCreated(msg)

	case settledMsg:
		if msg.owner != c.id {
			return nil
		}
		c.loading = false
		created := msg.course
		return func() tea.Msg { return NavigateMsg{Created: created} }
	}
	return nil
}

// Reset empties the form and clears every status flag, whatever the phase
func (c *Controller) Reset() {
	c.fields = Fields{}
	c.errs = Validate(c.fields)
	c.errText = ""
	c.success = false
	c.submitted = false
	c.phase = Editing
}

// State returns the current view state
func (c *Controller) State() State {
	errs := make(map[Field][]ErrorKind, len(c.errs))
	for f, kinds := range c.errs {
		errs[f] = append([]ErrorKind(nil), kinds...)
	}

	return State{
		Phase:       c.phase,
		Fields:      c.fields,
		FieldErrors: errs,
		ErrorText:   c.errText,
		Loading:     c.loading,
		Success:     c.success,
		Submitted:   c.submitted,
	}
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) applyCreated(msg createdMsg) tea.Cmd {
	if msg.err != nil {
		c.phase = Failed
		c.errText = SaveErrorText
		c.loading = false

		c.log.Warn().Err(msg.err).Msg("create course failed")
		c.publish(eventbus.SubmissionFailedEvent{Draft: c.draft(), Err: msg.err})
		return nil
	}

	c.phase = Succeeded
	c.success = true
	c.errText = ""
	c.fields = Fields{}
	c.errs = Validate(c.fields)
	c.submitted = false

	c.log.Info().Int64("id", msg.course.ID).Str("title", msg.course.Title).Msg("course created")
	c.publish(eventbus.CourseCreatedEvent{Course: msg.course})

	owner, created := c.id, msg.course
	return func() tea.Msg { return settledMsg{owner: owner, course: created} }
}

func (c *Controller) course() domain.Course {
	return c.draft().Course()
}

func (c *Controller) draft() domain.CourseDraft {
	d := domain.CourseDraft{Title: c.fields.Title, Category: c.fields.Category}
	if n := parseDuration(c.fields.DurationHours); n != nil {
		d.DurationHours = *n
	}
	return d
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
