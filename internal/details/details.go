package details

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"coursecat/internal/domain"
	"coursecat/internal/gateway"
	"coursecat/internal/presenter"
)

const (
	InvalidIDText  = "Invalid course ID."
	LoadErrorText  = "Could not load course details."
	DefaultTimeout = 10 * time.Second
)

// LoadedMsg carries the outcome of a get-by-id request
type LoadedMsg struct {
	owner  uint64
	Course domain.Course
	Err    error
}

var controllerIDs atomic.Uint64

// Controller resolves and shows a single course. A course carried over from
// the list is shown right away and refreshed from the remote catalog.
type Controller struct {
	getter   gateway.Getter
	notifier presenter.Notifier
	log      zerolog.Logger
	timeout  time.Duration
	site     presenter.Site

	id      uint64
	idParam string
	course  *domain.Course
	loading bool
	errText string
	err     error
}

// Option configures a Controller
type Option func(*Controller)

func WithNotifier(n presenter.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log.With().Str("component", "details").Logger() }
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

// New creates a controller for the course identified by idParam; carried may be nil
func New(getter gateway.Getter, idParam string, carried *domain.Course, opts ...Option) *Controller {
	c := &Controller{
		getter:   getter,
		notifier: presenter.Discard{},
		log:      zerolog.Nop(),
		timeout:  DefaultTimeout,
		site:     presenter.DefaultSite,
		id:       controllerIDs.Add(1),
		idParam:  idParam,
		loading:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if carried != nil {
		course := *carried
		c.course = &course
	}
	return c
}

// ParseID interprets a course id parameter
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &domain.InputError{Field: "course id", Value: raw}
	}
	return id, nil
}

// Init shows the carried course, if any, and issues the fetch
func (c *Controller) Init() tea.Cmd {
	if c.course != nil {
		c.loading = false
		c.announce(*c.course)
	}

	id, err := ParseID(c.idParam)
	if err != nil {
		c.errText = InvalidIDText
		c.err = err
		c.loading = false
		c.log.Debug().Str("id", c.idParam).Msg("rejecting course id")
		return nil
	}

	return c.fetch(id)
}

// Reload refetches the course, keeping whatever is shown until it completes
func (c *Controller) Reload() tea.Cmd {
	id, err := ParseID(c.idParam)
	if err != nil {
		return nil
	}
	c.loading = true
	return c.fetch(id)
}

func (c *Controller) fetch(id int64) tea.Cmd {
	getter, timeout, owner := c.getter, c.timeout, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		course, err := getter.Get(ctx, id)
		return LoadedMsg{owner: owner, Course: course, Err: err}
	}
}

// Update applies the fetch outcome
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(LoadedMsg)
	if !ok || loaded.owner != c.id {
		return nil
	}

	c.loading = false
	if loaded.Err != nil {
		c.err = loaded.Err
		c.log.Warn().Err(loaded.Err).Str("id", c.idParam).Msg("get course failed")
		if c.course == nil {
			c.errText = LoadErrorText
		}
		return nil
	}

	course := loaded.Course
	c.course = &course
	c.errText = ""
	c.announce(course)
	return nil
}

// Course returns the course being shown
func (c *Controller) Course() (domain.Course, bool) {
	if c.course == nil {
		return domain.Course{}, false
	}
	return *c.course, true
}

func (c *Controller) Loading() bool     { return c.loading }
func (c *Controller) ErrorText() string { return c.errText }

// Err returns the last failure, for callers that need its kind
func (c *Controller) Err() error { return c.err }

// Description renders the one-line summary used for the page description
func Description(course domain.Course) string {
	return fmt.Sprintf("%s course - %s with %dh of content.", course.Title, course.Category, course.DurationHours)
}

func (c *Controller) announce(course domain.Course) {
	c.notifier.SetTitle(course.Title)
	c.notifier.SetMetaTags(presenter.MetaTags{
		Title:       course.Title,
		Description: Description(course),
		URL:         c.site.URL + "/courses/" + strconv.FormatInt(course.ID, 10),
	})
}
