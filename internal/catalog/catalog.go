package catalog

import (
	"context"
	"fmt"
	"net/url"
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
	// PageSize is the number of records each page reveals
	PageSize = 12

	DefaultDebounce = 300 * time.Millisecond
	DefaultTimeout  = 10 * time.Second

	LoadErrorText = "Could not load courses. Please try again."
)

// Phase is the fetch lifecycle of the catalog
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// FetchedMsg carries the outcome of one list request back into Update
type FetchedMsg struct {
	owner   uint64
	Seq     uint64
	Query   string
	Courses []domain.Course
	Err     error
}

type debounceMsg struct {
	owner uint64
	gen   uint64
	term  string
}

type loadMoreDoneMsg struct {
	owner uint64
}

// Scheduler delivers msg after d. The default wraps tea.Tick.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules msg on the Bubble Tea timer
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Snapshot is the read-only view of the catalog handed to renderers
type Snapshot struct {
	Phase       Phase
	Query       string
	Displayed   []domain.Course
	HasMore     bool
	ResultCount int // records currently displayed
	TotalCount  int // records in the current result set
	PageIndex   int
	ErrorText   string
	LoadingMore bool
}

var controllerIDs atomic.Uint64

// Controller owns the catalog result set, the active query and the paging cursor.
// It is driven from a Bubble Tea Update loop and is not safe for concurrent use.
type Controller struct {
	lister    gateway.Lister
	notifier  presenter.Notifier
	bus       eventbus.Publisher
	log       zerolog.Logger
	schedule  Scheduler
	debounce  time.Duration
	immediate bool
	timeout   time.Duration
	site      presenter.Site

	id          uint64
	all         []domain.Course
	query       string
	pageIndex   int
	phase       Phase
	errText     string
	loadingMore bool

	issued  uint64 // sequence of the newest request
	applied uint64 // sequence of the newest completion committed to state

	debounceGen   uint64
	lastDebounced string
	hasDebounced  bool
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
	return func(c *Controller) { c.log = log.With().Str("component", "catalog").Logger() }
}

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

// WithDebounce sets the quiet window of the debounced search path
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithImmediateSearch toggles the immediate search path; the debounced path always runs
func WithImmediateSearch(enabled bool) Option {
	return func(c *Controller) { c.immediate = enabled }
}

// WithTimeout bounds every list request
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSite sets the branding used for page metadata
func WithSite(site presenter.Site) Option {
	return func(c *Controller) { c.site = site }
}

// New creates an idle controller; call Init to issue the first load
func New(lister gateway.Lister, opts ...Option) *Controller {
	c := &Controller{
		lister:    lister,
		notifier:  presenter.Discard{},
		log:       zerolog.Nop(),
		schedule:  TickScheduler,
		debounce:  DefaultDebounce,
		immediate: true,
		timeout:   DefaultTimeout,
		site:      presenter.DefaultSite,
		id:        controllerIDs.Add(1),
		phase:     Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init announces the catalog page and issues the unfiltered load
func (c *Controller) Init() tea.Cmd {
	c.notifier.SetTitle("Course Catalog")
	c.notifier.SetMetaTags(presenter.MetaTags{
		Title:       "Course Catalog | " + c.site.Name,
		Description: "Explore our selection of technology courses. Development, programming, design and more.",
		URL:         c.site.URL + "/courses",
	})
	return c.fetch("")
}

// SetQuery records term as the active filter. The immediate path fetches right
// away; the debounced path fetches once input has been quiet for the window.
func (c *Controller) SetQuery(term string) tea.Cmd {
	c.query = term

	var cmds []tea.Cmd
	if c.immediate {
		cmds = append(cmds, c.fetch(term))
	}

	c.debounceGen++
	cmds = append(cmds, c.schedule(c.debounce, debounceMsg{owner: c.id, gen: c.debounceGen, term: term}))

	return tea.Batch(cmds...)
}

// Reload re-issues the fetch for the active query
func (c *Controller) Reload() tea.Cmd {
	return c.fetch(c.query)
}

// LoadMore reveals the next page of the resident result set
func (c *Controller) LoadMore() tea.Cmd {
	if !c.hasMore() || c.loadingMore {
		return nil
	}

	c.loadingMore = true
	c.pageIndex++

	owner := c.id
	return func() tea.Msg { return loadMoreDoneMsg{owner: owner} }
}

// Update applies timer fires and fetch completions addressed to this controller
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FetchedMsg:
		if msg.owner != c.id {
			return nil
		}
		c.applyFetch(msg)

	case debounceMsg:
		if msg.owner != c.id || msg.gen != c.debounceGen {
			return nil
		}
		if c.hasDebounced && msg.term == c.lastDebounced {
			c.log.Debug().Str("query", msg.term).Msg("debounced term unchanged, skipping")
			return nil
		}
		c.lastDebounced = msg.term
		c.hasDebounced = true
		return c.fetch(msg.term)

	case loadMoreDoneMsg:
		if msg.owner == c.id {
			c.loadingMore = false
		}
	}
	return nil
}

// Owns reports whether msg belongs to this controller
func (c *Controller) Owns(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FetchedMsg:
		return msg.owner == c.id
	case debounceMsg:
		return msg.owner == c.id
	case loadMoreDoneMsg:
		return msg.owner == c.id
	}
	return false
}

// Snapshot returns the current view state
func (c *Controller) Snapshot() Snapshot {
	shown := c.displayed()
	out := make([]domain.Course, len(shown))
	copy(out, shown)

	return Snapshot{
		Phase:       c.phase,
		Query:       c.query,
		Displayed:   out,
		HasMore:     c.hasMore(),
		ResultCount: len(out),
		TotalCount:  len(c.all),
		PageIndex:   c.pageIndex,
		ErrorText:   c.errText,
		LoadingMore: c.loadingMore,
	}
}

func (c *Controller) Phase() Phase   { return c.phase }
func (c *Controller) Query() string  { return c.query }
func (c *Controller) HasMore() bool  { return c.hasMore() }
func (c *Controller) PageIndex() int { return c.pageIndex }

func (c *Controller) displayed() []domain.Course {
	end := (c.pageIndex + 1) * PageSize
	if end > len(c.all) {
		end = len(c.all)
	}
	return c.all[:end]
}

func (c *Controller) hasMore() bool {
	return (c.pageIndex+1)*PageSize < len(c.all)
}

func (c *Controller) fetch(term string) tea.Cmd {
	c.issued++
	seq := c.issued
	c.phase = Loading

	c.log.Debug().Uint64("seq", seq).Str("query", term).Msg("issuing list request")

	lister, timeout, owner := c.lister, c.timeout, c.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		courses, err := lister.List(ctx, term)
		return FetchedMsg{owner: owner, Seq: seq, Query: term, Courses: courses, Err: err}
	}
}

func (c *Controller) applyFetch(msg FetchedMsg) {
	if msg.Seq <= c.applied {
		c.log.Debug().Uint64("seq", msg.Seq).Uint64("applied", c.applied).Msg("dropping stale list response")
		return
	}
	newest := msg.Seq == c.issued

	if msg.Err != nil {
		if !newest {
			c.log.Debug().Uint64("seq", msg.Seq).Err(msg.Err).Msg("dropping superseded list failure")
			return
		}
		c.applied = msg.Seq
		c.phase = Failed
		c.errText = LoadErrorText
		c.log.Warn().Err(msg.Err).Str("query", msg.Query).Msg("list request failed")
		c.publish(eventbus.CatalogFailedEvent{Query: msg.Query, Err: msg.Err})
		return
	}

	c.applied = msg.Seq
	c.all = msg.Courses
	c.pageIndex = 0
	c.loadingMore = false
	c.errText = ""
	if newest {
		c.phase = Ready
	}

	c.log.Debug().Uint64("seq", msg.Seq).Str("query", msg.Query).Int("count", len(msg.Courses)).Msg("list applied")
	c.publish(eventbus.CatalogLoadedEvent{Query: msg.Query, Count: len(msg.Courses)})

	if msg.Query != "" {
		c.announceSearch(msg.Query)
	}
}

func (c *Controller) announceSearch(term string) {
	c.notifier.SetTitle("Search: " + term)
	c.notifier.SetMetaTags(presenter.MetaTags{
		Title:       fmt.Sprintf("Results for %q | %s", term, c.site.Name),
		Description: fmt.Sprintf("Courses related to %q. Find the perfect course for you.", term),
		URL:         c.site.URL + "/courses?search=" + url.QueryEscape(term),
	})
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
