package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"coursecat/internal/config"
	"coursecat/internal/domain"
	"coursecat/internal/eventbus"
	"coursecat/internal/gateway"
	"coursecat/internal/logger"
	"coursecat/internal/presenter"
)

// session is the wiring a non-interactive command needs
type session struct {
	cfg       *config.Config
	configSvc config.ConfigService
	log       zerolog.Logger
	gw        *gateway.Client
	formatter *OutputFormatter
}

func newSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	log := zerolog.Nop()
	if opts.Verbose {
		log = logger.Setup("debug", "pretty", cmd.ErrOrStderr())
	}

	cfg, svc, err := loadConfig(opts, nil)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return nil, err
	}
	formatter.VerboseLog("Using API %s", cfg.API.BaseURL)

	return &session{
		cfg:       cfg,
		configSvc: svc,
		log:       log,
		gw:        newGateway(cfg, log),
		formatter: formatter,
	}, nil
}

// loadConfig reads the config file (defaults when missing), then applies the
// environment and finally the command line flags
func loadConfig(opts *RootOptions, bus eventbus.Publisher) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.Locale != "" {
		cfg.UI.Locale = opts.Locale
	}
	return cfg, svc, nil
}

func newGateway(cfg *config.Config, log zerolog.Logger) *gateway.Client {
	return gateway.New(cfg.API.BaseURL,
		gateway.WithTimeout(cfg.API.Timeout.Std()),
		gateway.WithLogger(log),
	)
}

func siteOf(cfg *config.Config) presenter.Site {
	return presenter.Site{
		Name:        cfg.Site.Name,
		URL:         cfg.Site.URL,
		Description: cfg.Site.Description,
		Image:       cfg.Site.Image,
	}
}

// settle runs cmd to completion outside a Bubble Tea program, feeding every
// message back through update. It returns the messages in delivery order.
func settle(cmd tea.Cmd, update func(tea.Msg) tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil {
			continue
		}

		seen = append(seen, msg)
		queue = append(queue, update(msg))
	}
	return seen
}

// courseView is the JSON shape of a course in CLI output
type courseView struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	DurationHours int    `json:"duration_hours"`
}

func viewOf(c domain.Course) courseView {
	return courseView{ID: c.ID, Title: c.Title, Category: c.Category, DurationHours: c.DurationHours}
}

func courseLine(c domain.Course) string {
	return fmt.Sprintf("%4d  %-36s %-14s %4dh", c.ID, c.Title, c.Category, c.DurationHours)
}
