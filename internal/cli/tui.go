package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"coursecat/internal/eventbus"
	"coursecat/internal/logger"
	"coursecat/internal/presenter"
	"coursecat/internal/ui"
)

// E2EEnv makes the TUI announce readiness on stdout for the pty-driven tests
const E2EEnv = "COURSECAT_E2E_TEST"

// forwarded are the bus events the TUI reacts to
var forwarded = []eventbus.EventType{
	eventbus.EventCourseCreated,
	eventbus.EventSubmissionFailed,
}

var logged = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventCatalogFailed,
	eventbus.EventCourseCreated,
	eventbus.EventSubmissionFailed,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
}

func runTUI(opts *RootOptions, cmd *cobra.Command) error {
	cfg, svc, err := loadConfig(opts, nil)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	log := zerolog.Nop()
	if logFile, err := logger.OpenFile(cfg.Log.File); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
		log = logger.Setup(level, cfg.Log.Format, logFile)
	}

	bus := eventbus.New(log)
	defer bus.Close()

	for _, t := range logged {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Info().Str("event", string(e.Type())).Interface("payload", e).Msg("domain event")
		})
	}

	model := ui.NewModel(ui.Deps{
		Gateway: newGateway(cfg, log),
		Bus:     bus,
		Config:  cfg,
		Log:     log,
		Head:    presenter.NewHead(siteOf(cfg)),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	model.SetProgram(p)

	for _, t := range forwarded {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path()})

	if os.Getenv(E2EEnv) == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Info().Str("api", cfg.API.BaseURL).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("error running program")
		return WrapExitError(ExitFailure, "error running program", err)
	}
	log.Info().Msg("UI exited normally")

	return nil
}
