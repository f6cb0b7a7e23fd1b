package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"coursecat/internal/details"
	"coursecat/internal/domain"
	"coursecat/internal/ui/views"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one course",
		Long: `Show one course by its numeric id.

Example:
  coursecat show 7`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, idParam string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	ctl := details.New(s.gw, idParam, nil,
		details.WithLogger(s.log),
		details.WithTimeout(s.cfg.API.Timeout.Std()),
		details.WithSite(siteOf(s.cfg)),
	)
	settle(ctl.Init(), ctl.Update)

	course, ok := ctl.Course()
	if !ok {
		if errors.Is(ctl.Err(), domain.ErrInvalidInput) {
			_ = s.formatter.Error(ErrCodeInput, ctl.ErrorText(), map[string]string{"id": idParam})
			return WrapExitError(ExitCommandError, ctl.ErrorText(), ctl.Err())
		}
		_ = s.formatter.Error(ErrCodeTransport, ctl.ErrorText(), nil)
		return WrapExitError(ExitFailure, ctl.ErrorText(), ctl.Err())
	}

	if s.formatter.Format == "json" {
		return s.formatter.Success(viewOf(course))
	}
	return s.formatter.Success(strings.TrimRight(views.PlainDetails(course), "\n"))
}
