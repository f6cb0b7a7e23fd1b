package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coursecat/internal/submission"
)

// NewOptions holds flags for the new command.
type NewOptions struct {
	*RootOptions
	Title    string
	Category string
	Duration string
}

// NewCourseResult is the JSON payload of the new command
type NewCourseResult struct {
	Course courseView `json:"course"`
}

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Register a new course",
		Long: `Register a new course in the catalog.

The values go through the same rules as the interactive form: a title of
at least 3 characters, a category, and a duration of at least 1 hour.

Example:
  coursecat new --title "Go Fundamentals" --category Backend --duration 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "course title")
	cmd.Flags().StringVar(&opts.Category, "category", "", "course category")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "duration in hours")

	return cmd
}

func runNew(opts *NewOptions, cmd *cobra.Command) error {
	s, err := newSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	ctl := submission.New(s.gw,
		submission.WithLogger(s.log),
		submission.WithTimeout(s.cfg.API.Timeout.Std()),
		submission.WithSite(siteOf(s.cfg)),
	)
	ctl.Mount()
	ctl.SetField(submission.FieldTitle, opts.Title)
	ctl.SetField(submission.FieldCategory, opts.Category)
	ctl.SetField(submission.FieldDurationHours, opts.Duration)

	start := ctl.Submit()
	if start == nil {
		return outputFieldErrors(s.formatter, ctl, submission.NewMessages(s.cfg.UI.Locale))
	}

	for _, msg := range settle(start, ctl.Update) {
		if nav, ok := msg.(submission.NavigateMsg); ok {
			if s.formatter.Format == "json" {
				return s.formatter.Success(NewCourseResult{Course: viewOf(nav.Created)})
			}
			return s.formatter.Success(fmt.Sprintf("Created course %d: %s", nav.Created.ID, nav.Created.Title))
		}
	}

	state := ctl.State()
	_ = s.formatter.Error(ErrCodeTransport, state.ErrorText, nil)
	return NewExitError(ExitFailure, state.ErrorText)
}

// outputFieldErrors reports every failing field in form order
func outputFieldErrors(f *OutputFormatter, ctl *submission.Controller, msgs *submission.Messages) error {
	details := make(map[string][]string)
	var lines []string
	for _, field := range submission.AllFields {
		for _, kind := range ctl.Errors(field) {
			text := msgs.Text(field, kind)
			details[string(field)] = append(details[string(field)], text)
			lines = append(lines, text)
		}
	}

	message := "invalid course"
	if f.Format != "json" {
		message += ":\n  " + strings.Join(lines, "\n  ")
	}
	_ = f.Error(ErrCodeValidation, message, details)
	return NewExitError(ExitCommandError, "invalid course")
}
