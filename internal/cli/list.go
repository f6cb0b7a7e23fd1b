package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"coursecat/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Query string
	All   bool
}

// ListResult is the JSON payload of the list command
type ListResult struct {
	Query   string       `json:"query,omitempty"`
	Courses []courseView `json:"courses"`
	Shown   int          `json:"shown"`
	Total   int          `json:"total"`
	HasMore bool         `json:"has_more"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses in the catalog",
		Long: `List courses in the catalog, optionally filtered by title.

Results are paged like the interactive browser: the first page holds
12 courses. Use --all to reveal every page.

Example:
  coursecat list -q angular --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "case-insensitive title filter")
	cmd.Flags().BoolVar(&opts.All, "all", false, "show every page")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	s, err := newSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	// one-shot: the immediate path is the only fetch, no debounce timer
	ctl := catalog.New(s.gw,
		catalog.WithLogger(s.log),
		catalog.WithTimeout(s.cfg.API.Timeout.Std()),
		catalog.WithImmediateSearch(true),
		catalog.WithScheduler(func(time.Duration, tea.Msg) tea.Cmd { return nil }),
	)

	var start tea.Cmd
	if opts.Query != "" {
		start = ctl.SetQuery(opts.Query)
	} else {
		start = ctl.Init()
	}
	settle(start, ctl.Update)

	for opts.All && ctl.HasMore() {
		settle(ctl.LoadMore(), ctl.Update)
	}

	snap := ctl.Snapshot()
	if snap.Phase == catalog.Failed {
		_ = s.formatter.Error(ErrCodeTransport, snap.ErrorText, nil)
		return NewExitError(ExitFailure, snap.ErrorText)
	}
	s.formatter.VerboseLog("Fetched %d course(s)", snap.TotalCount)

	if s.formatter.Format == "json" {
		result := ListResult{
			Query:   snap.Query,
			Courses: make([]courseView, 0, len(snap.Displayed)),
			Shown:   snap.ResultCount,
			Total:   snap.TotalCount,
			HasMore: snap.HasMore,
		}
		for _, c := range snap.Displayed {
			result.Courses = append(result.Courses, viewOf(c))
		}
		return s.formatter.Success(result)
	}

	return s.formatter.Success(listText(snap))
}

func listText(snap catalog.Snapshot) string {
	if len(snap.Displayed) == 0 {
		if snap.Query != "" {
			return fmt.Sprintf("No courses found for %q.", snap.Query)
		}
		return "No courses found."
	}

	var b strings.Builder
	for _, c := range snap.Displayed {
		b.WriteString(courseLine(c))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nShowing %d of %d courses", snap.ResultCount, snap.TotalCount)
	if snap.HasMore {
		b.WriteString(" (use --all for more)")
	}
	return b.String()
}
