package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows long text in the ov pager, handing the terminal over for the duration
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a pager bound to no program yet
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content with ov
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return runPager(strings.NewReader(content))
}

func runPager(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd pauses rendering, runs the pager, and resumes
func (m *Model) pagerCmd(what, content string) tea.Cmd {
	pager := m.pager
	program := m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}
		err := pager.Show(content)
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{what: what, err: err}
	}
}
