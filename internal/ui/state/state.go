package state

import (
	"coursecat/internal/domain"
)

// Screen identifies the page shown by the TUI
type Screen int

const (
	ScreenList Screen = iota
	ScreenForm
	ScreenDetails
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenForm:
		return "form"
	case ScreenDetails:
		return "details"
	default:
		return "unknown"
	}
}

// recentLimit caps the "created this session" activity list
const recentLimit = 5

// AppState contains the UI-only state. Catalog, form and details data live
// in their controllers.
type AppState struct {
	Screen Screen

	// List cursor
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // rows available for course lines

	// Form cursor
	FocusedField int

	// UI state
	ShowHelp      bool
	StatusMessage string
	Width         int
	Height        int

	// Courses created during this session, newest first
	Created []domain.Course
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Screen:         ScreenList,
		ViewportHeight: 20, // Default
	}
}

// Navigation

// Move shifts the cursor by delta over total rows and keeps it visible
func (s *AppState) Move(delta, total int) {
	s.SetSelectedIndex(s.SelectedIndex+delta, total)
}

// SetSelectedIndex clamps index into [0,total) and scrolls the viewport to it
func (s *AppState) SetSelectedIndex(index, total int) {
	if index >= total {
		index = total - 1
	}
	if index < 0 {
		index = 0
	}
	s.SelectedIndex = index
	s.EnsureVisible()
}

// Clamp re-applies bounds after the row count changed underneath the cursor
func (s *AppState) Clamp(total int) {
	s.SetSelectedIndex(s.SelectedIndex, total)
	if maxOffset := total - s.ViewportHeight; s.ViewportOffset > maxOffset {
		s.ViewportOffset = max(maxOffset, 0)
	}
}

// EnsureVisible adjusts the viewport to keep the selected row visible
func (s *AppState) EnsureVisible() {
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// ResetCursor moves the list cursor to the top
func (s *AppState) ResetCursor() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// FocusField cycles the form focus by delta over n fields
func (s *AppState) FocusField(delta, n int) {
	if n <= 0 {
		return
	}
	s.FocusedField = ((s.FocusedField+delta)%n + n) % n
}

// Activity

// RecordCreated remembers a course created during this session
func (s *AppState) RecordCreated(course domain.Course) {
	s.Created = append([]domain.Course{course}, s.Created...)
	if len(s.Created) > recentLimit {
		s.Created = s.Created[:recentLimit]
	}
}
