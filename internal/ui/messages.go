package ui

import (
	"time"

	"coursecat/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagerMsg reports the outcome of an ov pager session
type pagerMsg struct {
	what string // "help" or "details"
	err  error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
