package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Catalog actions
type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type OpenDetailsAction struct {
	ID int64
}

func (a OpenDetailsAction) Type() string { return "open_details" }

type NewCourseAction struct{}

func (a NewCourseAction) Type() string { return "new_course" }

// Form actions
type FocusFieldAction struct {
	Delta int // +1 next, -1 previous
}

func (a FocusFieldAction) Type() string { return "focus_field" }

// FormKeyAction forwards a key to the focused form input
type FormKeyAction struct {
	Msg tea.KeyMsg
}

func (a FormKeyAction) Type() string { return "form_key" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type ResetFormAction struct{}

func (a ResetFormAction) Type() string { return "reset_form" }

// Screen actions
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
