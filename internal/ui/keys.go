package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"coursecat/internal/ui/state"
)

// keyMap lists the bindings shown in the footer and the help screen.
// Dispatch itself lives in the input modes.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Page      key.Binding
	TopBottom key.Binding
	Open      key.Binding
	More      key.Binding
	Search    key.Binding
	ClearQ    key.Binding
	New       key.Binding
	Reload    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	ResetForm key.Binding
	Back      key.Binding
	Pager     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Page:      key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "page up/down")),
	TopBottom: key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg/G", "top/bottom")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	More:      key.NewBinding(key.WithKeys(" ", "m"), key.WithHelp("space/m", "load more")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ClearQ:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new course")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	ResetForm: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear form")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Pager:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpSection is one titled block of the help screen
type helpSection struct {
	Title    string
	Bindings []key.Binding
}

func helpSections() []helpSection {
	return []helpSection{
		{"Navigation", []key.Binding{keys.Up, keys.Down, keys.Page, keys.TopBottom}},
		{"Catalog", []key.Binding{keys.Open, keys.More, keys.Search, keys.ClearQ, keys.Reload}},
		{"New Course", []key.Binding{keys.New, keys.NextField, keys.PrevField, keys.Submit, keys.ResetForm, keys.Back}},
		{"Details", []key.Binding{keys.Pager, keys.Reload, keys.Back}},
		{"Other", []key.Binding{keys.Help, keys.Quit}},
	}
}

// screenKeys adapts a screen's bindings to help.KeyMap
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

var _ help.KeyMap = screenKeys{}

func (k screenKeys) ShortHelp() []key.Binding  { return k.short }
func (k screenKeys) FullHelp() [][]key.Binding { return k.full }

func keysFor(screen state.Screen) screenKeys {
	switch screen {
	case state.ScreenForm:
		return screenKeys{
			short: []key.Binding{keys.NextField, keys.Submit, keys.ResetForm, keys.Back},
			full:  [][]key.Binding{{keys.NextField, keys.PrevField}, {keys.Submit, keys.ResetForm, keys.Back}},
		}
	case state.ScreenDetails:
		return screenKeys{
			short: []key.Binding{keys.Back, keys.Pager, keys.Reload, keys.Help, keys.Quit},
			full:  [][]key.Binding{{keys.Back, keys.Pager, keys.Reload}, {keys.Help, keys.Quit}},
		}
	default:
		return screenKeys{
			short: []key.Binding{keys.Open, keys.Search, keys.More, keys.New, keys.Help, keys.Quit},
			full: [][]key.Binding{
				{keys.Up, keys.Down, keys.Page, keys.TopBottom},
				{keys.Open, keys.More, keys.Search, keys.Reload},
				{keys.New, keys.Help, keys.Quit},
			},
		}
	}
}
