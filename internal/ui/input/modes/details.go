package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/ui/input/types"
)

// DetailsMode drives the single-course screen
type DetailsMode struct{}

func NewDetailsMode() *DetailsMode {
	return &DetailsMode{}
}

func (m *DetailsMode) Name() string {
	return "details"
}

func (m *DetailsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "backspace", "h", "left":
		return []types.Action{types.BackAction{}}, true
	case "o":
		return []types.Action{types.OpenPagerAction{}}, true
	case "r":
		return []types.Action{types.ReloadAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, false
}
