package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/ui/input/types"
)

// FormMode drives the create-course form. Keys it does not claim are
// forwarded to the focused field.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.BackAction{}}, true
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		if ctx.Submitting() {
			return nil, true
		}
		return []types.Action{types.SubmitFormAction{}}, true
	case "ctrl+r":
		return []types.Action{types.ResetFormAction{}}, true
	}

	return []types.Action{types.FormKeyAction{Msg: msg}}, true
}
