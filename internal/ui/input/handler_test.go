package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecat/internal/ui/input/types"
)

type stubContext struct {
	index      int
	total      int
	more       bool
	courseID   int64
	query      string
	submitting bool
}

func (c stubContext) CurrentIndex() int      { return c.index }
func (c stubContext) TotalItems() int        { return c.total }
func (c stubContext) HasMore() bool          { return c.more }
func (c stubContext) CurrentCourseID() int64 { return c.courseID }
func (c stubContext) Query() string          { return c.query }
func (c stubContext) Submitting() bool       { return c.submitting }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeKeys(t *testing.T) {
	ctx := stubContext{courseID: 9, more: true}

	tests := []struct {
		name string
		key  tea.KeyMsg
		want types.Action
	}{
		{"down", runes("j"), types.NavigateAction{Direction: "down"}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{"bottom", runes("G"), types.NavigateAction{Direction: "end"}},
		{"open", tea.KeyMsg{Type: tea.KeyEnter}, types.OpenDetailsAction{ID: 9}},
		{"load more", runes("m"), types.LoadMoreAction{}},
		{"new", runes("n"), types.NewCourseAction{}},
		{"reload", runes("r"), types.ReloadAction{}},
		{"help", runes("?"), types.ToggleHelpAction{}},
		{"quit", runes("q"), types.QuitAction{}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestNormalModeIgnoresLoadMoreWithoutMore(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("m"), stubContext{})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{})
	assert.Empty(t, actions)
}

func TestDoubleGJumpsToTop(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("g"), stubContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), stubContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "home"}, actions[0])
}

func TestSearchModeStreamsKeystrokes(t *testing.T) {
	h := New()
	ctx := stubContext{query: "go"}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "go", h.TextInput().Value())
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ := h.HandleKey(runes("l"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "gol"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "go"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "go", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeEscCancels(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeSearch, "")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestFormModeForwardsTyping(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeForm, "")

	key := runes("a")
	actions, _ := h.HandleKey(key, stubContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.FormKeyAction{Msg: key}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, stubContext{})
	assert.Equal(t, []types.Action{types.FocusFieldAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, stubContext{})
	assert.Equal(t, []types.Action{types.FocusFieldAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{})
	assert.Equal(t, []types.Action{types.SubmitFormAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{submitting: true})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	assert.Equal(t, []types.Action{types.BackAction{}}, actions)
}

func TestDetailsModeKeys(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeDetails, "")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	assert.Equal(t, []types.Action{types.BackAction{}}, actions)

	actions, _ = h.HandleKey(runes("o"), stubContext{})
	assert.Equal(t, []types.Action{types.OpenPagerAction{}}, actions)

	actions, _ = h.HandleKey(runes("x"), stubContext{})
	assert.Empty(t, actions)
}
