package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"coursecat/internal/ui/input/types"
)

// SearchMode edits the catalog query; every keystroke is forwarded as an UpdateTextAction
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
