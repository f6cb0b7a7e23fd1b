package input

import (
	"coursecat/internal/catalog"
	"coursecat/internal/submission"
	"coursecat/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Catalog *catalog.Controller
	Form    *submission.Controller
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of displayed courses
func (c *ModelContext) TotalItems() int {
	if c.Catalog == nil {
		return 0
	}
	return len(c.Catalog.Snapshot().Displayed)
}

// HasMore reports whether another page can be revealed
func (c *ModelContext) HasMore() bool {
	return c.Catalog != nil && c.Catalog.HasMore()
}

// CurrentCourseID returns the id of the course under the cursor, 0 when none
func (c *ModelContext) CurrentCourseID() int64 {
	if c.Catalog == nil {
		return 0
	}
	shown := c.Catalog.Snapshot().Displayed
	if c.State.SelectedIndex < 0 || c.State.SelectedIndex >= len(shown) {
		return 0
	}
	return shown[c.State.SelectedIndex].ID
}

// Query returns the active catalog query
func (c *ModelContext) Query() string {
	if c.Catalog == nil {
		return ""
	}
	return c.Catalog.Query()
}

// Submitting reports whether a create request is in flight
func (c *ModelContext) Submitting() bool {
	return c.Form != nil && c.Form.State().Loading
}
