package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coursecat/internal/domain"
)

func TestMoveClampsAndScrolls(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 5

	s.Move(-1, 12)
	assert.Equal(t, 0, s.SelectedIndex)

	s.Move(7, 12)
	assert.Equal(t, 7, s.SelectedIndex)
	assert.Equal(t, 3, s.ViewportOffset)

	s.Move(100, 12)
	assert.Equal(t, 11, s.SelectedIndex)
	assert.Equal(t, 7, s.ViewportOffset)

	s.Move(-10, 12)
	assert.Equal(t, 1, s.SelectedIndex)
	assert.Equal(t, 1, s.ViewportOffset)
}

func TestClampAfterShrink(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 5
	s.SetSelectedIndex(20, 24)
	assert.Equal(t, 20, s.SelectedIndex)

	s.Clamp(3)
	assert.Equal(t, 2, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)

	s.Clamp(0)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestFocusFieldWraps(t *testing.T) {
	s := NewAppState()
	s.FocusField(-1, 3)
	assert.Equal(t, 2, s.FocusedField)
	s.FocusField(1, 3)
	assert.Equal(t, 0, s.FocusedField)
	s.FocusField(4, 3)
	assert.Equal(t, 1, s.FocusedField)
	s.FocusField(1, 0)
	assert.Equal(t, 1, s.FocusedField)
}

func TestRecordCreatedKeepsNewestFirst(t *testing.T) {
	s := NewAppState()
	for i := int64(1); i <= 7; i++ {
		s.RecordCreated(domain.Course{ID: i})
	}
	assert.Len(t, s.Created, recentLimit)
	assert.Equal(t, int64(7), s.Created[0].ID)
	assert.Equal(t, int64(3), s.Created[recentLimit-1].ID)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "list", ScreenList.String())
	assert.Equal(t, "form", ScreenForm.String())
	assert.Equal(t, "details", ScreenDetails.String())
}
