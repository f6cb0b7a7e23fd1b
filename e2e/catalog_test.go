//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogShowsFirstPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartCatalogApp(15)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.True(t, tf.SeePlain("Course 01"), "Should list the first course")
	require.True(t, tf.SeePlain("Showing 12 of 15 courses"), "Should page by 12")

	mark := tf.Mark()
	tf.LoadMore()
	require.True(t, tf.SeePlainSince(mark, "Showing 15 of 15 courses"), "Space should reveal the next page")
}

func TestSearchFiltersAsYouType(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalog, err := tf.StartCatalogApp(15)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Showing 12 of 15 courses"), "Should list courses")

	mark := tf.Mark()
	tf.Search("14")
	require.True(t, tf.SeePlainSince(mark, "Showing 1 of 1 courses"), "Should narrow the list while typing")
	require.Contains(t, catalog.Queries(), "14")

	mark = tf.Mark()
	tf.SendEnter()
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlainSince(mark, "Showing 12 of 15 courses"), "Esc should clear the search")
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartCatalogApp(3)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Course 03"), "Should list courses")

	initialOutput := tf.Snapshot()
	tf.Down()

	// Moving the cursor repaints the list
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")
}
