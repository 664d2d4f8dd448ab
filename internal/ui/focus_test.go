package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotates(t *testing.T) {
	var changes [][2]string
	f := FocusManager{
		Current: FocusContent,
		Order:   []string{FocusSidebar, FocusContent},
		OnChange: func(from, to string) {
			changes = append(changes, [2]string{from, to})
		},
	}

	assert.Equal(t, FocusSidebar, f.Next())
	assert.Equal(t, FocusContent, f.Next())
	assert.Equal(t, FocusSidebar, f.Prev())
	assert.True(t, f.Is(FocusSidebar))
	assert.Len(t, changes, 3)
	assert.Equal(t, [2]string{FocusContent, FocusSidebar}, changes[0])
}

func TestFocusManager_SetFocus(t *testing.T) {
	calls := 0
	f := FocusManager{
		Current:  FocusContent,
		Order:    []string{FocusSidebar, FocusContent},
		OnChange: func(string, string) { calls++ },
	}
	assert.False(t, f.SetFocus("nope"))
	assert.True(t, f.SetFocus(FocusContent))
	assert.Equal(t, 0, calls, "refocusing the same panel is not a change")
	assert.True(t, f.SetFocus(FocusSidebar))
	assert.Equal(t, 1, calls)
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	var f FocusManager
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())
}

func TestShellLayout_Bounds(t *testing.T) {
	open := shellLayout{sidebarOpen: true}
	x, y, w, h := panelBounds(open, FocusSidebar, 120, 36)
	assert.Equal(t, [4]int{0, 0, sidebarOpenWidth, 36}, [4]int{x, y, w, h})

	x, y, w, h = panelBounds(open, FocusContent, 120, 36)
	assert.Equal(t, [4]int{sidebarOpenWidth, headerHeight, 120 - sidebarOpenWidth - 1, 36 - headerHeight - footerHeight}, [4]int{x, y, w, h})

	collapsed := shellLayout{}
	_, _, w, _ = panelBounds(collapsed, FocusContent, 120, 36)
	assert.Equal(t, 120-sidebarCollapsedWidth-1, w)

	// Tiny terminals never yield negative sizes.
	_, _, w, h = panelBounds(open, FocusContent, 10, 2)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	_, _, w, _ = panelBounds(open, "missing", 120, 36)
	assert.Equal(t, 0, w)
	assert.Equal(t, []string{FocusSidebar, FocusContent}, open.FocusOrder())
}
