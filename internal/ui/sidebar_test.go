package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"linkbird/internal/store"
)

func TestSidebar_CursorFollowsStore(t *testing.T) {
	st := store.New(store.DefaultState())
	s := NewSidebarView(st)
	defer s.Dispose()

	assert.Equal(t, store.PageLeads, s.Cursor())
	st.SetActivePage(store.PageSettings)
	assert.Equal(t, store.PageSettings, s.Cursor())

	s.Dispose()
	st.SetActivePage(store.PageDashboard)
	assert.Equal(t, store.PageSettings, s.Cursor(), "disposed sidebar stops following")
}

func TestSidebar_MovesAndNavigates(t *testing.T) {
	st := store.New(store.DefaultState())
	s := NewSidebarView(st)
	defer s.Dispose()

	for range 10 {
		s.Update(keyMsg("j"))
	}
	assert.Equal(t, store.PageSettings, s.Cursor(), "cursor stops at the last page")
	for range 10 {
		s.Update(keyMsg("k"))
	}
	assert.Equal(t, store.PageDashboard, s.Cursor())

	s.Update(keyMsg("j"))
	s.Update(keyMsg("j"))
	_, cmd := s.Update(keyMsg("enter"))
	assert.Equal(t, NavigateMsg{Page: store.PageCampaigns}, firstMsg[NavigateMsg](t, cmd))
	assert.Equal(t, store.PageLeads, st.State().ActivePage, "the sidebar only asks; the app navigates")
}

func TestSidebar_View(t *testing.T) {
	st := store.New(store.DefaultState())
	s := NewSidebarView(st)
	defer s.Dispose()

	open := s.View()
	for _, want := range []string{"LinkBird", "Overview", "Dashboard", "Settings", userName, userEmail} {
		assert.Contains(t, open, want)
	}
	assert.NotContains(t, open, "›", "no marker while unfocused")

	s.Focused = true
	assert.Contains(t, s.View(), "› ")

	st.ToggleSidebar()
	collapsed := s.View()
	assert.Contains(t, collapsed, "LB")
	assert.NotContains(t, collapsed, "Dashboard")
	for _, g := range []string{"D", "L", "C", "M", "S"} {
		assert.True(t, strings.Contains(collapsed, g), "missing glyph %s", g)
	}
}
