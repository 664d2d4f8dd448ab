package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/store"
)

// PageSwitcherModal is a filterable list of pages.
type PageSwitcherModal struct {
	list list.Model
}

type pageItem store.Page

func (p pageItem) FilterValue() string { return store.Page(p).String() }
func (p pageItem) Title() string       { return store.Page(p).String() }
func (p pageItem) Description() string { return "" }

var (
	_ View       = (*PageSwitcherModal)(nil)
	_ KeyClaimer = (*PageSwitcherModal)(nil)
)

// NewPageSwitcherModal creates a picker with current preselected.
func NewPageSwitcherModal(current store.Page) *PageSwitcherModal {
	pages := store.Pages()
	items := make([]list.Item, len(pages))
	sel := 0
	for i, p := range pages {
		items[i] = pageItem(p)
		if p == current {
			sel = i
		}
	}
	l := list.New(items, NewCompactListDelegate(), 32, 10)
	l.Title = "Go to page"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Select(sel)
	return &PageSwitcherModal{list: l}
}

// ClaimsKey keeps esc inside the list while a filter is being typed.
func (m *PageSwitcherModal) ClaimsKey(key string) bool {
	return m.list.FilterState() == list.Filtering
}

// Init implements View.
func (m *PageSwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *PageSwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch km.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(pageItem); ok {
				return m, func() tea.Msg { return NavigateMsg{Page: store.Page(sel)} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PageSwitcherModal) View() string {
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render("Enter: go  /: filter  Esc: cancel"))
}
