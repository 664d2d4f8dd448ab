package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen or major UI region with its own update and render (Elm-style).
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
}

// KeyClaimer is implemented by views that need a key before the global
// keybinds see it, e.g. while a text input has focus.
type KeyClaimer interface {
	ClaimsKey(key string) bool
}

// Disposer is implemented by views that hold resources, such as a
// paginator's pending load, that must be released when the view is dropped.
type Disposer interface {
	Dispose()
}

// searcher is implemented by pages with a search box.
type searcher interface {
	StartSearch() tea.Cmd
}

// dispose releases v if it holds resources.
func dispose(v View) {
	if d, ok := v.(Disposer); ok {
		d.Dispose()
	}
}

// claimsKey reports whether v wants key before the keybind system.
func claimsKey(v View, key string) bool {
	c, ok := v.(KeyClaimer)
	return ok && c.ClaimsKey(key)
}
