package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderView is a page with a title and a short note.
type PlaceholderView struct {
	Title string
	Body  string
}

var _ View = (*PlaceholderView)(nil)

// NewPlaceholderView creates a placeholder page.
func NewPlaceholderView(title, body string) *PlaceholderView {
	return &PlaceholderView{Title: title, Body: body}
}

// Init implements View.
func (p *PlaceholderView) Init() tea.Cmd { return nil }

// Update implements View.
func (p *PlaceholderView) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *PlaceholderView) View() string {
	return Styles.Title.Render(p.Title) + "\n\n" + Styles.Empty.Render(p.Body)
}
