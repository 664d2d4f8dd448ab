package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question before an action such as logging out.
// y or Enter sends OnConfirm's message; n or Esc dismisses.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning under the label
	OnConfirm tea.Cmd
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm tea.Cmd) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails sets the warning line.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "enter":
		return m, m.OnConfirm
	case "n", "esc":
		return m, func() tea.Msg { return DismissModalMsg{} }
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	body := Styles.TitleWarning.Render(m.Title) + "\n\n" + Styles.Label.Render(m.Label)
	if m.Details != "" {
		body += "\n" + Styles.Details.Render(m.Details)
	}
	return Styles.BoxDanger.Render(body + "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel"))
}
