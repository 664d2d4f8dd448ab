package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/crm"
	"linkbird/internal/ui/textutil"
)

const leadSheetWidth = 64

// LeadSheet shows one lead's profile and interaction history.
// Shown as overlay; Esc dismisses.
type LeadSheet struct {
	Lead     crm.Lead
	viewport viewport.Model
}

var _ View = (*LeadSheet)(nil)

// NewLeadSheet creates a sheet for l, at most height lines tall.
func NewLeadSheet(l crm.Lead, height int) *LeadSheet {
	vp := viewport.New(leadSheetWidth-4, max(height-4, 8))
	s := &LeadSheet{Lead: l, viewport: vp}
	s.viewport.SetContent(s.content())
	return s
}

func (s *LeadSheet) content() string {
	l := s.Lead
	inner := leadSheetWidth - 6
	var b strings.Builder
	b.WriteString(Styles.Big.Render(l.Name) + "\n")
	if l.Title != "" {
		b.WriteString(Styles.Muted.Render(textutil.Truncate(l.Title+" at "+l.Company, inner)) + "\n")
	}
	if l.Location != "" {
		b.WriteString(Styles.Muted.Render(l.Location) + "\n")
	}
	b.WriteString(LeadStatusStyle(l.Status).Render(string(l.Status)) + Styles.Muted.Render("  "+l.Email) + "\n")
	b.WriteString(Styles.Muted.Render(l.Campaign+" · "+l.LastContactText) + "\n\n")

	b.WriteString(Styles.Section.Render("Additional Profile Info") + "\n")
	b.WriteString(Styles.Normal.Render("This section would contain more detailed information about the lead.") + "\n\n")

	b.WriteString(Styles.Section.Render("Interaction History") + "\n")
	if len(l.History) == 0 {
		b.WriteString(Styles.Empty.Render("No interactions yet.") + "\n")
	}
	for _, a := range l.History {
		at := a.At.Format(time.Kitchen)
		b.WriteString(textutil.Row([]int{inner - 9, 8}, true, Styles.Label.Bold(true).Render(string(a.Kind)), Styles.Muted.Render(at)) + "\n")
		b.WriteString(Styles.Normal.Width(inner).Render(a.Message) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Init implements View.
func (s *LeadSheet) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *LeadSheet) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, func() tea.Msg { return DismissModalMsg{} }
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View implements View.
func (s *LeadSheet) View() string {
	header := Styles.Title.Render("Lead Profile")
	pct := fmt.Sprintf("%3.0f%%", s.viewport.ScrollPercent()*100)
	footer := textutil.Row([]int{leadSheetWidth - 12, 5}, true, Styles.Hint.Render("j/k: scroll  Esc: close"), Styles.Hint.Render(pct))
	return Styles.Sheet.Width(leadSheetWidth).Render(header + "\n\n" + s.viewport.View() + "\n" + footer)
}
