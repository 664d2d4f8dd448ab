package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/crm"
)

// LeadsPage is the infinitely scrolling leads table.
type LeadsPage struct {
	table *leadTable
}

var (
	_ View       = (*LeadsPage)(nil)
	_ KeyClaimer = (*LeadsPage)(nil)
	_ Disposer   = (*LeadsPage)(nil)
	_ searcher   = (*LeadsPage)(nil)
)

// NewLeadsPage shows the first page of leads.
func NewLeadsPage(ctx context.Context, leads []crm.Lead, opts Options) (*LeadsPage, error) {
	t, err := newLeadTable(ctx, "leads", leads, opts)
	if err != nil {
		return nil, err
	}
	return &LeadsPage{table: t}, nil
}

// ClaimsKey implements KeyClaimer: every key goes to the search box while it is open.
func (p *LeadsPage) ClaimsKey(string) bool {
	return p.table.filtering
}

// Dispose implements Disposer.
func (p *LeadsPage) Dispose() {
	p.table.close()
}

// StartSearch opens the search box.
func (p *LeadsPage) StartSearch() tea.Cmd {
	return p.table.startSearch()
}

// Init implements View.
func (p *LeadsPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *LeadsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" && !p.table.filtering {
		p.table.clearFilter()
		return p, nil
	}
	return p, p.table.update(msg)
}

// View implements View.
func (p *LeadsPage) View() string {
	return Styles.Title.Render("Leads") + "\n" + p.table.view()
}
