package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"linkbird/internal/crm"
	"linkbird/internal/paginator"
)

// leadTable lists leads a page at a time. Moving the cursor onto the last
// row (the sentinel) asks the paginator for the next page; so does a window
// tall enough to show every row.
type leadTable struct {
	pager     *paginator.Paginator[crm.Lead]
	table     table.Model
	spinner   spinner.Model
	filter    textinput.Model
	filtering bool
	rows      []crm.Lead // visible window after filtering, in table order
	ctx       context.Context
	width     int
	height    int
	emptyText string
}

// Lines the table shares with its search bar and footer.
const leadTableChrome = 3

func newLeadTable(ctx context.Context, name string, leads []crm.Lead, opts Options) (*leadTable, error) {
	p, err := paginator.New(leads, opts.PageSize,
		paginator.WithDelay(opts.LoadDelay),
		paginator.WithName(name),
		paginator.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%s table: %w", name, err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "Search leads..."
	f.Width = 30

	t := &leadTable{
		pager:     p,
		spinner:   s,
		filter:    f,
		ctx:       ctx,
		emptyText: "No leads.",
		table: table.New(
			table.WithColumns(leadColumns(defaultWidth-sidebarOpenWidth)),
			table.WithFocused(true),
			table.WithHeight(defaultHeight-headerHeight-footerHeight-leadTableChrome),
			table.WithStyles(NewTableStyles()),
		),
	}
	t.refresh()
	return t, nil
}

// leadColumns splits width across the six lead columns.
func leadColumns(width int) []table.Column {
	avail := max(width-12, 60) // two cells of padding per column
	w := func(pct int) int { return avail * pct / 100 }
	return []table.Column{
		{Title: "Name", Width: w(19)},
		{Title: "Campaign", Width: w(12)},
		{Title: "Email", Width: w(27)},
		{Title: "Activity", Width: w(8)},
		{Title: "Status", Width: w(15)},
		{Title: "Last Contact", Width: w(19)},
	}
}

// activityBar draws one block per history step.
func activityBar(l crm.Lead) string {
	n := min(len(l.History), len(crm.ActivityKinds()))
	return strings.Repeat("▮", n) + strings.Repeat("▯", len(crm.ActivityKinds())-n)
}

func (t *leadTable) query() string {
	return strings.TrimSpace(t.filter.Value())
}

// refresh rebuilds the rows from the paginator's visible window.
func (t *leadTable) refresh() {
	t.rows = crm.FilterLeads(t.pager.Visible(), t.query())
	rows := make([]table.Row, len(t.rows))
	for i, l := range t.rows {
		rows[i] = table.Row{l.Name, l.Campaign, l.Email, activityBar(l), string(l.Status), l.LastContactText}
	}
	cursor := t.table.Cursor()
	t.table.SetRows(rows)
	t.table.SetCursor(max(min(cursor, len(rows)-1), 0))
}

func (t *leadTable) resize(width, height int) {
	t.width, t.height = width, height
	t.table.SetColumns(leadColumns(width))
	t.table.SetWidth(width)
	t.table.SetHeight(max(height-leadTableChrome, 3))
}

// sentinelVisible reports whether the row after the last one is on screen.
func (t *leadTable) sentinelVisible() bool {
	n := len(t.rows)
	if n == 0 {
		return t.query() != ""
	}
	return t.table.Cursor() >= n-1 || n < t.table.Height()
}

// maybeLoad requests the next page when the sentinel is visible. The
// paginator ignores the request while loading or once exhausted.
func (t *leadTable) maybeLoad() tea.Cmd {
	if !t.sentinelVisible() {
		return nil
	}
	cmd := t.pager.LoadMore(t.ctx)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, t.spinner.Tick)
}

// Selected returns the lead under the cursor.
func (t *leadTable) Selected() (crm.Lead, bool) {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.rows) {
		return crm.Lead{}, false
	}
	return t.rows[i], true
}

func (t *leadTable) close() {
	t.pager.Close()
}

func (t *leadTable) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case paginator.LoadedMsg:
		if !t.pager.Apply(msg) {
			return nil
		}
		t.refresh()
		return t.maybeLoad()
	case spinner.TickMsg:
		if !t.pager.Loading() {
			return nil
		}
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		t.resize(msg.Width, msg.Height)
		return t.maybeLoad()
	case tea.KeyMsg:
		if t.filtering {
			return t.updateFilter(msg)
		}
		switch msg.String() {
		case "/":
			return t.startSearch()
		case "enter":
			if l, ok := t.Selected(); ok {
				return func() tea.Msg { return ShowLeadSheetMsg{Lead: l} }
			}
			return nil
		}
		var cmd tea.Cmd
		t.table, cmd = t.table.Update(msg)
		return tea.Batch(cmd, t.maybeLoad())
	}
	if t.filtering {
		var cmd tea.Cmd
		t.filter, cmd = t.filter.Update(msg)
		return cmd
	}
	return nil
}

func (t *leadTable) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		t.filter.Reset()
		t.stopFiltering()
	case "enter":
		t.stopFiltering()
	default:
		var cmd tea.Cmd
		t.filter, cmd = t.filter.Update(msg)
		t.table.SetCursor(0)
		t.refresh()
		return tea.Batch(cmd, t.maybeLoad())
	}
	t.refresh()
	return t.maybeLoad()
}

func (t *leadTable) startSearch() tea.Cmd {
	t.filtering = true
	return t.filter.Focus()
}

func (t *leadTable) stopFiltering() {
	t.filtering = false
	t.filter.Blur()
}

// clearFilter drops a committed query. Reports whether there was one.
func (t *leadTable) clearFilter() bool {
	if t.query() == "" {
		return false
	}
	t.filter.Reset()
	t.refresh()
	return true
}

func (t *leadTable) view() string {
	st := t.pager.Snapshot()
	if st.Total == 0 {
		return Styles.Empty.Render(t.emptyText)
	}

	var b strings.Builder
	switch {
	case t.filtering || t.query() != "":
		b.WriteString(t.filter.View())
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("  %d of %d shown match", len(t.rows), len(st.Visible))))
	default:
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("Showing %d of %d, %d per page  /: search  enter: open",
			len(st.Visible), st.Total, t.pager.PageSize())))
	}
	b.WriteString("\n")
	b.WriteString(t.table.View())
	b.WriteString("\n")
	switch {
	case st.Loading:
		b.WriteString(t.spinner.View() + " Loading more leads...")
	case st.Exhausted:
		b.WriteString(Styles.Muted.Render("No more leads to load."))
	}
	return b.String()
}
