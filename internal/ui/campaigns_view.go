package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"linkbird/internal/crm"
	"linkbird/internal/ui/textutil"
)

// Campaign table column widths: name, status, total, successful, progress, created.
var campaignColumns = []int{14, 10, 7, 10, 18, 14}

// Lines above the campaign rows: title, cards, search and header.
const campaignsChrome = 10

// CampaignsPage shows the campaign stats cards and the campaign table.
// Enter pushes a CampaignDetail; Esc pops it.
type CampaignsPage struct {
	all     []crm.Campaign
	shown   []crm.Campaign
	leads   []crm.Lead // pool the detail Leads tab draws from
	summary crm.CampaignSummary

	cursor    int
	offset    int
	filter    textinput.Model
	filtering bool
	bar       progress.Model
	detail    ViewStack

	ctx    context.Context
	opts   Options
	width  int
	height int
}

var (
	_ View       = (*CampaignsPage)(nil)
	_ KeyClaimer = (*CampaignsPage)(nil)
	_ Disposer   = (*CampaignsPage)(nil)
	_ searcher   = (*CampaignsPage)(nil)
)

// NewCampaignsPage lists campaigns. leads feeds the per-campaign Leads tab.
func NewCampaignsPage(ctx context.Context, campaigns []crm.Campaign, leads []crm.Lead, opts Options) *CampaignsPage {
	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "Search campaigns..."
	f.Width = 30
	return &CampaignsPage{
		all:     campaigns,
		shown:   campaigns,
		leads:   leads,
		summary: crm.SummarizeCampaigns(campaigns),
		filter:  f,
		bar:     newProgressBar(12),
		ctx:     ctx,
		opts:    opts,
		width:   defaultWidth - sidebarOpenWidth,
		height:  defaultHeight - headerHeight - footerHeight,
	}
}

func newProgressBar(width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(ColorAccent),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Detail returns the open campaign detail, or nil.
func (p *CampaignsPage) Detail() *CampaignDetail {
	d, _ := p.detail.Peek().(*CampaignDetail)
	return d
}

// ClaimsKey implements KeyClaimer.
func (p *CampaignsPage) ClaimsKey(key string) bool {
	if top := p.detail.Peek(); top != nil {
		return key == "tab" || key == "shift+tab" || claimsKey(top, key)
	}
	return p.filtering
}

// Dispose implements Disposer.
func (p *CampaignsPage) Dispose() {
	p.detail.Clear()
}

// StartSearch opens the campaign search box, or the lead search when a
// campaign's Leads tab is showing.
func (p *CampaignsPage) StartSearch() tea.Cmd {
	if d := p.Detail(); d != nil {
		if d.Tab != TabLeads {
			return nil
		}
		return d.leads.startSearch()
	}
	p.filtering = true
	return p.filter.Focus()
}

// Init implements View.
func (p *CampaignsPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *CampaignsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		p.width, p.height = ws.Width, ws.Height
		p.clampScroll()
	}
	if top := p.detail.Peek(); top != nil {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" && !claimsKey(top, "esc") {
			dispose(p.detail.Pop())
			return p, nil
		}
		v, cmd := top.Update(msg)
		p.detail.Replace(v)
		return p, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.filtering {
			var cmd tea.Cmd
			p.filter, cmd = p.filter.Update(msg)
			return p, cmd
		}
		return p, nil
	}
	if p.filtering {
		return p, p.updateFilter(km)
	}

	switch km.String() {
	case "/":
		return p, p.StartSearch()
	case "esc":
		if p.filter.Value() != "" {
			p.filter.Reset()
			p.refilter()
		}
	case "j", "down":
		p.move(1)
	case "k", "up":
		p.move(-1)
	case "pgdown", "ctrl+d":
		p.move(p.rowsHeight())
	case "pgup", "ctrl+u":
		p.move(-p.rowsHeight())
	case "g", "home":
		p.move(-len(p.shown))
	case "G", "end":
		p.move(len(p.shown))
	case "enter":
		return p, p.openDetail()
	}
	return p, nil
}

func (p *CampaignsPage) updateFilter(km tea.KeyMsg) tea.Cmd {
	switch km.String() {
	case "esc":
		p.filter.Reset()
		p.filtering = false
		p.filter.Blur()
	case "enter":
		p.filtering = false
		p.filter.Blur()
	default:
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(km)
		p.refilter()
		return cmd
	}
	p.refilter()
	return nil
}

func (p *CampaignsPage) refilter() {
	p.shown = crm.FilterCampaigns(p.all, strings.TrimSpace(p.filter.Value()))
	p.cursor, p.offset = 0, 0
}

func (p *CampaignsPage) openDetail() tea.Cmd {
	if p.cursor >= len(p.shown) {
		return nil
	}
	c := p.shown[p.cursor]
	d, err := NewCampaignDetail(p.ctx, c, crm.LeadsInCampaign(p.leads, c.Name), p.opts)
	if err != nil {
		p.opts.Logger.Error().Err(err).Str("campaign", c.ID).Msg("open campaign")
		return nil
	}
	p.detail.Push(d)
	_, cmd := d.Update(tea.WindowSizeMsg{Width: p.width, Height: p.height})
	return tea.Batch(d.Init(), cmd)
}

func (p *CampaignsPage) rowsHeight() int {
	return max(p.height-campaignsChrome, 3)
}

func (p *CampaignsPage) move(delta int) {
	if len(p.shown) == 0 {
		return
	}
	p.cursor = max(min(p.cursor+delta, len(p.shown)-1), 0)
	p.clampScroll()
}

func (p *CampaignsPage) clampScroll() {
	h := p.rowsHeight()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+h {
		p.offset = p.cursor - h + 1
	}
}

// View implements View.
func (p *CampaignsPage) View() string {
	if top := p.detail.Peek(); top != nil {
		return top.View()
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Campaigns") + "\n")
	b.WriteString(p.cards() + "\n")
	if p.filtering || p.filter.Value() != "" {
		b.WriteString(p.filter.View() + Styles.Muted.Render(fmt.Sprintf("  %d of %d match", len(p.shown), len(p.all))))
	} else {
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("%d campaigns  /: search  enter: open", len(p.all))))
	}
	b.WriteString("\n\n")

	if len(p.all) == 0 {
		b.WriteString(Styles.Empty.Render("No campaigns yet."))
		return b.String()
	}
	b.WriteString(Styles.Title.Render(textutil.Row(campaignColumns, false,
		"  Campaign", "Status", "Total", "Successful", "Progress", "Created")) + "\n")
	if len(p.shown) == 0 {
		b.WriteString(Styles.Empty.Render("No campaigns match."))
		return b.String()
	}
	end := min(p.offset+p.rowsHeight(), len(p.shown))
	for i := p.offset; i < end; i++ {
		b.WriteString(p.row(i) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (p *CampaignsPage) row(i int) string {
	c := p.shown[i]
	name := "  " + c.Name
	if i == p.cursor {
		name = Styles.Selected.Render("› " + c.Name)
	}
	status := CampaignStatusStyle(c.Status).Render(textutil.PadRight(string(c.Status), campaignColumns[1]))
	bar := p.bar.ViewAs(float64(c.Progress)/100) + fmt.Sprintf(" %3d%%", c.Progress)
	created := humanize.RelTime(c.CreatedAt, p.opts.now(), "ago", "from now")
	return textutil.Row(campaignColumns, false,
		name, status, humanize.Comma(int64(c.TotalLeads)), humanize.Comma(int64(c.SuccessfulLeads)), bar, created)
}

// cards renders the four headline stats side by side.
func (p *CampaignsPage) cards() string {
	s := p.summary
	w := max((p.width-8)/4, 14)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Leads", humanize.Comma(int64(s.TotalLeads)), w),
		statCard("Successful Leads", humanize.Comma(int64(s.SuccessfulLeads)), w),
		statCard("Response Rate", fmt.Sprintf("%.2f%%", s.ResponseRate), w),
		statCard("Active Campaigns", fmt.Sprintf("%d", s.Active), w),
	)
}

func statCard(label, value string, width int) string {
	return Styles.Card.Width(width).MarginRight(1).Render(Styles.Muted.Render(label) + "\n" + Styles.Big.Render(value))
}
