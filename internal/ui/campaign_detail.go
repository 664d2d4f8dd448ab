package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"linkbird/internal/crm"
	"linkbird/internal/ui/textutil"
)

// CampaignTab is a tab of the campaign detail view.
type CampaignTab int

const (
	TabOverview CampaignTab = iota
	TabLeads
	TabSequence
	TabSettings
)

var campaignTabNames = []string{"Overview", "Leads", "Sequence", "Settings"}

func (t CampaignTab) String() string {
	if t < 0 || int(t) >= len(campaignTabNames) {
		return "Unknown"
	}
	return campaignTabNames[t]
}

// Lines above the tab body: back hint, title, tabs and a blank.
const campaignDetailChrome = 5

// CampaignDetail shows one campaign across four tabs.
type CampaignDetail struct {
	Campaign crm.Campaign
	Tab      CampaignTab

	leads  *leadTable
	bar    progress.Model
	opts   Options
	width  int
	height int
}

var (
	_ View       = (*CampaignDetail)(nil)
	_ KeyClaimer = (*CampaignDetail)(nil)
	_ Disposer   = (*CampaignDetail)(nil)
)

// NewCampaignDetail opens c on its Overview tab. leads are the campaign's
// leads; the Leads tab pages through them.
func NewCampaignDetail(ctx context.Context, c crm.Campaign, leads []crm.Lead, opts Options) (*CampaignDetail, error) {
	t, err := newLeadTable(ctx, "campaign-leads", leads, opts)
	if err != nil {
		return nil, err
	}
	t.emptyText = "No leads in this campaign."
	return &CampaignDetail{
		Campaign: c,
		leads:    t,
		bar:      newProgressBar(30),
		opts:     opts,
	}, nil
}

// ClaimsKey implements KeyClaimer. Esc stays here while the Leads tab
// has a search open or applied.
func (d *CampaignDetail) ClaimsKey(key string) bool {
	if d.Tab != TabLeads {
		return false
	}
	return d.leads.filtering || (key == "esc" && d.leads.query() != "")
}

// Dispose implements Disposer.
func (d *CampaignDetail) Dispose() {
	d.leads.close()
}

// Init implements View.
func (d *CampaignDetail) Init() tea.Cmd {
	return nil
}

// SetTab switches tabs. Entering Leads may start a load.
func (d *CampaignDetail) SetTab(t CampaignTab) tea.Cmd {
	n := CampaignTab(len(campaignTabNames))
	d.Tab = (t%n + n) % n
	if d.Tab == TabLeads {
		return d.leads.maybeLoad()
	}
	return nil
}

// Update implements View.
func (d *CampaignDetail) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.leads.resize(msg.Width, max(msg.Height-campaignDetailChrome, 4))
		if d.Tab == TabLeads {
			return d, d.leads.maybeLoad()
		}
		return d, nil
	case tea.KeyMsg:
		if d.Tab == TabLeads && d.leads.filtering {
			return d, d.leads.update(msg)
		}
		switch s := msg.String(); s {
		case "tab", "right", "l":
			return d, d.SetTab(d.Tab + 1)
		case "shift+tab", "left", "h":
			return d, d.SetTab(d.Tab - 1)
		case "1", "2", "3", "4":
			return d, d.SetTab(CampaignTab(s[0] - '1'))
		case "esc":
			d.leads.clearFilter()
			return d, nil
		}
		if d.Tab == TabLeads {
			return d, d.leads.update(msg)
		}
		return d, nil
	}
	// Loads and spinner ticks finish even while another tab is showing.
	return d, d.leads.update(msg)
}

// View implements View.
func (d *CampaignDetail) View() string {
	c := d.Campaign
	var b strings.Builder
	b.WriteString(Styles.Hint.Render("‹ Campaigns (esc)") + "\n")
	b.WriteString(Styles.Title.Render(c.Name) + "  " + CampaignStatusStyle(c.Status).Render(string(c.Status)) + "\n")
	b.WriteString(d.tabs() + "\n\n")
	switch d.Tab {
	case TabOverview:
		b.WriteString(d.overview())
	case TabLeads:
		b.WriteString(d.leads.view())
	case TabSequence:
		b.WriteString(d.sequence())
	case TabSettings:
		b.WriteString(d.settings())
	}
	return b.String()
}

func (d *CampaignDetail) tabs() string {
	parts := make([]string, len(campaignTabNames))
	for i, name := range campaignTabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if CampaignTab(i) == d.Tab {
			parts[i] = Styles.TabActive.Render(label)
		} else {
			parts[i] = Styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, "   ")
}

func (d *CampaignDetail) overview() string {
	c := d.Campaign
	w := max((d.width-8)/4, 14)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Leads", humanize.Comma(int64(c.TotalLeads)), w),
		statCard("Successful Leads", humanize.Comma(int64(c.SuccessfulLeads)), w),
		statCard("Success Rate", fmt.Sprintf("%.2f%%", c.SuccessRate()), w),
		statCard("Listed Leads", humanize.Comma(int64(d.leads.pager.Total())), w),
	)
	var b strings.Builder
	b.WriteString(cards + "\n\n")
	b.WriteString(Styles.Section.Render("Campaign Progress") + "\n")
	b.WriteString(d.bar.ViewAs(float64(c.Progress)/100) + fmt.Sprintf(" %d%%", c.Progress) + "\n\n")
	b.WriteString(Styles.Section.Render("Campaign Details") + "\n")
	b.WriteString(detailRow("Created", c.CreatedAt.Format("Jan 2, 2006")+" ("+humanize.RelTime(c.CreatedAt, d.opts.now(), "ago", "from now")+")"))
	b.WriteString(detailRow("Status", string(c.Status)))
	b.WriteString(detailRow("Sequence", fmt.Sprintf("%d steps", len(c.Steps))))
	b.WriteString(detailRow("Daily limit", fmt.Sprintf("%d requests", c.Settings.DailyLimit)))
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *CampaignDetail) sequence() string {
	steps := d.Campaign.Steps
	if len(steps) == 0 {
		return Styles.Empty.Render("This campaign has no steps.")
	}
	var b strings.Builder
	for i, s := range steps {
		b.WriteString(Styles.Label.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, s.Kind)))
		b.WriteString(Styles.Muted.Render("  " + stepDelay(s.Delay)) + "\n")
		b.WriteString(Styles.Normal.Width(max(d.width-4, 20)).Render("   "+s.Template) + "\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n\n")
}

func stepDelay(d time.Duration) string {
	if d <= 0 {
		return "immediately"
	}
	days := int(d / (24 * time.Hour))
	if days >= 1 {
		return "after " + english.Plural(days, "day", "days")
	}
	return "after " + d.String()
}

func (d *CampaignDetail) settings() string {
	s := d.Campaign.Settings
	var b strings.Builder
	b.WriteString(detailRow("Daily limit", fmt.Sprintf("%d", s.DailyLimit)))
	b.WriteString(detailRow("Autopilot", onOff(s.Autopilot)))
	b.WriteString(detailRow("Personalize messages", onOff(s.PersonalizeMessages)))
	b.WriteString(detailRow("Send on weekends", onOff(s.SendOnWeekends)))
	return strings.TrimSuffix(b.String(), "\n")
}

func detailRow(label, value string) string {
	return textutil.Row([]int{22}, false, Styles.Muted.Render(label), Styles.Normal.Render(value)) + "\n"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
