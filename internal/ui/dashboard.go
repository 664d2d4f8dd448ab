package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"linkbird/internal/crm"
	"linkbird/internal/ui/textutil"
)

// Rows shown per dashboard widget.
const dashboardWidgetRows = 5

// DashboardPage summarizes campaigns, lead statuses, sender accounts and
// recent activity in four widgets.
type DashboardPage struct {
	Campaigns []crm.Campaign
	Leads     []crm.Lead
	Accounts  []crm.Account
	Activity  []crm.Activity

	summary     crm.CampaignSummary
	campaignMix []crm.StatusCount[crm.CampaignStatus]
	breakdown   []crm.StatusCount[crm.LeadStatus]
	bar       progress.Model
	width     int
}

var _ View = (*DashboardPage)(nil)

// NewDashboardPage builds the widgets from the given records.
func NewDashboardPage(campaigns []crm.Campaign, leads []crm.Lead, accounts []crm.Account, activity []crm.Activity) *DashboardPage {
	return &DashboardPage{
		Campaigns: campaigns,
		Leads:     leads,
		Accounts:  accounts,
		Activity:  activity,
		summary:     crm.SummarizeCampaigns(campaigns),
		campaignMix: crm.CampaignStatusBreakdown(campaigns),
		breakdown:   crm.LeadStatusBreakdown(leads),
		bar:         newProgressBar(10),
		width:       defaultWidth - sidebarOpenWidth,
	}
}

// Init implements View.
func (d *DashboardPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardPage) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		d.width = ws.Width
	}
	return d, nil
}

// View implements View.
func (d *DashboardPage) View() string {
	w := max((d.width-3)/2, 30)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		widget("Campaigns", d.campaignsWidget(w-4), w),
		widget("Lead Status", d.statusWidget(w-4), w),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		widget("LinkedIn Accounts", d.accountsWidget(w-4), w),
		widget("Recent Activity", d.activityWidget(w-4), w),
	)
	return Styles.Title.Render("Dashboard") + "\n" + top + "\n" + bottom
}

func widget(title, body string, width int) string {
	return Styles.Card.Width(width).MarginRight(1).Render(Styles.Section.Render(title) + "\n" + body)
}

func (d *DashboardPage) campaignsWidget(inner int) string {
	if len(d.Campaigns) == 0 {
		return Styles.Empty.Render("No campaigns yet.")
	}
	s := d.summary
	var b strings.Builder
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d active · %s leads · %.2f%% response",
		s.Active, humanize.Comma(int64(s.TotalLeads)), s.ResponseRate)) + "\n")
	var mix []string
	for _, sc := range d.campaignMix {
		if sc.Count > 0 {
			mix = append(mix, CampaignStatusStyle(sc.Status).Render(fmt.Sprintf("%s %d", sc.Status, sc.Count)))
		}
	}
	b.WriteString(strings.Join(mix, " ") + "\n")
	widths := []int{inner - 22, 10, 10}
	for _, c := range d.Campaigns[:min(dashboardWidgetRows, len(d.Campaigns))] {
		status := CampaignStatusStyle(c.Status).Render(textutil.PadRight(string(c.Status), widths[1]))
		b.WriteString(textutil.Row(widths, true, c.Name, status, fmt.Sprintf("%.1f%%", c.SuccessRate())) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *DashboardPage) statusWidget(inner int) string {
	if len(d.Leads) == 0 {
		return Styles.Empty.Render("No leads yet.")
	}
	var b strings.Builder
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%s leads", humanize.Comma(int64(len(d.Leads))))) + "\n")
	widths := []int{inner - 26, 10, 4, 8}
	for _, sc := range d.breakdown {
		label := LeadStatusStyle(sc.Status).Render(textutil.PadRight(string(sc.Status), widths[0]))
		b.WriteString(textutil.Row(widths, true,
			label, d.bar.ViewAs(sc.Percent/100), fmt.Sprintf("%d", sc.Count), fmt.Sprintf("%.1f%%", sc.Percent)) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *DashboardPage) accountsWidget(inner int) string {
	if len(d.Accounts) == 0 {
		return Styles.Empty.Render("No accounts connected.")
	}
	var b strings.Builder
	widths := []int{inner - 32, 12, 10, 7}
	for _, a := range d.Accounts[:min(dashboardWidgetRows+1, len(d.Accounts))] {
		status := AccountStatusStyle(a.Status).Render(textutil.PadRight(string(a.Status), widths[1]))
		b.WriteString(textutil.Row(widths, true,
			a.Name, status, d.bar.ViewAs(a.Usage()/100), fmt.Sprintf("%d/%d", a.Requests, a.TotalRequests)) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (d *DashboardPage) activityWidget(inner int) string {
	if len(d.Activity) == 0 {
		return Styles.Empty.Render("No recent activity.")
	}
	var b strings.Builder
	for _, a := range d.Activity[:min(dashboardWidgetRows+1, len(d.Activity))] {
		when := humanize.Time(a.At)
		b.WriteString(textutil.Row([]int{inner - 14, 13}, true,
			Styles.Normal.Render(textutil.Truncate(a.Lead+" · "+string(a.Kind), inner-14)),
			Styles.Muted.Render(when)) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
