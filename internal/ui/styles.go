package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"linkbird/internal/crm"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for warning details
	ColorInfo      = "39"  // Blue - for neutral badges
	ColorSuccess   = "42"  // Green - for positive badges
	ColorPurple    = "141" // Purple - for connected accounts
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Box        lipgloss.Style // Standard box with rounded border (accent border)
	BoxDanger  lipgloss.Style // Warning/error box (danger border)
	BoxCompact lipgloss.Style // Compact box with less padding (for lists)
	Card       lipgloss.Style // Dashboard widget and stat card
	Sheet      lipgloss.Style // Lead side sheet

	// Text styles
	Selected lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Status   lipgloss.Style // Status indicators (accent color)
	Section  lipgloss.Style // Section headers (highlight color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Label    lipgloss.Style // Modal label/content (default)
	Details  lipgloss.Style // Warning details (warning color)
	Big      lipgloss.Style // Stat card figures

	// Shell
	Breadcrumb lipgloss.Style
	Sidebar    lipgloss.Style
	NavActive  lipgloss.Style
	NavItem    lipgloss.Style
	TabActive  lipgloss.Style
	Tab        lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Sheet: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Big: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Breadcrumb: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorDim)).
		PaddingRight(1),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
// This factory standardizes list delegate configuration across the codebase.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}

// NewTableStyles returns bubbles/table styles matching the theme.
func NewTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	return s
}

func badge(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// LeadStatusStyle colors a lead status badge.
func LeadStatusStyle(s crm.LeadStatus) lipgloss.Style {
	switch s {
	case crm.LeadPendingApproval:
		return badge(ColorPurple)
	case crm.LeadSent:
		return badge(ColorWarning)
	case crm.LeadConnected:
		return badge(ColorSuccess)
	case crm.LeadDoNotContact:
		return badge(ColorDanger)
	case crm.LeadFollowup:
		return badge(ColorInfo)
	}
	return Styles.Muted
}

// CampaignStatusStyle colors a campaign status badge.
func CampaignStatusStyle(s crm.CampaignStatus) lipgloss.Style {
	switch s {
	case crm.CampaignActive:
		return badge(ColorSuccess)
	case crm.CampaignPaused:
		return badge(ColorWarning)
	case crm.CampaignCompleted:
		return badge(ColorInfo)
	}
	return Styles.Muted
}

// AccountStatusStyle colors an account status badge.
func AccountStatusStyle(s crm.AccountStatus) lipgloss.Style {
	switch s {
	case crm.AccountConnected:
		return badge(ColorSuccess)
	case crm.AccountWarmingUp:
		return badge(ColorWarning)
	case crm.AccountDisconnected:
		return badge(ColorDanger)
	}
	return Styles.Muted
}
