package store

import (
	"errors"
	"fmt"
	"strings"
)

// Page is one top-level screen of the dashboard.
type Page int

const (
	PageDashboard Page = iota
	PageLeads
	PageCampaigns
	PageMessages
	PageSettings
)

// ErrUnknownPage is returned by ParsePage for names that are not a Page.
var ErrUnknownPage = errors.New("unknown page")

// Pages lists every page in sidebar order.
func Pages() []Page {
	return []Page{PageDashboard, PageLeads, PageCampaigns, PageMessages, PageSettings}
}

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageLeads:
		return "Leads"
	case PageCampaigns:
		return "Campaigns"
	case PageMessages:
		return "Messages"
	case PageSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// ParsePage maps a page name (case-insensitive) to its Page.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages() {
		if strings.EqualFold(p.String(), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// MarshalText implements encoding.TextMarshaler so pages read naturally in YAML.
func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Page) UnmarshalText(b []byte) error {
	v, err := ParsePage(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
