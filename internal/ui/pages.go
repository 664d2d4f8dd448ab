package ui

import (
	"linkbird/internal/store"
)

// pageBuilder mounts a fresh view for a page. The full dataset for the page
// is generated at mount and dropped when the view is disposed.
type pageBuilder func(a *AppModel) (View, error)

var pageBuilders = map[store.Page]pageBuilder{
	store.PageDashboard: func(a *AppModel) (View, error) {
		d := a.Options.Data
		return NewDashboardPage(
			a.Generator.Campaigns(d.Campaigns),
			a.Generator.Leads(d.Leads),
			a.Generator.Accounts(d.Accounts),
			a.Generator.Activity(d.Activity),
		), nil
	},
	store.PageLeads: func(a *AppModel) (View, error) {
		return NewLeadsPage(a.ctx, a.Generator.Leads(a.Options.Data.Leads), a.Options)
	},
	store.PageCampaigns: func(a *AppModel) (View, error) {
		d := a.Options.Data
		return NewCampaignsPage(a.ctx, a.Generator.Campaigns(d.Campaigns), a.Generator.Leads(d.Leads), a.Options), nil
	},
	store.PageMessages: func(*AppModel) (View, error) {
		return NewPlaceholderView("Messages", "Your LinkedIn conversations will appear here."), nil
	},
	store.PageSettings: func(*AppModel) (View, error) {
		return NewPlaceholderView("Settings", "Account and workspace settings will appear here."), nil
	},
}
