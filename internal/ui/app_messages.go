package ui

import (
	"linkbird/internal/crm"
	"linkbird/internal/store"
)

// NavigateMsg switches the active page (SPC g …, sidebar enter, page switcher).
type NavigateMsg struct {
	Page store.Page
}

// ToggleSidebarMsg opens or collapses the sidebar (SPC b).
type ToggleSidebarMsg struct{}

// FocusNextMsg moves focus between the sidebar and the page (tab).
type FocusNextMsg struct{}

// LoginMsg is sent by the auth modal's login form.
type LoginMsg struct {
	Email string
}

// ShowLogoutConfirmMsg asks before logging out (SPC o).
type ShowLogoutConfirmMsg struct{}

// LogoutMsg is sent when the user confirms logout.
type LogoutMsg struct{}

// OpenAuthModalMsg shows the auth modal over a logged-in session (SPC a).
type OpenAuthModalMsg struct{}

// ShowPageSwitcherMsg opens the page picker (SPC SPC).
type ShowPageSwitcherMsg struct{}

// ShowLeadSheetMsg opens the side sheet for a lead row.
type ShowLeadSheetMsg struct {
	Lead crm.Lead
}

// DismissModalMsg is sent when the user dismisses the top overlay.
type DismissModalMsg struct{}

// StartSearchMsg opens the search box of the current page (SPC /).
type StartSearchMsg struct{}
