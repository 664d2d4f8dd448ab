package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/store"
)

// handleKey routes a key press. Order: ctrl+c, auth modal, top overlay,
// page-claimed keys, global keybinds, then the focused panel.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	if a.Auth != nil {
		v, cmd := a.Auth.Update(msg)
		a.Auth = v.(*AuthModal)
		return cmd
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) && !claimsKey(top.View, s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if a.Focus.Is(FocusContent) && a.Page != nil && claimsKey(a.Page, s) && !a.leaderWaiting() {
		return a.updatePage(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	if a.Focus.Is(FocusSidebar) {
		v, cmd := a.Sidebar.Update(msg)
		a.Sidebar = v.(*SidebarView)
		return cmd
	}
	return a.updatePage(msg)
}

func (a *AppModel) leaderWaiting() bool {
	return a.KeyHandler != nil && a.KeyHandler.LeaderWaiting
}

func (a *AppModel) updatePage(msg tea.Msg) tea.Cmd {
	if a.Page == nil {
		return nil
	}
	v, cmd := a.Page.Update(msg)
	a.Page = v
	return cmd
}

// broadcast delivers a non-key message to every live view. Spinner ticks,
// cursor blinks and paginator loads carry ids, so views ignore foreign ones.
func (a *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if a.Auth != nil {
		v, cmd := a.Auth.Update(msg)
		a.Auth = v.(*AuthModal)
		cmds = append(cmds, cmd)
	}
	for i := range a.Overlays.Stack {
		o := &a.Overlays.Stack[i]
		v, cmd := o.View.Update(msg)
		o.View = v
		cmds = append(cmds, cmd)
	}
	if _, ok := msg.(tea.WindowSizeMsg); !ok {
		cmds = append(cmds, a.updatePage(msg))
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) handleNavigate(msg NavigateMsg) tea.Cmd {
	a.Overlays.Clear()
	a.Focus.SetFocus(FocusContent)
	a.Store.SetActivePage(msg.Page)
	return nil
}

func (a *AppModel) handleShowLogoutConfirm() tea.Cmd {
	if !a.Store.State().LoggedIn {
		return nil
	}
	m := NewConfirmModal("Log out?", "You will need to sign in again.", func() tea.Msg { return LogoutMsg{} })
	a.Overlays.Push(Overlay{View: m, Dismiss: "esc"})
	return m.Init()
}

func (a *AppModel) handleShowPageSwitcher() tea.Cmd {
	m := NewPageSwitcherModal(a.Store.State().ActivePage)
	a.Overlays.Push(Overlay{View: m, Dismiss: "esc"})
	return m.Init()
}

func (a *AppModel) handleShowLeadSheet(msg ShowLeadSheetMsg) tea.Cmd {
	_, h := a.size()
	sheet := NewLeadSheet(msg.Lead, h-footerHeight-4)
	a.Overlays.Push(Overlay{View: sheet, Dismiss: "esc"})
	return sheet.Init()
}

func (a *AppModel) handleStartSearch() tea.Cmd {
	s, ok := a.Page.(searcher)
	if !ok {
		return nil
	}
	a.Focus.SetFocus(FocusContent)
	return s.StartSearch()
}

func (a *AppModel) handleDismissModal() {
	if a.Auth != nil {
		// The modal cannot be dismissed while logged out.
		if a.Store.State().LoggedIn {
			a.Store.CloseAuthModal()
		}
		return
	}
	a.Overlays.Pop()
}

// syncPage reconciles mounted views with the store: the auth gate while
// logged out, the auth modal on request, and the page for ActivePage.
func (a *AppModel) syncPage() tea.Cmd {
	st := a.Store.State()
	if !st.LoggedIn {
		if a.Page != nil {
			a.Logger.Debug().Stringer("page", a.PageKind).Msg("page disposed")
			dispose(a.Page)
			a.Page = nil
		}
		a.Overlays.Clear()
		if a.KeyHandler != nil {
			a.KeyHandler.Reset()
		}
		if a.Auth == nil {
			a.Auth = NewAuthModal()
			return a.Auth.Init()
		}
		return nil
	}

	if a.KeyHandler != nil {
		a.KeyHandler.Page = st.ActivePage
	}
	var cmds []tea.Cmd
	switch {
	case st.AuthModalOpen && a.Auth == nil:
		a.Auth = NewAuthModal()
		cmds = append(cmds, a.Auth.Init())
	case !st.AuthModalOpen:
		a.Auth = nil
	}
	if a.Page == nil || a.PageKind != st.ActivePage {
		cmds = append(cmds, a.mountPage(st.ActivePage))
	}
	cmds = append(cmds, a.resizePage(st))
	return tea.Batch(cmds...)
}

// mountPage disposes the current page and builds the one for p.
func (a *AppModel) mountPage(p store.Page) tea.Cmd {
	if a.Page != nil {
		a.Logger.Debug().Stringer("page", a.PageKind).Msg("page disposed")
		dispose(a.Page)
	}
	var v View
	build, ok := pageBuilders[p]
	if !ok {
		v = NewPlaceholderView(p.String(), "This page does not exist.")
	} else {
		var err error
		if v, err = build(a); err != nil {
			a.Logger.Error().Err(err).Stringer("page", p).Msg("build page")
			v = NewPlaceholderView(p.String(), "Could not load this page: "+err.Error())
		}
	}
	a.Page, a.PageKind = v, p
	a.contentSize = [2]int{}
	a.Logger.Debug().Stringer("page", p).Msg("page mounted")
	return v.Init()
}

// resizePage tells the page its content area when it changes.
func (a *AppModel) resizePage(st store.State) tea.Cmd {
	if a.Page == nil {
		return nil
	}
	w, h := a.size()
	_, _, cw, ch := panelBounds(a.layout(st), FocusContent, w, h)
	if a.contentSize == [2]int{cw, ch} {
		return nil
	}
	a.contentSize = [2]int{cw, ch}
	return a.updatePage(tea.WindowSizeMsg{Width: cw, Height: ch})
}
