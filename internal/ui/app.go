package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"linkbird/internal/config"
	"linkbird/internal/fixture"
	"linkbird/internal/store"
)

// Fallback terminal size before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 120
	defaultHeight = 36
)

// Options configures the data and paging behavior of an AppModel.
type Options struct {
	PageSize  int
	LoadDelay time.Duration
	Data      config.DataConfig
	Logger    zerolog.Logger
	Now       func() time.Time // clock for generated timestamps; nil means time.Now
}

// OptionsFromConfig copies the view-related settings out of cfg.
func OptionsFromConfig(cfg *config.Config, logger zerolog.Logger) Options {
	return Options{
		PageSize:  cfg.PageSize,
		LoadDelay: cfg.LoadDelay,
		Data:      cfg.Data,
		Logger:    logger,
	}
}

// AppModel is the root model: sidebar, active page, overlays and the auth gate.
type AppModel struct {
	Store      *store.Store
	Generator  *fixture.Generator
	Options    Options
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Focus      FocusManager
	Sidebar    *SidebarView
	Page       View       // nil while logged out
	PageKind   store.Page // variant Page was built for
	Auth       *AuthModal // non-nil while the auth modal is shown
	Logger     zerolog.Logger

	ctx         context.Context
	width       int
	height      int
	contentSize [2]int // last size sent to Page
	unsubscribe func()
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over st. ctx bounds every pending page
// load; cancel it when the program exits.
func NewAppModel(ctx context.Context, st *store.Store, opts Options) *AppModel {
	if opts.PageSize == 0 {
		opts.PageSize = config.DefaultPageSize
	}
	a := &AppModel{
		Store:     st,
		Generator: fixture.New(opts.Data.Seed, opts.Now),
		Options:   opts,
		Sidebar:   NewSidebarView(st),
		Logger:    opts.Logger,
		ctx:       ctx,
	}
	a.KeyHandler = NewKeyHandler(newRegistry())
	a.Focus = FocusManager{
		Current: FocusContent,
		Order:   shellLayout{}.FocusOrder(),
		OnChange: func(from, to string) {
			a.Sidebar.Focused = to == FocusSidebar
			a.Logger.Debug().Str("from", from).Str("to", to).Msg("focus changed")
		},
	}
	a.unsubscribe = st.Subscribe(a.logTransition)
	return a
}

// newRegistry binds the global keys.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "Focus")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC b", func() tea.Msg { return ToggleSidebarMsg{} }, "Sidebar")
	reg.BindWithDesc("SPC o", func() tea.Msg { return ShowLogoutConfirmMsg{} }, "Logout")
	reg.BindWithDesc("SPC a", func() tea.Msg { return OpenAuthModalMsg{} }, "Account")
	reg.BindWithDesc("SPC SPC", func() tea.Msg { return ShowPageSwitcherMsg{} }, "Pages")
	reg.BindWithDescForPage("SPC /", func() tea.Msg { return StartSearchMsg{} }, "Search",
		[]store.Page{store.PageLeads, store.PageCampaigns})
	for _, b := range []struct {
		key  string
		page store.Page
	}{
		{"d", store.PageDashboard},
		{"l", store.PageLeads},
		{"c", store.PageCampaigns},
		{"m", store.PageMessages},
		{"s", store.PageSettings},
	} {
		p := b.page
		reg.BindWithDesc("SPC g "+b.key, func() tea.Msg { return NavigateMsg{Page: p} }, p.String())
	}
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close disposes the active page and stops observing the store.
func (a *AppModel) Close() {
	if a.Page != nil {
		dispose(a.Page)
		a.Page = nil
	}
	a.Overlays.Clear()
	a.Sidebar.Dispose()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *AppModel) logTransition(prev, next store.State) {
	a.Logger.Debug().
		Stringer("page", next.ActivePage).
		Bool("sidebar_open", next.SidebarOpen).
		Bool("logged_in", next.LoggedIn).
		Bool("auth_modal", next.AuthModalOpen).
		Msg("ui state changed")
	if prev.LoggedIn != next.LoggedIn {
		a.Logger.Info().Bool("logged_in", next.LoggedIn).Msg("session changed")
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.syncPage()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmd = a.broadcast(msg)
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case NavigateMsg:
		cmd = a.handleNavigate(msg)
	case ToggleSidebarMsg:
		a.Store.ToggleSidebar()
	case FocusNextMsg:
		a.Focus.Next()
	case LoginMsg:
		a.Logger.Info().Str("email", msg.Email).Msg("login")
		a.Store.Login()
	case ShowLogoutConfirmMsg:
		cmd = a.handleShowLogoutConfirm()
	case LogoutMsg:
		a.Overlays.Clear()
		a.Store.Logout()
	case OpenAuthModalMsg:
		a.Store.OpenAuthModal()
	case ShowPageSwitcherMsg:
		cmd = a.handleShowPageSwitcher()
	case ShowLeadSheetMsg:
		cmd = a.handleShowLeadSheet(msg)
	case StartSearchMsg:
		cmd = a.handleStartSearch()
	case DismissModalMsg:
		a.handleDismissModal()
	default:
		cmd = a.broadcast(msg)
	}
	return a, tea.Batch(cmd, a.syncPage())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, h := a.size()
	st := a.Store.State()
	if !st.LoggedIn {
		if a.Auth == nil {
			return ""
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, a.Auth.View())
	}

	layout := a.layout(st)
	_, _, sw, _ := panelBounds(layout, FocusSidebar, w, h)
	_, _, cw, ch := panelBounds(layout, FocusContent, w, h)

	sidebar := Styles.Sidebar.
		Width(max(sw-1, 0)).
		Height(max(h-footerHeight, 0)).
		Render(a.Sidebar.View())
	page := ""
	if a.Page != nil {
		page = a.Page.View()
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		a.breadcrumb(st),
		"",
		lipgloss.NewStyle().Width(cw).MaxHeight(ch).Render(page),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)

	bodyHeight := max(h-footerHeight, 0)
	if a.Auth != nil {
		body = lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, a.Auth.View())
	} else {
		body = a.Overlays.Render(body, w, bodyHeight)
	}
	return body + "\n" + a.footer(st)
}

func (a *AppModel) breadcrumb(st store.State) string {
	return Styles.Breadcrumb.Render("Home / ") + Styles.Title.Render(st.ActivePage.String())
}

func (a *AppModel) footer(st store.State) string {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(a.KeyHandler, st.ActivePage)
	}
	return Styles.Hint.Render("SPC: commands  tab: focus  q: quit")
}

func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (a *AppModel) layout(st store.State) shellLayout {
	return shellLayout{sidebar: a.Sidebar, content: a.Page, sidebarOpen: st.SidebarOpen}
}
