package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/store"
	"linkbird/internal/ui/textutil"
)

// Signed-in user shown on the sidebar card.
const (
	userName  = "John Doe"
	userEmail = "johndoe@example.com"
)

// navGlyphs are the collapsed sidebar labels, one per page.
var navGlyphs = map[store.Page]string{
	store.PageDashboard: "D",
	store.PageLeads:     "L",
	store.PageCampaigns: "C",
	store.PageMessages:  "M",
	store.PageSettings:  "S",
}

// SidebarView lists the pages and the signed-in user.
// Its cursor follows the store's active page.
type SidebarView struct {
	Focused bool

	store       *store.Store
	pages       []store.Page
	cursor      int
	unsubscribe func()
}

var (
	_ View     = (*SidebarView)(nil)
	_ Disposer = (*SidebarView)(nil)
)

// NewSidebarView creates a sidebar bound to st.
func NewSidebarView(st *store.Store) *SidebarView {
	s := &SidebarView{store: st, pages: store.Pages()}
	s.cursor = s.indexOf(st.State().ActivePage)
	s.unsubscribe = st.Subscribe(func(prev, next store.State) {
		if prev.ActivePage != next.ActivePage {
			s.cursor = s.indexOf(next.ActivePage)
		}
	})
	return s
}

func (s *SidebarView) indexOf(p store.Page) int {
	for i, q := range s.pages {
		if q == p {
			return i
		}
	}
	return 0
}

// Cursor returns the highlighted page.
func (s *SidebarView) Cursor() store.Page {
	return s.pages[s.cursor]
}

// Dispose implements Disposer.
func (s *SidebarView) Dispose() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Init implements View.
func (s *SidebarView) Init() tea.Cmd { return nil }

// Update implements View.
func (s *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch km.String() {
	case "j", "down":
		if s.cursor < len(s.pages)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter":
		p := s.pages[s.cursor]
		return s, func() tea.Msg { return NavigateMsg{Page: p} }
	}
	return s, nil
}

// View implements View.
func (s *SidebarView) View() string {
	st := s.store.State()
	if !st.SidebarOpen {
		return s.collapsed(st)
	}
	width := sidebarOpenWidth - 3
	var b strings.Builder
	b.WriteString(Styles.Title.Render("LinkBird") + "\n\n")
	b.WriteString(Styles.Section.Render("Overview") + "\n")
	for i, p := range s.pages {
		b.WriteString(s.item(i, p, p.String(), st) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Styles.Normal.Render(textutil.Truncate(userName, width)) + "\n")
	b.WriteString(Styles.Muted.Render(textutil.Truncate(userEmail, width)) + "\n")
	b.WriteString(Styles.Hint.Render("SPC o  log out"))
	return b.String()
}

func (s *SidebarView) collapsed(st store.State) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("LB") + "\n\n\n")
	for i, p := range s.pages {
		b.WriteString(s.item(i, p, navGlyphs[p], st) + "\n")
	}
	return b.String()
}

func (s *SidebarView) item(i int, p store.Page, label string, st store.State) string {
	marker := "  "
	if s.Focused && i == s.cursor {
		marker = "› "
	}
	style := Styles.NavItem
	if p == st.ActivePage {
		style = Styles.NavActive
	}
	return marker + style.Render(label)
}
