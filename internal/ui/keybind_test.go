package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/store"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected SPC x command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := newRegistry()
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("g"))
	if !consumed || cmd != nil {
		t.Fatalf("SPC g: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || strings.Join(h.Buffer, " ") != "SPC g" {
		t.Fatalf("expected to wait on SPC g, buffer=%v", h.Buffer)
	}
	_, cmd = h.Handle(keyMsg("c"))
	if cmd == nil {
		t.Fatal("expected SPC g c command")
	}
	if msg, ok := cmd().(NavigateMsg); !ok || msg.Page != store.PageCampaigns {
		t.Errorf("SPC g c: got %#v", cmd())
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(newRegistry())
	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	consumed, _ = h.Handle(keyMsg("esc"))
	if consumed {
		t.Error("esc outside leader mode should fall through")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestLeaderHints_FirstLevelUsesSubmenuLabel(t *testing.T) {
	hints := newRegistry().LeaderHints("", store.PageLeads)
	want := map[string]string{
		"g":   "Go to",
		"b":   "Sidebar",
		"o":   "Logout",
		"q":   "Quit",
		"SPC": "Pages",
	}
	for k, v := range want {
		if hints[k] != v {
			t.Errorf("hint %q = %q, want %q", k, hints[k], v)
		}
	}
	if _, ok := hints["tab"]; ok {
		t.Error("single-key bindings should not appear in leader hints")
	}
}

func TestLeaderHints_SecondLevel(t *testing.T) {
	hints := newRegistry().LeaderHints("SPC g", store.PageLeads)
	want := map[string]string{"d": "Dashboard", "l": "Leads", "c": "Campaigns", "m": "Messages", "s": "Settings"}
	if len(hints) != len(want) {
		t.Fatalf("got %d hints, want %d: %v", len(hints), len(want), hints)
	}
	for k, v := range want {
		if hints[k] != v {
			t.Errorf("hint %q = %q, want %q", k, hints[k], v)
		}
	}
}

func TestLeaderHints_PageFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForPage("SPC r", tea.Quit, "Refresh leads", []store.Page{store.PageLeads})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	if _, ok := reg.LeaderHints("", store.PageLeads)["r"]; !ok {
		t.Error("expected r hint on Leads")
	}
	hints := reg.LeaderHints("", store.PageCampaigns)
	if _, ok := hints["r"]; ok {
		t.Error("r hint should be hidden on Campaigns")
	}
	if hints["q"] != "Quit" {
		t.Errorf("unfiltered binding missing: %v", hints)
	}
}

func TestKeyHandler_PageScopedBinding(t *testing.T) {
	h := NewKeyHandler(newRegistry())
	h.Page = store.PageDashboard
	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("/"))
	if !consumed || cmd != nil {
		t.Errorf("SPC / on Dashboard: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unbound sequence should leave leader mode")
	}

	h.Page = store.PageLeads
	h.Handle(keyMsg(" "))
	_, cmd = h.Handle(keyMsg("/"))
	if cmd == nil {
		t.Fatal("SPC / should be bound on Leads")
	}
	if _, ok := cmd().(StartSearchMsg); !ok {
		t.Errorf("SPC /: got %#v", cmd())
	}
	if _, ok := newRegistry().LeaderHints("", store.PageDashboard)["/"]; ok {
		t.Error("search hint should be hidden on Dashboard")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(newRegistry())
	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, store.PageLeads)
	for _, want := range []string{"SPC", "Go to", "Sidebar", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}

	h.Handle(keyMsg("g"))
	out = RenderKeybindHelp(h, store.PageLeads)
	if !strings.Contains(out, "SPC g") || !strings.Contains(out, "Campaigns") {
		t.Errorf("second-level help wrong:\n%s", out)
	}
	if RenderKeybindHelp(nil, store.PageLeads) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends one key per rune of s.
func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(keyMsg(string(r)))
	}
	return v
}

// drain runs cmd and returns every message it yields, flattening batches.
// Only use it on commands that complete immediately.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

// firstMsg returns the first message of type T yielded by cmd.
func firstMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, m := range drain(cmd) {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T in command output", zero)
	return zero
}
