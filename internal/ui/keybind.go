package ui

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkbird/internal/store"
)

// keybind is one registered sequence.
type keybind struct {
	cmd   tea.Cmd
	desc  string
	pages []store.Page // empty means every page
}

func (b keybind) liveOn(p store.Page) bool {
	return len(b.pages) == 0 || slices.Contains(b.pages, p)
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs notation: "SPC" is the space bar, so "SPC g l"
// means space, then g, then l. Plain keys look like "q", "tab" or "ctrl+c".
type KeybindRegistry struct {
	binds map[string]keybind
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{binds: make(map[string]keybind)}
}

// Bind registers seq on every page, replacing any earlier binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForPage(seq, cmd, "", nil)
}

// BindWithDesc is Bind with a label for the help bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForPage(seq, cmd, desc, nil)
}

// BindWithDescForPage registers seq only on pages. A nil or empty pages
// binds it everywhere.
func (r *KeybindRegistry) BindWithDescForPage(seq string, cmd tea.Cmd, desc string, pages []store.Page) {
	r.binds[normalizeSeq(seq)] = keybind{cmd: cmd, desc: desc, pages: slices.Clone(pages)}
}

// Lookup returns the command bound to seq on any page, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.binds[normalizeSeq(seq)].cmd
}

func (r *KeybindRegistry) lookupOn(seq string, page store.Page) tea.Cmd {
	b, ok := r.binds[normalizeSeq(seq)]
	if !ok || !b.liveOn(page) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether some longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	return r.continues(seq, func(keybind) bool { return true })
}

func (r *KeybindRegistry) hasPrefixOn(seq string, page store.Page) bool {
	return r.continues(seq, func(b keybind) bool { return b.liveOn(page) })
}

func (r *KeybindRegistry) continues(seq string, keep func(keybind) bool) bool {
	prefix := normalizeSeq(seq) + " "
	for s, b := range r.binds {
		if strings.HasPrefix(s, prefix) && keep(b) {
			return true
		}
	}
	return false
}

// submenuLabels name leader keys that open a second level.
var submenuLabels = map[string]string{
	"g": "Go to",
}

// LeaderHints lists the keys that can follow currentSeq on page, with
// their labels. An empty currentSeq means "SPC" was just pressed.
func (r *KeybindRegistry) LeaderHints(currentSeq string, page store.Page) map[string]string {
	if currentSeq == "" {
		currentSeq = "SPC"
	}
	base := normalizeSeq(currentSeq)
	out := make(map[string]string)
	for seq, b := range r.binds {
		rest, ok := strings.CutPrefix(seq, base+" ")
		if !ok || b.cmd == nil || !b.liveOn(page) {
			continue
		}
		next, _, _ := strings.Cut(rest, " ")
		switch {
		case r.hasPrefixOn(base+" "+next, page):
			out[next] = cmp.Or(submenuLabels[next], next+"…")
		default:
			out[next] = cmp.Or(b.desc, seq)
		}
	}
	return out
}

// normalizeSeq rewrites "space" as "SPC" and collapses whitespace.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader state and dispatches keys to a registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Page          store.Page // bindings scoped to other pages are ignored
	LeaderKey     string     // as tea.KeyMsg.String() reports it
	LeaderSeq     string     // as written in sequences
	LeaderWaiting bool
	Buffer        []string // sequence typed so far in leader mode
}

// NewKeyHandler creates a handler whose leader is the space bar.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle feeds one key press through the keybinds. consumed means the key
// belonged to the keybind system and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()
	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.Reset()
		return true, nil
	case !h.LeaderWaiting && s == h.LeaderKey:
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	case !h.LeaderWaiting:
		c := h.Registry.lookupOn(keyToSeqPart(s), h.Page)
		return c != nil, c
	}

	h.Buffer = append(h.Buffer, keyToSeqPart(s))
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.lookupOn(seq, h.Page); c != nil {
		h.Reset()
		return true, c
	}
	if !h.Registry.hasPrefixOn(seq, h.Page) {
		h.Reset()
	}
	return true, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap adapts the leader hints to help.KeyMap.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	page       store.Page
}

// NewKeyMap creates a KeyMap showing what may follow the handler's buffer on page.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, page store.Page) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, page: page}
}

// ShortHelp returns one binding per hint, sorted by key, then esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	var seq string
	if km.keyHandler != nil {
		seq = strings.Join(km.keyHandler.Buffer, " ")
	}
	hints := km.registry.LeaderHints(seq, km.page)
	if len(hints) == 0 {
		return nil
	}
	var out []key.Binding
	for _, k := range slices.Sorted(maps.Keys(hints)) {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp implements help.KeyMap with a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
