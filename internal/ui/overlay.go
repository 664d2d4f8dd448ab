package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal view drawn over the shell, plus the key that closes it.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey reports whether key closes o.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open overlays; the last one is on top and gets input.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o above the current overlays.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	n := len(s.Stack)
	if n == 0 {
		return Overlay{}, false
	}
	return s.Stack[n-1], true
}

// Pop closes the top overlay and disposes its view.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
		dispose(top.View)
	}
	return top, ok
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int { return len(s.Stack) }

// Clear closes every overlay, top first.
func (s *OverlayStack) Clear() {
	for {
		if _, ok := s.Pop(); !ok {
			return
		}
	}
}

// UpdateTop sends msg to the top overlay and stores the view it returns.
// ok is false when no overlay is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	n := len(s.Stack)
	if n == 0 {
		return nil, false
	}
	s.Stack[n-1].View, cmd = s.Stack[n-1].View.Update(msg)
	return cmd, true
}

// Render centers the top overlay in a width x height box in place of base.
func (s *OverlayStack) Render(base string, width, height int) string {
	top, ok := s.Peek()
	switch {
	case !ok:
		return base
	case width <= 0 || height <= 0:
		return base + "\n" + top.View.View()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View(),
		lipgloss.WithWhitespaceChars(" "))
}
