// Package textutil fits text into terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// cut. Styled text keeps its escape sequences, including the closing reset.
func Truncate(s string, maxWidth int) string {
	switch {
	case maxWidth <= 0:
		return ""
	case Width(s) <= maxWidth:
		return s
	case strings.ContainsRune(s, ansi.ESC):
		return ansi.Truncate(s, maxWidth, Ellipsis)
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight left-aligns s in a cell of width columns, truncating if needed.
func PadRight(s string, width int) string {
	w := Width(s)
	if w > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft right-aligns s in a cell of width columns, truncating if needed.
func PadLeft(s string, width int) string {
	w := Width(s)
	if w > width {
		return Truncate(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}

// Row joins cells, each padded to its width, with a single space between.
// The last cell is right-aligned when rightLast is set.
func Row(widths []int, rightLast bool, cells ...string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		switch {
		case w <= 0:
			parts[i] = c
		case rightLast && i == len(cells)-1:
			parts[i] = PadLeft(c, w)
		default:
			parts[i] = PadRight(c, w)
		}
	}
	return strings.Join(parts, " ")
}
