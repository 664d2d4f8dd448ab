package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"John Doe", 20, "John Doe"},
		{"johndoe@example.com", 8, "johndoe…"},
		{"abc", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, Width(got), max(tt.max, 0))
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
	assert.Equal(t, 6, Width(PadRight("日本", 6)))
}

func TestPadRight_Styled(t *testing.T) {
	const red, reset = "\x1b[38;2;255;0;0m", "\x1b[0m"
	styled := red + "› Campaign 1000" + reset
	require.Equal(t, 15, Width(styled))

	got := PadRight(styled, 14)
	assert.Equal(t, 14, Width(got))
	assert.True(t, strings.HasPrefix(got, red+"› Campaign 10"), "%q", got)
	assert.Contains(t, got, Ellipsis)
	assert.True(t, strings.HasSuffix(got, reset), "color must be reset after the cut: %q", got)

	assert.Equal(t, styled, PadRight(styled, 15))
	assert.Equal(t, styled+"  ", PadRight(styled, 17))
}

func TestRow(t *testing.T) {
	got := Row([]int{6, 4}, true, "Sent", "40%")
	assert.Equal(t, "Sent    40%", got)
	assert.Equal(t, "a b", Row(nil, false, "a", "b"))
}
