package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCenterCardKeepsStyledColumnsRightOfCard(t *testing.T) {
	// bold truecolor span, as lipgloss emits it on a capable terminal
	row := "\x1b[1;38;2;250;179;135mAAAAAAAAAAAAAAA\x1b[0mBBBBB"
	base := strings.Join([]string{"", row, ""}, "\n")

	got := strings.Split(ansi.Strip(centerCard(base, "XX", 20, 3)), "\n")
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if want := "AAAAAAAAAXXAAAABBBBB"; got[1] != want {
		t.Fatalf("middle row = %q, want %q", got[1], want)
	}
}

func TestCutLeftDropsDisplayColumns(t *testing.T) {
	cases := []struct {
		in   string
		cols int
		want string
	}{
		{"abcdef", 0, "abcdef"},
		{"abcdef", 2, "cdef"},
		{"abcdef", 9, ""},
		{"ab🍲cd", 4, "cd"},
	}
	for _, tc := range cases {
		if got := ansi.Strip(cutLeft(tc.in, tc.cols)); got != tc.want {
			t.Fatalf("cutLeft(%q, %d) = %q, want %q", tc.in, tc.cols, got, tc.want)
		}
	}
}
