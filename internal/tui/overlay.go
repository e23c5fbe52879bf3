package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// centerCard draws card over the middle of base, which is first padded or
// clipped to width x height.
func centerCard(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, base, card)
	}
	rows := canvas(base, width, height)
	cardRows := strings.Split(card, "\n")
	cardWidth := widest(cardRows)
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardRows))/2)

	for i, line := range cardRows {
		row := y + i
		if row >= len(rows) {
			break
		}
		line = fit(line, cardWidth)
		left := fit(ansi.Truncate(rows[row], x, ""), x)
		right := cutLeft(rows[row], x+cardWidth)
		rows[row] = fit(left+line+right, width)
	}
	return strings.Join(rows, "\n")
}

func canvas(s string, width, height int) []string {
	rows := strings.Split(s, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = fit(rows[i], width)
	}
	return rows
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// cutLeft drops the first cols display columns of s.
func cutLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// fit clips or right-pads s to exactly width display columns.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
