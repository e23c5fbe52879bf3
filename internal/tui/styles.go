package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, warmed up for a restaurant.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorSurface1 lipgloss.Color = "#45475a"
	colorMantle   lipgloss.Color = "#181825"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"

	colorBrand  = colorPeach
	colorAccent = colorYellow
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext).Italic(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay)
	priceStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay).
				Background(colorMantle).
				Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorSurface1).
			Width(36)

	focusedInputStyle = inputStyle.BorderForeground(colorAccent)

	cartBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext)

	statusErrStyle = lipgloss.NewStyle().Foreground(colorRed)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
	modalErrStyle = modalStyle.BorderForeground(colorRed)
)
