package display

import "github.com/charmbracelet/lipgloss"

// Colors used across terminal output.
var (
	ColorMuted  = lipgloss.AdaptiveColor{Light: "245", Dark: "242"}
	ColorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "221"}
)

var (
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	successStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
)
