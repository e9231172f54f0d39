package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35")  // success
	colorWhite = lipgloss.Color("255") // values
)

var (
	// styleSuccess for the final success line.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleValue for file paths in output.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
)
