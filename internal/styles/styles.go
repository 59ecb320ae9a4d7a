package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Red    = "#FF6188" // Errors
	Orange = "#FC9867" // Warnings
	Yellow = "#FFD866" // Highlights
	Green  = "#A9DC76" // Success
	Cyan   = "#78DCE8" // Info

	Comment = "#727072" // Dim text, offsets
)

// Common styles for CLI diagnostics
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red)).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
)

// Plain variants used when color output is disabled
var plain = lipgloss.NewStyle()

// Error renders s in the error style, or plain when color is off.
func Error(s string, color bool) string {
	if !color {
		return plain.Render(s)
	}
	return ErrorStyle.Render(s)
}

// Warning renders s in the warning style, or plain when color is off.
func Warning(s string, color bool) string {
	if !color {
		return plain.Render(s)
	}
	return WarningStyle.Render(s)
}

// Success renders s in the success style, or plain when color is off.
func Success(s string, color bool) string {
	if !color {
		return plain.Render(s)
	}
	return SuccessStyle.Render(s)
}

// Dim renders s dimmed, or plain when color is off.
func Dim(s string, color bool) string {
	if !color {
		return plain.Render(s)
	}
	return DimStyle.Render(s)
}
