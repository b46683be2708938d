// Package cli provides terminal input and styled output for the roofline commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (shingle slate).
	PrimaryColor = lipgloss.Color("#5C7A99")
	// SuccessColor marks eligible tiers and covered categories.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks uncategorized items.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor marks ineligible tiers and missing categories.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor is used for secondary details.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "!"
)

// Badge renders a check or cross for a yes/no outcome.
func Badge(ok bool) string {
	if ok {
		return SuccessStyle.Render(SuccessIcon)
	}
	return ErrorStyle.Render(ErrorIcon)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// FormatSubtle formats secondary text.
func FormatSubtle(text string) string {
	return SubtleStyle.Render(text)
}

// FormatHeader formats a table header cell.
func FormatHeader(text string) string {
	return TableHeaderStyle.Render(text)
}
