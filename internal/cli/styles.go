// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/foodsaver/internal/expiry"
)

var (
	// PrimaryColor is the main theme color (fresh green).
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// categoryStyles maps each expiry category onto its badge style.
	categoryStyles = map[expiry.Category]lipgloss.Style{
		expiry.CategoryExpired: lipgloss.NewStyle().Bold(true).Foreground(ErrorColor),
		expiry.CategoryUrgent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF9F43")),
		expiry.CategorySoon:    lipgloss.NewStyle().Foreground(WarningColor),
		expiry.CategoryLater:   lipgloss.NewStyle().Foreground(SuccessColor),
		expiry.CategoryUnknown: SubtleStyle,
	}
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	PantryIcon  = "🥫"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a title with the pantry icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(PantryIcon + " " + title)
}

// FormatCategory renders an expiry category as a colored badge.
func FormatCategory(cat expiry.Category) string {
	style, ok := categoryStyles[cat]
	if !ok {
		style = SubtleStyle
	}
	return style.Render(string(cat))
}
