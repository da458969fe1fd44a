// Package console provides styled message formatting for CLI output.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/refdocs/refcheck/pkg/constants"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	verboseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// FormatErrorMessage formats an error message with the error glyph and styling.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render(fmt.Sprintf("%s %s", constants.ErrorGlyph, msg))
}

// FormatWarningMessage formats a warning message with the warning glyph and styling.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render(fmt.Sprintf("%s %s", constants.WarningGlyph, msg))
}

// FormatSuccessMessage formats a success message with the success glyph and styling.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render(fmt.Sprintf("%s %s", constants.SuccessGlyph, msg))
}

// FormatInfoMessage formats an informational message with the info glyph and styling.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(fmt.Sprintf("%s %s", constants.InfoGlyph, msg))
}

// StyleError applies error styling to a message that already carries its
// own glyph or prefix.
func StyleError(msg string) string {
	return errorStyle.Render(msg)
}

// FormatVerboseMessage formats a low-priority message in muted styling.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// FormatProgressMessage formats a progress message.
func FormatProgressMessage(msg string) string {
	return progressStyle.Render(msg)
}
