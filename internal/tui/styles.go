package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOutput  = lipgloss.Color("#F9FAFB")
	colorEcho    = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	EchoStyle = lipgloss.NewStyle().
			Foreground(colorEcho).
			Bold(true)

	OutputStyle = lipgloss.NewStyle().
			Foreground(colorOutput)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	CandidateStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorOutput).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// RenderError renders an error line for the transcript
func RenderError(message string) string {
	return ErrorStyle.Render("ERROR: " + message)
}
