package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#0969DA") // blue
	accentColor  = lipgloss.Color("#2DA44E") // green
	errorColor   = lipgloss.Color("#CF222E") // red
	dimColor     = lipgloss.Color("#6E7681") // gray

	bannerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

const bannerWidth = 60

// Banner renders a section heading boxed by rule lines.
func Banner(label string) string {
	rule := strings.Repeat("=", bannerWidth)
	return bannerStyle.Render(rule + "\n" + label + "\n" + rule)
}

func Success(s string) string {
	return successStyle.Render(s)
}

func ErrorLine(s string) string {
	return errorStyle.Render(s)
}

func Dim(s string) string {
	return dimStyle.Render(s)
}
