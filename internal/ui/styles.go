package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text, result paths
// - Accent (soft blue #7DC4E4): highlights, attribute names
// - Muted (gray): secondary info, counts, timestamps

const defaultAccent = "#7DC4E4"

var (
	// Accent style for attribute names, saved-search names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis and headers
	Bold = lipgloss.NewStyle().Bold(true)
)

var accentColor = defaultAccent

// ConfigureTheme overrides the accent color. Supported values are ANSI color
// codes ("0" to "255") or hex colors ("#RRGGBB"). An empty value keeps the
// default.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	accentColor = accent
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}

// AccentColor returns the currently configured accent color.
func AccentColor() string {
	return accentColor
}
