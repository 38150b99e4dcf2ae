package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#793DF7") // violet
	ColorSecondary  = lipgloss.Color("#8F0DCC") // magenta
	ColorBackground = lipgloss.Color("#16121f") // dark
	ColorText       = lipgloss.Color("#e2dff0") // main text
	ColorMuted      = lipgloss.Color("#9b93b8") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorWarning    = lipgloss.Color("#c78854") // warning
	ColorBorder     = lipgloss.Color("#3b2a63") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	AffiliationStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)

	TypeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorSecondary).
			Bold(true).
			Padding(0, 1)

	InPressStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	SnackStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#2a2140")).
			Padding(0, 2)
)
