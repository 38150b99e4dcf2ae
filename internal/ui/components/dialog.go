package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2).
			Width(48)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9b93b8"))

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8F0DCC"))
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	body := boxTitleStyle.Render(title) + "\n\n" +
		valueStyle.Render(SanitizeText(message)) + "\n\n" +
		dialogHintStyle.Render("y: confirm | n: cancel")
	return dialogStyle.Render(body)
}

// InputDialog renders a single line text prompt with a block cursor.
func InputDialog(title, input string) string {
	body := boxTitleStyle.Render(title) + "\n\n" +
		dialogFieldStyle.Render("> "+input+"█") + "\n\n" +
		dialogHintStyle.Render("enter: submit | esc: cancel")
	return dialogStyle.Render(body)
}
