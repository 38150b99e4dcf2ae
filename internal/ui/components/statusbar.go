package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9b93b8"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16121f")).
			Background(lipgloss.Color("#a58bd6")).
			Bold(true).
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// Hint formats a single keybind hint like "Edit e".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// StatusBar lays hints out left to right, wrapping to new rows when a row
// would exceed width. A non-positive width keeps everything on one row.
func StatusBar(hints []string, width int) string {
	if len(hints) == 0 {
		return ""
	}
	const gap = "   "
	var rows []string
	current := ""
	for _, h := range hints {
		switch {
		case current == "":
			current = h
		case width > 0 && lipgloss.Width(current+gap+h) > width-2:
			rows = append(rows, current)
			current = h
		default:
			current += gap + h
		}
	}
	rows = append(rows, current)
	return statusBarStyle.Render(strings.Join(rows, "\n"))
}
