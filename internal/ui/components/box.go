package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderColor = lipgloss.Color("#3b2a63")
	accentColor = lipgloss.Color("#793DF7")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2)

	activeBoxStyle = boxStyle.
			BorderForeground(accentColor)

	boxTitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8F0DCC")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e2dff0"))

	errorBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("#7a2f3a"))

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75")).
			Bold(true)
)

// boxWidth uses ~75% of the terminal, between 44 and 96 columns, never wider
// than the terminal itself.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 75 / 100
	if w < 44 {
		w = 44
	}
	if w > 96 {
		w = 96
	}
	if w > width {
		w = width
	}
	return w
}

// BoxContentWidth returns the usable text width inside a box.
func BoxContentWidth(width int) int {
	inner := boxWidth(width) - 6 // border 2 + padding 4
	if inner < 0 {
		return 0
	}
	return inner
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxStyle.Width(boxWidth(width)).Render(content)
}

// ActiveBox renders a box with a highlighted border, used for open dialogs.
func ActiveBox(title, content string, width int) string {
	if title != "" {
		content = boxTitleStyle.Render(title) + "\n\n" + content
	}
	return activeBoxStyle.Width(boxWidth(width)).Render(content)
}

// TitledBox renders a box whose first line is a title.
func TitledBox(title, content string, width int) string {
	if title == "" {
		return Box(content, width)
	}
	return Box(boxTitleStyle.Render(title)+"\n\n"+content, width)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	body := valueStyle.Render(SanitizeText(message))
	if title != "" {
		body = errorTitleStyle.Render(title) + "\n" + body
	}
	return errorBoxStyle.Width(boxWidth(width)).Render(body)
}

// TableRow is a single label/value row.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned label/value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(SanitizeOneLine(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}
	valueWidth := BoxContentWidth(width) - labelWidth - 2
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := labelStyle.Render(padRight(SanitizeOneLine(r.Label), labelWidth))
		lines = append(lines, label+"  "+valueStyle.Render(ClampTextWidthEllipsis(r.Value, valueWidth)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// ClampTextWidthEllipsis cuts text to width columns, ending with "…" when cut.
// A non-positive width returns the sanitized text unchanged.
func ClampTextWidthEllipsis(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// Indent adds left padding to every line.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// CenterLine centers a single line within the standard box width.
func CenterLine(s string, width int) string {
	w := boxWidth(width)
	lineWidth := lipgloss.Width(s)
	if w <= 0 || lineWidth >= w {
		return s
	}
	return strings.Repeat(" ", (w-lineWidth)/2) + s
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
