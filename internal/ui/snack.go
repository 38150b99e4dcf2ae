package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curatescience/curate/cli/internal/ui/components"
)

// snackTimeout is how long a snack stays up without being dismissed.
const snackTimeout = 3 * time.Second

// snack is the transient notification at the bottom of the page. seq grows
// with every shown message so an expiry only clears the message it was
// scheduled for.
type snack struct {
	text string
	seq  int
}

func (s snack) visible() bool { return s.text != "" }

// showSnack replaces the current snack and schedules its expiry.
func (m *AuthorModel) showSnack(text string) tea.Cmd {
	m.snack.seq++
	m.snack.text = text
	token, seq := m.token, m.snack.seq
	return tea.Tick(snackTimeout, func(time.Time) tea.Msg {
		return snackExpiredMsg{token: token, seq: seq}
	})
}

func (m *AuthorModel) closeSnack() {
	m.snack.text = ""
}

func (m *AuthorModel) expireSnack(seq int) {
	if seq == m.snack.seq {
		m.closeSnack()
	}
}

func (m AuthorModel) renderSnack() string {
	if !m.snack.visible() {
		return ""
	}
	return SnackStyle.Render(components.ClampTextWidthEllipsis(m.snack.text, components.BoxContentWidth(m.width)))
}
