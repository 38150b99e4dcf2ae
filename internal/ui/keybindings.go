package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Page Keys ---

const (
	keyRefresh    = "r"
	keyNewArticle = "n"
	keyLink       = "l"
	keyUnlink     = "u"
	keyEdit       = "e"
	keyEditAuthor = "a"
	keyGoto       = "g"
	keyHelp       = "?"
	keyYes        = "y"
	keyNo         = "n"
)

func isKey(msg tea.KeyMsg, keys ...string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

// isBack matches esc however the terminal reports it.
func isBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc || isKey(msg, "esc", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "k")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "j")
}

func isEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

func isConfirm(msg tea.KeyMsg) bool {
	return isKey(msg, keyYes, "Y")
}

func isDecline(msg tea.KeyMsg) bool {
	return isKey(msg, keyNo, "N") || isBack(msg)
}
