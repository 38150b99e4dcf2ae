package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
	"github.com/curatescience/curate/cli/internal/ui/components"
)

type route int

const (
	routeAuthor route = iota
	routeCreateProfile
)

// --- App Model ---

// App is the root TUI model. It owns the current author page and replaces
// it on every navigation.
type App struct {
	client  *api.Client
	log     zerolog.Logger
	session profile.Session

	route       route
	page        AuthorModel
	missingSlug string

	gotoOpen    bool
	gotoBuf     string
	helpOpen    bool
	quitConfirm bool

	width  int
	height int
}

// NewApp creates the root model opened on slug. anchor is an optional
// article id to place the cursor on.
func NewApp(client *api.Client, session profile.Session, log zerolog.Logger, slug string, anchor int) App {
	return App{
		client:  client,
		log:     log,
		session: session,
		route:   routeAuthor,
		page:    NewAuthorModel(client, session, log, slug, anchor),
	}
}

func (a App) Init() tea.Cmd {
	return a.page.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		a.page, cmd = a.page.Update(msg)
		return a, cmd

	case navigateMsg:
		if msg.token != a.page.token {
			return a, nil
		}
		if msg.path == createProfilePath {
			a.log.Info().Str("slug", msg.slug).Msg("author not found, showing profile creation")
			a.route = routeCreateProfile
			a.missingSlug = msg.slug
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isConfirm(msg):
				return a, tea.Quit
			case isDecline(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.gotoOpen {
			return a.handleGotoKeys(msg)
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, keyHelp) {
				a.helpOpen = false
			}
			return a, nil
		}

		if isKey(msg, "ctrl+c") {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}
		if a.route == routeCreateProfile || !a.page.capturesInput() {
			switch {
			case isQuit(msg):
				return a, tea.Quit
			case isKey(msg, keyHelp):
				a.helpOpen = true
				return a, nil
			case isKey(msg, keyGoto):
				a.gotoOpen = true
				a.gotoBuf = ""
				return a, nil
			}
		}
		if a.route == routeCreateProfile {
			return a, nil
		}
	}

	if a.route != routeAuthor {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// openAuthor starts a fresh page visit. Responses still in flight for the
// previous page carry its token and are dropped.
func (a App) openAuthor(slug string) (App, tea.Cmd) {
	a.route = routeAuthor
	a.missingSlug = ""
	a.page = NewAuthorModel(a.client, a.session, a.log, slug, 0)
	a.page, _ = a.page.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	return a, a.page.Init()
}

func (a App) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.gotoOpen = false
		a.gotoBuf = ""
	case isEnter(msg):
		slug := strings.Trim(strings.TrimSpace(a.gotoBuf), "/")
		a.gotoOpen = false
		a.gotoBuf = ""
		if slug == "" {
			return a, nil
		}
		return a.openAuthor(slug)
	case isKey(msg, "backspace"):
		if len(a.gotoBuf) > 0 {
			a.gotoBuf = a.gotoBuf[:len(a.gotoBuf)-1]
		}
	default:
		if ch := msg.String(); len(ch) == 1 && ch != " " {
			a.gotoBuf += ch
		}
	}
	return a, nil
}

// hasUnsaved reports whether an editor is open on the page.
func (a App) hasUnsaved() bool {
	return a.route == routeAuthor && (a.page.authorEditor != nil || a.page.articleEditor != nil)
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = components.Indent(components.ConfirmDialog("Quit", "You have unsaved changes. Quit anyway?"), 1)
	case a.gotoOpen:
		content = components.Indent(components.InputDialog("Go to Author", a.gotoBuf), 1)
	case a.helpOpen:
		content = a.renderHelp()
	case a.route == routeCreateProfile:
		content = a.renderCreateProfile()
	default:
		content = a.page.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar([]string{
		components.Hint(keyGoto, "Go to"),
		components.Hint(keyHelp, "Help"),
		components.Hint("q", "Quit"),
	}, a.width)

	return fmt.Sprintf("%s\n%s\n\n%s", banner, content, centerBlockUniform(hints, a.width))
}

func (a App) renderCreateProfile() string {
	intro := NameStyle.Render(fmt.Sprintf("No author found for %q.", a.missingSlug)) + "\n" +
		MutedStyle.Render("Create your author profile on the website.")
	table := components.Table("Create Author Profile", []components.TableRow{
		{Label: "Slug", Value: a.missingSlug},
		{Label: "Create at", Value: a.createProfileURL()},
	}, a.width)
	return components.Indent(intro+"\n\n"+table, 1)
}

func (a App) createProfileURL() string {
	base := api.DefaultBaseURL
	if a.client != nil {
		base = a.client.BaseURL()
	}
	return base + createProfilePath
}

func (a App) renderHelp() string {
	lines := []string{MutedStyle.Render("esc to close"), ""}
	if a.route == routeAuthor {
		for _, hint := range a.page.statusHints() {
			lines = append(lines, "  "+hint)
		}
	}
	lines = append(lines,
		"  "+components.Hint(keyGoto, "Go to another author"),
		"  "+components.Hint("esc", "Dismiss notification"),
		"  "+components.Hint("q", "Quit"),
	)
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
