package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatescience/curate/cli/internal/api"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	site := newFakeSite()
	app := NewApp(site.client(t), ownerSession, zerolog.Nop(), testSlug, 0)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	app = model.(App)
	model, cmd := app.Update(execOne(t, app.Init()))
	app = model.(App)
	model, _ = app.Update(execOne(t, cmd))
	return model.(App)
}

func TestAppForwardsWindowSizeToPage(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, 120, app.page.width)
	assert.Equal(t, 60, app.page.height)
	assert.Equal(t, 18, app.page.list.PageSize)
}

func TestAppQuitKeys(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppDoesNotStealKeysFromEditors(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey('l'))
	app = model.(App)
	require.NotNil(t, app.page.selector)

	model, _ = app.Update(runeKey('q'))
	app = model.(App)
	model, _ = app.Update(runeKey('g'))
	app = model.(App)
	assert.False(t, app.gotoOpen)
	assert.Equal(t, "qg", app.page.selector.input.Value())
}

func TestAppCtrlCAsksBeforeDroppingAnOpenEditor(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey('a'))
	app = model.(App)
	require.True(t, app.hasUnsaved())

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	app = model.(App)
	assert.Nil(t, cmd)
	assert.True(t, app.quitConfirm)
	assert.Contains(t, app.View(), "Quit anyway?")

	model, _ = app.Update(runeKey('n'))
	app = model.(App)
	assert.False(t, app.quitConfirm)
	assert.NotNil(t, app.page.authorEditor)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	app = model.(App)
	_, cmd = app.Update(runeKey('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppHelpOverlay(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey('?'))
	app = model.(App)
	require.True(t, app.helpOpen)
	view := app.View()
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Link Existing")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	assert.False(t, app.helpOpen)
}

func TestAppGotoPrompt(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(runeKey('g'))
	app = model.(App)
	for _, r := range "abc" {
		model, _ = app.Update(runeKey(r))
		app = model.(App)
	}
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	app = model.(App)
	assert.Equal(t, "ab", app.gotoBuf)
	assert.Contains(t, app.View(), "Go to Author")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	assert.False(t, app.gotoOpen)
	assert.Equal(t, testSlug, app.page.slug)

	// An empty slug keeps the current page.
	model, _ = app.Update(runeKey('g'))
	app = model.(App)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	assert.Nil(t, cmd)
	assert.Equal(t, testSlug, app.page.slug)
}

func TestAppIgnoresNavigationFromPreviousPage(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(navigateMsg{token: "old", path: createProfilePath, slug: "gone"})
	app = model.(App)
	assert.Equal(t, routeAuthor, app.route)
}

func TestAppCreateProfileURL(t *testing.T) {
	app := App{}
	assert.Equal(t, api.DefaultBaseURL+createProfilePath, app.createProfileURL())
}

func TestCenterBlockUniformKeepsRelativeIndent(t *testing.T) {
	out := centerBlockUniform("ab\n  c", 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "   ab", lines[0])
	assert.Equal(t, "     c", lines[1])

	assert.Equal(t, "wide", centerBlockUniform("wide", 0))
	assert.Equal(t, "0123456789", centerBlockUniform("0123456789", 5))
}

func TestRenderPosition(t *testing.T) {
	both := renderPosition(api.Author{PositionTitle: "Professor", Affiliations: strPtr("MIT")})
	assert.Contains(t, both, "Professor, ")
	assert.Contains(t, both, "MIT")

	only := renderPosition(api.Author{PositionTitle: "Professor"})
	assert.Contains(t, only, "Professor")
	assert.NotContains(t, only, ",")

	empty := renderPosition(api.Author{PositionTitle: "Professor", Affiliations: strPtr("")})
	assert.NotContains(t, empty, ",")
}

func TestYearAndTypeLabels(t *testing.T) {
	assert.Equal(t, "In press", yearLabel(api.Article{Year: 2022, InPress: true}))
	assert.Equal(t, "2019", yearLabel(api.Article{Year: 2019}))
	assert.Equal(t, "META ANALYSIS", typeLabel(api.ArticleTypeMetaAnalysis))
}

func TestAppCreateProfileScreen(t *testing.T) {
	app := App{route: routeCreateProfile, missingSlug: "ghost", width: 120}
	view := app.View()
	assert.Contains(t, view, "Create Author Profile")
	assert.Contains(t, view, `No author found for "ghost".`)
	assert.Contains(t, view, api.DefaultBaseURL+createProfilePath)

	// Page keys are not routed while the create screen is shown.
	model, cmd := app.Update(runeKey('n'))
	assert.Nil(t, cmd)
	assert.Equal(t, routeCreateProfile, model.(App).route)
}
