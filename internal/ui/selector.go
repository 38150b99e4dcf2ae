package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/ui/components"
)

// LinkSelector finds an existing article to link to the author. Articles
// already on the page are never offered.
type LinkSelector struct {
	input     textinput.Model
	exclude   map[int]struct{}
	query     string
	searching bool
	results   []api.Article
	list      *components.List
	err       string
}

func newLinkSelector(linked []int) *LinkSelector {
	input := textinput.New()
	input.Placeholder = "title, DOI or article id"
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	exclude := make(map[int]struct{}, len(linked))
	for _, id := range linked {
		exclude[id] = struct{}{}
	}
	return &LinkSelector{
		input:   input,
		exclude: exclude,
		list:    components.NewList(8),
	}
}

func (s *LinkSelector) excluded(id int) bool {
	_, ok := s.exclude[id]
	return ok
}

// directID returns the article id when the input is a bare number.
func (s *LinkSelector) directID() (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s.input.Value()))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// setResults applies a search response unless the query moved on since.
func (s *LinkSelector) setResults(query string, items []api.Article, err error) {
	if query != s.query {
		return
	}
	s.searching = false
	if err != nil {
		s.err = err.Error()
		s.results = nil
		s.list.Reset(0)
		return
	}
	s.err = ""
	s.results = s.results[:0]
	for _, a := range items {
		if !s.excluded(a.ID) {
			s.results = append(s.results, a)
		}
	}
	s.list.Reset(len(s.results))
}

func (s *LinkSelector) selected() (api.Article, bool) {
	idx := s.list.Selected()
	if idx < 0 || idx >= len(s.results) {
		return api.Article{}, false
	}
	return s.results[idx], true
}

// openSelector offers every article not already on the page.
func (m AuthorModel) openSelector() (AuthorModel, tea.Cmd) {
	m.selector = newLinkSelector(m.cache.ArticleIDs())
	return m, textinput.Blink
}

// searchCmd starts a search for the current input.
func (m AuthorModel) searchCmd(query string) tea.Cmd {
	client, token := m.client, m.token
	return func() tea.Msg {
		items, err := client.SearchArticles(query)
		return selectorResultsMsg{token: token, query: query, items: items, err: err}
	}
}

func (m AuthorModel) handleSelectorKeys(msg tea.KeyMsg) (AuthorModel, tea.Cmd) {
	s := m.selector
	switch {
	case isBack(msg):
		m.selector = nil
		return m, nil
	case isKey(msg, "up"):
		s.list.Up()
		return m, nil
	case isKey(msg, "down"):
		s.list.Down()
		return m, nil
	case isEnter(msg):
		if id, ok := s.directID(); ok {
			if s.excluded(id) {
				return m, m.showSnackCmd(fmt.Sprintf("Article %d is already on this page", id))
			}
			return m.linkArticle(id)
		}
		query := strings.TrimSpace(s.input.Value())
		if query != "" && query != s.query {
			s.query = query
			s.searching = true
			s.err = ""
			return m, tea.Batch(m.searchCmd(query), m.spinner.Tick)
		}
		if article, ok := s.selected(); ok {
			return m.linkArticle(article.ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return m, cmd
}

func (m AuthorModel) renderSelector() string {
	s := m.selector
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case m.linking:
		b.WriteString(m.spinner.View() + MutedStyle.Render(" Linking…"))
	case s.searching:
		b.WriteString(m.spinner.View() + MutedStyle.Render(" Searching…"))
	case s.err != "":
		b.WriteString(ErrorStyle.Render(components.SanitizeOneLine(s.err)))
	case s.query != "" && len(s.results) == 0:
		b.WriteString(MutedStyle.Render("No articles found."))
	case len(s.results) > 0:
		width := components.BoxContentWidth(m.width) - 2
		start, end := s.list.Window()
		for i := start; i < end; i++ {
			a := s.results[i]
			line := components.ClampTextWidthEllipsis(fmt.Sprintf("#%d %s (%s)", a.ID, a.Title, yearLabel(a)), width)
			if i == s.list.Selected() {
				b.WriteString(SelectedStyle.Render("› " + line))
			} else {
				b.WriteString(NormalStyle.Render("  " + line))
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	default:
		b.WriteString(MutedStyle.Render("Link an article that is already in the database, for example one added by a co-author."))
	}

	b.WriteString("\n\n")
	b.WriteString(MutedStyle.Render("enter: search / link | ↑/↓: select | esc: close"))
	return components.ActiveBox("Link Existing Article", b.String(), m.width)
}
