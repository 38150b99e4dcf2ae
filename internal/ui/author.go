package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
	"github.com/curatescience/curate/cli/internal/ui/components"
)

// createProfilePath is where a visitor lands when the slug has no author.
const createProfilePath = "/app/author/create"

// --- Messages ---

// pageMsg is a response to a request issued by one page visit. Responses
// whose token does not match the current visit are dropped.
type pageMsg interface {
	pageToken() string
}

type authorLoadedMsg struct {
	token  string
	author *api.Author
}

type articlesLoadedMsg struct {
	token string
	items []api.Article
}

type articleCreatedMsg struct {
	token   string
	article *api.Article
}

type articleLinkedMsg struct {
	token   string
	article *api.Article
}

type articleUnlinkedMsg struct {
	token string
	id    int
}

type authorUpdatedMsg struct {
	token  string
	seq    int
	patch  api.AuthorPatch
	stored *api.Author
}

type articleUpdatedMsg struct {
	token   string
	article api.Article
}

type articlesUpdatedMsg struct {
	token string
	items []api.Article
}

type selectorResultsMsg struct {
	token string
	query string
	items []api.Article
	err   error
}

type showSnackMsg struct {
	token string
	text  string
}

type snackExpiredMsg struct {
	token string
	seq   int
}

type pageErrMsg struct {
	token string
	op    string
	err   error
}

func (m authorLoadedMsg) pageToken() string    { return m.token }
func (m articlesLoadedMsg) pageToken() string  { return m.token }
func (m articleCreatedMsg) pageToken() string  { return m.token }
func (m articleLinkedMsg) pageToken() string   { return m.token }
func (m articleUnlinkedMsg) pageToken() string { return m.token }
func (m authorUpdatedMsg) pageToken() string   { return m.token }
func (m articleUpdatedMsg) pageToken() string  { return m.token }
func (m articlesUpdatedMsg) pageToken() string { return m.token }
func (m selectorResultsMsg) pageToken() string { return m.token }
func (m showSnackMsg) pageToken() string       { return m.token }
func (m snackExpiredMsg) pageToken() string    { return m.token }
func (m pageErrMsg) pageToken() string         { return m.token }

// navigateMsg asks the app to leave the page.
type navigateMsg struct {
	token string
	path  string
	slug  string
}

const (
	opFetchAuthor   = "fetch author"
	opFetchArticles = "fetch articles"
	opCreate        = "create article"
	opLink          = "link article"
	opUnlink        = "unlink article"
	opUpdateAuthor  = "update author"
	opUpdateArticle = "update article"
)

// --- Author Model ---

// AuthorModel is one visit to an author's page. It owns the loaded author
// and their articles and is rebuilt on every navigation.
type AuthorModel struct {
	client  *api.Client
	log     zerolog.Logger
	session profile.Session
	now     func() time.Time

	slug   string
	token  string
	anchor int // article id the page was opened on, 0 for none

	cache profile.Cache
	list  *components.List

	authorLoading   bool
	articlesLoading bool
	loading         bool
	linking         bool

	editorSeq        int
	authorEditor     *AuthorEditor
	articleEditor    *ArticleEditor
	editingArticleID int
	selector         *LinkSelector
	confirmUnlink    *api.Article

	snack   snack
	spinner spinner.Model

	width  int
	height int
}

// NewAuthorModel builds the page for slug. anchor, when non-zero, is the
// article the cursor starts on once the list has loaded.
func NewAuthorModel(client *api.Client, session profile.Session, log zerolog.Logger, slug string, anchor int) AuthorModel {
	return AuthorModel{
		client:  client,
		log:     log.With().Str("slug", slug).Logger(),
		session: session,
		now:     time.Now,
		slug:    slug,
		token:   uuid.NewString(),
		anchor:  anchor,
		list:    components.NewList(10),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
		),
		authorLoading: true,
	}
}

func (m AuthorModel) Init() tea.Cmd {
	return tea.Batch(m.fetchAuthor(), m.spinner.Tick)
}

func (m AuthorModel) Update(msg tea.Msg) (AuthorModel, tea.Cmd) {
	if pm, ok := msg.(pageMsg); ok && pm.pageToken() != m.token {
		m.log.Debug().Msg("dropped response from a previous page")
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authorLoadedMsg:
		m.authorLoading = false
		m.cache = m.cache.WithAuthor(*msg.author)
		return m.fetchArticles()

	case articlesLoadedMsg:
		m.articlesLoading = false
		m.cache = m.cache.WithArticles(msg.items)
		m.list.Reset(len(m.displayList()))
		m.applyAnchor()
		return m, nil

	case articleCreatedMsg:
		m.loading = false
		m.cache = m.cache.Prepend(*msg.article)
		m.syncList()
		m.log.Info().Int("article", msg.article.ID).Msg("created placeholder article")
		return m.openArticleEditor(*msg.article)

	case articleLinkedMsg:
		m.linking = false
		m = m.applyLinked(*msg.article)
		cmd := m.showSnack(fmt.Sprintf("Linked %q", msg.article.Title))
		return m, cmd

	case articleUnlinkedMsg:
		m = m.applyUnlinked(msg.id)
		cmd := m.showSnack("Article unlinked")
		return m, cmd

	case authorUpdatedMsg:
		m.loading = false
		if author := m.cache.Author(); author != nil {
			patch := msg.patch
			if msg.stored != nil {
				patch = profile.ConfirmedPatch(msg.patch, *msg.stored)
			}
			m.cache = m.cache.WithAuthor(profile.MergeAuthor(*author, patch))
		}
		if m.authorEditor != nil && m.authorEditor.seq == msg.seq {
			m.authorEditor = nil
		}
		cmd := m.showSnack("Author profile saved")
		return m, cmd

	case articleUpdatedMsg:
		m.loading = false
		m.cache, _ = m.cache.Replace(msg.article)
		if m.articleEditor != nil && m.editingArticleID == msg.article.ID {
			m.closeArticleEditor()
		}
		m.syncList()
		if !msg.article.HasAuthor(m.cache.AuthorID()) {
			return m, m.articlesUpdatedCmd()
		}
		return m, nil

	case articlesUpdatedMsg:
		return m.reconcileArticles(msg.items), nil

	case selectorResultsMsg:
		if m.selector != nil {
			m.selector.setResults(msg.query, msg.items, msg.err)
		}
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("query", msg.query).Msg("article search failed")
		}
		return m, nil

	case showSnackMsg:
		cmd := m.showSnack(msg.text)
		return m, cmd

	case snackExpiredMsg:
		m.expireSnack(msg.seq)
		return m, nil

	case pageErrMsg:
		return m.handleError(msg)

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	// Forms need non-key messages too, e.g. cursor blinks.
	switch {
	case m.authorEditor != nil:
		var cmd tea.Cmd
		m.authorEditor.form, cmd = updateForm(m.authorEditor.form, msg)
		return m, cmd
	case m.articleEditor != nil:
		var cmd tea.Cmd
		m.articleEditor.form, cmd = updateForm(m.articleEditor.form, msg)
		return m, cmd
	case m.selector != nil:
		var cmd tea.Cmd
		m.selector.input, cmd = m.selector.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// --- Requests ---

func (m AuthorModel) fetchAuthor() tea.Cmd {
	client, slug, token := m.client, m.slug, m.token
	return func() tea.Msg {
		author, err := client.GetAuthor(slug)
		if err != nil {
			return pageErrMsg{token: token, op: opFetchAuthor, err: err}
		}
		return authorLoadedMsg{token: token, author: author}
	}
}

func (m AuthorModel) fetchArticles() (AuthorModel, tea.Cmd) {
	if m.cache.Author() == nil {
		return m, nil
	}
	m.articlesLoading = true
	client, slug, token := m.client, m.slug, m.token
	return m, tea.Batch(func() tea.Msg {
		items, err := client.ListAuthorArticles(slug)
		if err != nil {
			return pageErrMsg{token: token, op: opFetchArticles, err: err}
		}
		return articlesLoadedMsg{token: token, items: items}
	}, m.spinner.Tick)
}

// createNewArticle asks the server for a placeholder draft. Nothing is added
// to the cache until the server answers with the created article.
func (m AuthorModel) createNewArticle() (AuthorModel, tea.Cmd) {
	authorID := m.cache.AuthorID()
	if authorID == 0 || m.loading {
		return m, nil
	}
	input := profile.NewPlaceholder(authorID, m.now())
	m.loading = true
	client, token := m.client, m.token
	return m, tea.Batch(func() tea.Msg {
		article, err := client.CreateArticle(input)
		if err != nil {
			return pageErrMsg{token: token, op: opCreate, err: err}
		}
		return articleCreatedMsg{token: token, article: article}
	}, m.spinner.Tick)
}

func (m AuthorModel) saveAuthor() (AuthorModel, tea.Cmd) {
	patch := m.authorEditor.patch()
	if profile.IsEmptyPatch(patch) {
		m.authorEditor = nil
		return m, nil
	}
	m.loading = true
	client, slug, token, seq := m.client, m.slug, m.token, m.authorEditor.seq
	return m, tea.Batch(func() tea.Msg {
		stored, err := client.UpdateAuthor(slug, patch)
		if err != nil {
			return pageErrMsg{token: token, op: opUpdateAuthor, err: err}
		}
		return authorUpdatedMsg{token: token, seq: seq, patch: patch, stored: stored}
	}, m.spinner.Tick)
}

func (m AuthorModel) saveArticle() (AuthorModel, tea.Cmd) {
	article, err := m.articleEditor.edited()
	if err != nil {
		m.articleEditor.rebuild()
		cmd := tea.Batch(m.showSnack(err.Error()), m.articleEditor.form.Init())
		return m, cmd
	}
	m.loading = true
	client, token := m.client, m.token
	return m, tea.Batch(func() tea.Msg {
		updated, err := client.UpdateArticle(article)
		if err != nil {
			return pageErrMsg{token: token, op: opUpdateArticle, err: err}
		}
		return articleUpdatedMsg{token: token, article: *updated}
	}, m.spinner.Tick)
}

func (m AuthorModel) showSnackCmd(text string) tea.Cmd {
	token := m.token
	return func() tea.Msg { return showSnackMsg{token: token, text: text} }
}

// handleError clears the flag of the failed request and tells the user.
// The cache is never touched on failure.
func (m AuthorModel) handleError(msg pageErrMsg) (AuthorModel, tea.Cmd) {
	m.log.Error().Err(msg.err).Str("op", msg.op).Msg("request failed")

	var text string
	switch msg.op {
	case opFetchAuthor:
		if api.IsNotFound(msg.err) {
			token, slug := m.token, m.slug
			return m, func() tea.Msg { return navigateMsg{token: token, path: createProfilePath, slug: slug} }
		}
		m.authorLoading = false
		text = "Couldn't load this author. Press r to retry."
	case opFetchArticles:
		m.articlesLoading = false
		text = "Couldn't load articles. Press r to retry."
	case opCreate:
		m.loading = false
		text = "Couldn't create a new article."
	case opLink:
		m.linking = false
		if profile.IsPartialLink(msg.err) {
			m.selector = nil
			text = "Article linked, but it couldn't be loaded. Press r to refresh."
		} else {
			text = "Couldn't link the article."
		}
	case opUnlink:
		m.confirmUnlink = nil
		text = "Couldn't unlink the article."
	case opUpdateAuthor:
		m.loading = false
		text = "Couldn't save the author profile."
		if m.authorEditor != nil {
			m.authorEditor.rebuild()
			cmd := tea.Batch(m.showSnack(text), m.authorEditor.form.Init())
			return m, cmd
		}
	case opUpdateArticle:
		m.loading = false
		text = "Couldn't save the article."
		if m.articleEditor != nil {
			m.articleEditor.rebuild()
			cmd := tea.Batch(m.showSnack(text), m.articleEditor.form.Init())
			return m, cmd
		}
	default:
		text = msg.err.Error()
	}
	cmd := m.showSnack(text)
	return m, cmd
}

// --- Keys ---

func (m AuthorModel) handleKeys(msg tea.KeyMsg) (AuthorModel, tea.Cmd) {
	switch {
	case m.authorEditor != nil:
		return m.handleAuthorEditorKeys(msg)
	case m.articleEditor != nil:
		return m.handleArticleEditorKeys(msg)
	case m.selector != nil:
		return m.handleSelectorKeys(msg)
	case m.confirmUnlink != nil:
		return m.handleUnlinkConfirm(msg)
	}

	if isBack(msg) && m.snack.visible() {
		m.closeSnack()
		return m, nil
	}

	switch {
	case isUp(msg):
		m.list.Up()
		return m, nil
	case isDown(msg):
		m.list.Down()
		return m, nil
	case isKey(msg, keyRefresh):
		if m.cache.Author() == nil {
			if m.authorLoading {
				return m, nil
			}
			m.authorLoading = true
			return m, tea.Batch(m.fetchAuthor(), m.spinner.Tick)
		}
		if m.articlesLoading {
			return m, nil
		}
		return m.fetchArticles()
	}

	if !m.editable() || !m.activated() {
		return m, nil
	}
	switch {
	case isKey(msg, keyNewArticle):
		return m.createNewArticle()
	case isKey(msg, keyLink):
		return m.openSelector()
	case isKey(msg, keyUnlink):
		if article, ok := m.selectedArticle(); ok {
			m.confirmUnlink = &article
		}
		return m, nil
	case isKey(msg, keyEdit), isEnter(msg):
		if article, ok := m.selectedArticle(); ok {
			return m.openArticleEditor(article)
		}
		return m, nil
	case isKey(msg, keyEditAuthor):
		if author := m.cache.Author(); author != nil {
			m.editorSeq++
			m.authorEditor = newAuthorEditor(*author, m.width)
			m.authorEditor.seq = m.editorSeq
			return m, m.authorEditor.form.Init()
		}
	}
	return m, nil
}

func (m AuthorModel) handleAuthorEditorKeys(msg tea.KeyMsg) (AuthorModel, tea.Cmd) {
	if isBack(msg) {
		m.authorEditor = nil
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.authorEditor.form, cmd = updateForm(m.authorEditor.form, msg)
	switch m.authorEditor.form.State {
	case huh.StateCompleted:
		var save tea.Cmd
		m, save = m.saveAuthor()
		return m, tea.Batch(cmd, save)
	case huh.StateAborted:
		m.authorEditor = nil
	}
	return m, cmd
}

func (m AuthorModel) handleArticleEditorKeys(msg tea.KeyMsg) (AuthorModel, tea.Cmd) {
	if isBack(msg) {
		m.closeArticleEditor()
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.articleEditor.form, cmd = updateForm(m.articleEditor.form, msg)
	switch m.articleEditor.form.State {
	case huh.StateCompleted:
		var save tea.Cmd
		m, save = m.saveArticle()
		return m, tea.Batch(cmd, save)
	case huh.StateAborted:
		m.closeArticleEditor()
	}
	return m, cmd
}

func (m AuthorModel) handleUnlinkConfirm(msg tea.KeyMsg) (AuthorModel, tea.Cmd) {
	switch {
	case isConfirm(msg):
		article := *m.confirmUnlink
		return m.unlinkArticle(article)
	case isDecline(msg):
		m.confirmUnlink = nil
	}
	return m, nil
}

func (m AuthorModel) openArticleEditor(article api.Article) (AuthorModel, tea.Cmd) {
	m.articleEditor = newArticleEditor(article, m.width)
	m.editingArticleID = article.ID
	return m, m.articleEditor.form.Init()
}

func (m *AuthorModel) closeArticleEditor() {
	m.articleEditor = nil
	m.editingArticleID = 0
}

// --- State ---

// editable reports whether the viewer may change this page.
func (m AuthorModel) editable() bool {
	return profile.Editable(m.session, m.cache.Author())
}

// capturesInput reports whether an editor, selector or prompt owns the
// keyboard.
func (m AuthorModel) capturesInput() bool {
	return m.authorEditor != nil || m.articleEditor != nil || m.selector != nil || m.confirmUnlink != nil
}

func (m AuthorModel) activated() bool {
	author := m.cache.Author()
	return author != nil && author.IsActivated
}

func (m AuthorModel) busy() bool {
	return m.authorLoading || m.articlesLoading || m.loading || m.linking ||
		(m.selector != nil && m.selector.searching)
}

// displayList is recomputed from the cache on every call.
func (m AuthorModel) displayList() []api.Article {
	return profile.DisplayList(m.cache.Articles())
}

func (m AuthorModel) selectedArticle() (api.Article, bool) {
	display := m.displayList()
	idx := m.list.Selected()
	if idx < 0 || idx >= len(display) {
		return api.Article{}, false
	}
	return display[idx], true
}

// syncList keeps the cursor on the same article when the list changes.
func (m *AuthorModel) syncList() {
	current, hadSelection := m.selectedArticle()
	display := m.displayList()
	m.list.Resize(len(display))
	if !hadSelection {
		return
	}
	for i, a := range display {
		if a.ID == current.ID {
			m.list.Select(i)
			return
		}
	}
}

// applyAnchor moves the cursor back to the deep-linked article after the list
// is rebuilt.
func (m *AuthorModel) applyAnchor() {
	if m.anchor == 0 {
		return
	}
	for i, a := range m.displayList() {
		if a.ID == m.anchor {
			m.list.Select(i)
			return
		}
	}
}

func (m *AuthorModel) resizeList() {
	rows := (m.height - 24) / 2
	if rows < 3 {
		rows = 3
	}
	m.list.PageSize = rows
	m.list.Resize(m.list.Len)
}

// --- View ---

func (m AuthorModel) View() string {
	author := m.cache.Author()
	if author == nil {
		if m.authorLoading {
			return components.Indent(components.Box(m.spinner.View()+MutedStyle.Render(" Loading author…"), m.width), 1)
		}
		return components.Indent(components.ErrorBox("Author unavailable", "Press r to retry.", m.width), 1) +
			m.renderFooter()
	}
	if !author.IsActivated {
		msg := NameStyle.Render("This user has not created an author profile yet")
		return components.Indent(components.Box(msg, m.width), 1) + m.renderFooter()
	}

	var body string
	switch {
	case m.authorEditor != nil:
		body = components.ActiveBox("Edit Author", m.authorEditor.form.View(), m.width)
	case m.articleEditor != nil:
		body = components.ActiveBox(fmt.Sprintf("Edit Article #%d", m.editingArticleID), m.articleEditor.form.View(), m.width)
	case m.selector != nil:
		body = m.renderSelector()
	case m.confirmUnlink != nil:
		body = components.ConfirmDialog("Unlink Article",
			fmt.Sprintf("Remove %q from this author page? The article itself is kept.", m.confirmUnlink.Title))
	default:
		body = m.renderHeader(*author) + "\n\n" + m.renderArticles()
	}
	return components.Indent(body, 1) + m.renderFooter()
}

func (m AuthorModel) renderHeader(a api.Author) string {
	var b strings.Builder
	b.WriteString(NameStyle.Render(components.SanitizeOneLine(a.Name)))
	if line := renderPosition(a); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	for _, link := range a.ProfileURLs {
		b.WriteString("\n")
		b.WriteString(LinkStyle.Render(components.ClampTextWidthEllipsis(link, components.BoxContentWidth(m.width))))
	}
	if m.editable() {
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("You can edit this page."))
	}
	return components.TitledBox("Author", b.String(), m.width)
}

// renderPosition joins the position and affiliations with ", " when both
// are present.
func renderPosition(a api.Author) string {
	position := components.SanitizeOneLine(a.PositionTitle)
	if a.Affiliations == nil {
		return MutedStyle.Render(position)
	}
	affiliations := components.SanitizeOneLine(*a.Affiliations)
	if position != "" && affiliations != "" {
		position += ", "
	}
	return MutedStyle.Render(position) + AffiliationStyle.Render(affiliations)
}

func (m AuthorModel) renderArticles() string {
	if m.articlesLoading {
		return components.Box(m.spinner.View()+MutedStyle.Render(" Loading articles…"), m.width)
	}
	display := m.displayList()
	if len(display) == 0 {
		return components.TitledBox("Articles", components.CenterLine(MutedStyle.Render("No articles yet."), m.width), m.width)
	}

	width := components.BoxContentWidth(m.width)
	start, end := m.list.Window()
	rows := make([]string, 0, end-start+1)
	rows = append(rows, MutedStyle.Render(fmt.Sprintf("%d articles", len(display))), "")
	for i := start; i < end; i++ {
		rows = append(rows, m.renderArticleRow(display[i], i == m.list.Selected(), width))
	}
	return components.TitledBox("Articles", strings.Join(rows, "\n"), m.width)
}

func (m AuthorModel) renderArticleRow(a api.Article, selected bool, width int) string {
	year := yearLabel(a)
	if a.InPress {
		year = InPressStyle.Render(year)
	}
	badge := TypeBadgeStyle.Render(typeLabel(a.ArticleType))
	prefix := "  "
	titleStyle := NormalStyle
	if selected {
		prefix = "› "
		titleStyle = SelectedStyle
	}
	head := prefix + year + "  " + badge
	titleWidth := width - lipgloss.Width(prefix)
	title := titleStyle.Render(components.ClampTextWidthEllipsis(a.Title, titleWidth))
	return head + "\n" + strings.Repeat(" ", lipgloss.Width(prefix)) + title
}

func yearLabel(a api.Article) string {
	if a.InPress {
		return "In press"
	}
	return fmt.Sprintf("%d", a.Year)
}

func typeLabel(articleType string) string {
	return strings.ReplaceAll(articleType, "_", " ")
}

func (m AuthorModel) renderFooter() string {
	out := "\n\n" + components.StatusBar(m.statusHints(), m.width)
	if s := m.renderSnack(); s != "" {
		out += "\n\n" + components.Indent(s, 1)
	}
	return out
}

func (m AuthorModel) statusHints() []string {
	switch {
	case m.authorEditor != nil, m.articleEditor != nil:
		return []string{
			components.Hint("enter", "Next"),
			components.Hint("esc", "Close"),
		}
	case m.selector != nil, m.confirmUnlink != nil:
		return nil
	}
	hints := []string{
		components.Hint("↑/↓", "Move"),
		components.Hint(keyRefresh, "Refresh"),
	}
	if m.editable() {
		hints = append(hints,
			components.Hint(keyNewArticle, "Add Article"),
			components.Hint(keyLink, "Link Existing"),
			components.Hint(keyUnlink, "Unlink"),
			components.Hint(keyEdit, "Edit Article"),
			components.Hint(keyEditAuthor, "Edit Author"),
		)
	}
	return hints
}
