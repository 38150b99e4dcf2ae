package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
)

// linkArticle runs the two step link protocol for articleID. The selector
// stays open until the article is in the cache. Only one link runs at a time.
func (m AuthorModel) linkArticle(articleID int) (AuthorModel, tea.Cmd) {
	if m.linking {
		return m, nil
	}
	if _, ok := m.cache.Article(articleID); ok {
		return m, m.showSnackCmd("Article is already on this page")
	}
	m.linking = true
	client, slug, token := m.client, m.slug, m.token
	m.log.Info().Str("slug", slug).Int("article", articleID).Msg("linking article")
	return m, tea.Batch(func() tea.Msg {
		article, err := profile.Link(client, slug, articleID)
		if err != nil {
			return pageErrMsg{token: token, op: opLink, err: err}
		}
		return articleLinkedMsg{token: token, article: article}
	}, m.spinner.Tick)
}

// unlinkArticle dissociates the article. The cache is only touched once the
// server confirms.
func (m AuthorModel) unlinkArticle(article api.Article) (AuthorModel, tea.Cmd) {
	client, slug, token, id := m.client, m.slug, m.token, article.ID
	m.log.Info().Str("slug", slug).Int("article", id).Msg("unlinking article")
	return m, func() tea.Msg {
		if err := profile.Unlink(client, slug, id); err != nil {
			return pageErrMsg{token: token, op: opUnlink, err: err}
		}
		return articleUnlinkedMsg{token: token, id: id}
	}
}

func (m AuthorModel) applyLinked(article api.Article) AuthorModel {
	m.cache = m.cache.Prepend(article)
	m.selector = nil
	m.syncList()
	return m
}

func (m AuthorModel) applyUnlinked(id int) AuthorModel {
	m.cache, _ = m.cache.Remove(id)
	m.confirmUnlink = nil
	m.syncList()
	return m
}

// reconcileArticles drops every article the author no longer belongs to.
func (m AuthorModel) reconcileArticles(updated []api.Article) AuthorModel {
	m.cache = m.cache.RetainAuthoredBy(updated, m.cache.AuthorID())
	m.syncList()
	return m
}

// articlesUpdatedCmd reports a broader list change after an edit moved an
// article out of the author's set.
func (m AuthorModel) articlesUpdatedCmd() tea.Cmd {
	token, items := m.token, m.cache.Articles()
	return func() tea.Msg {
		return articlesUpdatedMsg{token: token, items: items}
	}
}
