// Package profile holds the author page state that is independent of any
// rendering: the entity cache, the display policy and the linkage protocol.
package profile

import "github.com/curatescience/curate/cli/internal/api"

// Cache holds the loaded author and the author's articles for one page visit.
//
// Cache is a value. Every mutating method replaces the article slice instead
// of writing into it, so copies held by earlier renders never change.
type Cache struct {
	author   *api.Author
	articles []api.Article
}

// Author returns the cached author, or nil before the author is loaded.
func (c Cache) Author() *api.Author {
	if c.author == nil {
		return nil
	}
	a := *c.author
	return &a
}

// AuthorID returns the cached author's id, or 0 when no author is loaded.
func (c Cache) AuthorID() int {
	if c.author == nil {
		return 0
	}
	return c.author.ID
}

// Articles returns a copy of the cached articles in cache order.
func (c Cache) Articles() []api.Article {
	out := make([]api.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Len returns the number of cached articles, live or not.
func (c Cache) Len() int {
	return len(c.articles)
}

// ArticleIDs returns the ids of every cached article.
func (c Cache) ArticleIDs() []int {
	ids := make([]int, len(c.articles))
	for i, a := range c.articles {
		ids[i] = a.ID
	}
	return ids
}

// Article looks up a cached article by id.
func (c Cache) Article(id int) (api.Article, bool) {
	for _, a := range c.articles {
		if a.ID == id {
			return a, true
		}
	}
	return api.Article{}, false
}

// WithAuthor returns a cache holding author.
func (c Cache) WithAuthor(author api.Author) Cache {
	c.author = &author
	return c
}

// WithArticles returns a cache whose article collection is replaced.
func (c Cache) WithArticles(articles []api.Article) Cache {
	next := make([]api.Article, len(articles))
	copy(next, articles)
	c.articles = next
	return c
}

// Prepend puts article at the head of the collection. An existing entry with
// the same id is dropped so an article is never cached twice.
func (c Cache) Prepend(article api.Article) Cache {
	next := make([]api.Article, 0, len(c.articles)+1)
	next = append(next, article)
	for _, a := range c.articles {
		if a.ID != article.ID {
			next = append(next, a)
		}
	}
	c.articles = next
	return c
}

// Replace swaps the cached article with the same id. It reports false and
// leaves the cache alone when no such article is cached.
func (c Cache) Replace(article api.Article) (Cache, bool) {
	idx := -1
	for i, a := range c.articles {
		if a.ID == article.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c, false
	}
	next := make([]api.Article, len(c.articles))
	copy(next, c.articles)
	next[idx] = article
	c.articles = next
	return c, true
}

// Remove drops the article with the given id.
func (c Cache) Remove(id int) (Cache, bool) {
	next := make([]api.Article, 0, len(c.articles))
	for _, a := range c.articles {
		if a.ID != id {
			next = append(next, a)
		}
	}
	removed := len(next) != len(c.articles)
	c.articles = next
	return c, removed
}

// RetainAuthoredBy replaces the collection with the articles of updated whose
// authors still include authorID. Articles that lost the author are dropped.
func (c Cache) RetainAuthoredBy(updated []api.Article, authorID int) Cache {
	next := make([]api.Article, 0, len(updated))
	for _, a := range updated {
		if a.HasAuthor(authorID) {
			next = append(next, a)
		}
	}
	c.articles = next
	return c
}
