package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatescience/curate/cli/internal/api"
)

func TestCacheAuthor(t *testing.T) {
	var c Cache
	assert.Nil(t, c.Author())
	assert.Equal(t, 0, c.AuthorID())

	c = c.WithAuthor(api.Author{ID: 7, Slug: "jane"})
	require.NotNil(t, c.Author())
	assert.Equal(t, 7, c.AuthorID())

	// Returned author is a copy.
	c.Author().Name = "changed"
	assert.Empty(t, c.Author().Name)
}

func TestCachePrependKeepsOneEntryPerID(t *testing.T) {
	c := Cache{}.WithArticles([]api.Article{live(1, 2020), live(42, 2010)})

	fresh := live(42, 2011)
	c = c.Prepend(fresh)

	assert.Equal(t, []int{42, 1}, c.ArticleIDs())
	got, ok := c.Article(42)
	require.True(t, ok)
	assert.Equal(t, 2011, got.Year)
}

func TestCacheMutationsDoNotAlias(t *testing.T) {
	before := Cache{}.WithArticles([]api.Article{live(1, 2020), live(2, 2019)})
	snapshot := before.Articles()

	after, ok := before.Replace(live(1, 1999))
	require.True(t, ok)
	after, _ = after.Remove(2)
	after = after.Prepend(live(3, 2000))

	assert.Equal(t, snapshot, before.Articles())
	assert.Equal(t, []int{3, 1}, after.ArticleIDs())
}

func TestCacheReplaceMissing(t *testing.T) {
	c := Cache{}.WithArticles([]api.Article{live(1, 2020)})
	next, ok := c.Replace(live(5, 2020))
	assert.False(t, ok)
	assert.Equal(t, []int{1}, next.ArticleIDs())
}

func TestCacheRemove(t *testing.T) {
	c := Cache{}.WithAuthor(api.Author{ID: 1, Slug: "a"}).
		WithArticles([]api.Article{live(42, 2020), live(7, 2019)})

	c, removed := c.Remove(42)
	assert.True(t, removed)
	assert.Equal(t, []int{7}, c.ArticleIDs())
	assert.Equal(t, 1, c.AuthorID())

	_, removed = c.Remove(42)
	assert.False(t, removed)
}

func TestCacheRetainAuthoredBy(t *testing.T) {
	mine := api.Article{ID: 1, Authors: []int{7, 8}}
	notMine := api.Article{ID: 2, Authors: []int{8}}
	alsoMine := api.Article{ID: 3, Authors: []int{7}}

	c := Cache{}.RetainAuthoredBy([]api.Article{mine, notMine, alsoMine}, 7)
	assert.Equal(t, []int{1, 3}, c.ArticleIDs())
	assert.Equal(t, 2, c.Len())
}
