package profile

import (
	"cmp"
	"slices"

	"github.com/curatescience/curate/cli/internal/api"
)

// InPressYear is the effective year of an in-press article. It ranks above
// every dated article.
const InPressYear = 3000

// EffectiveYear is the sort key of an article on the profile page.
func EffectiveYear(a api.Article) int {
	if a.InPress {
		return InPressYear
	}
	return a.Year
}

// DisplayList derives the public article list: live articles only, newest
// effective year first. Equal years keep their input order.
//
// The result is rebuilt on every call and never cached.
func DisplayList(articles []api.Article) []api.Article {
	visible := make([]api.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsLive {
			visible = append(visible, a)
		}
	}
	slices.SortStableFunc(visible, func(a, b api.Article) int {
		return cmp.Compare(EffectiveYear(b), EffectiveYear(a))
	})
	return visible
}
