package profile

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curatescience/curate/cli/internal/api"
)

// PlaceholderTitlePrefix starts the generated title of a new draft article.
const PlaceholderTitlePrefix = "New article "

const placeholderIDLen = 15

// NewPlaceholder builds the draft article created by "Add Article". It is
// never live; the author publishes it from the editor.
func NewPlaceholder(authorID int, now time.Time) api.CreateArticleInput {
	return api.CreateArticleInput{
		Title:        PlaceholderTitlePrefix + RandomID(placeholderIDLen),
		Authors:      []int{authorID},
		ArticleType:  api.ArticleTypeOriginal,
		Year:         now.Year(),
		KeyFigures:   []json.RawMessage{},
		Commentaries: []json.RawMessage{},
		IsLive:       false,
	}
}

// IsPlaceholderTitle reports whether title still carries the generated prefix.
func IsPlaceholderTitle(title string) bool {
	return strings.HasPrefix(title, PlaceholderTitlePrefix)
}

// RandomID returns n random lowercase alphanumerics. n is capped at 32.
func RandomID(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return id[:n]
}
