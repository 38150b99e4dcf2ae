package profile

import "github.com/curatescience/curate/cli/internal/api"

// Session describes who is viewing the page.
type Session struct {
	Admin    bool
	AuthorID int // 0 when the viewer has no author profile
}

// Editable reports whether the session may mutate the author's page: admins
// always, otherwise only the author themself.
func Editable(s Session, author *api.Author) bool {
	if s.Admin {
		return true
	}
	return author != nil && s.AuthorID != 0 && s.AuthorID == author.ID
}
