package profile

import (
	"errors"
	"fmt"

	"github.com/curatescience/curate/cli/internal/api"
)

// LinkageAPI is the part of the API client the linkage protocol needs.
type LinkageAPI interface {
	UpdateLinkage(slug string, updates []api.LinkageUpdate) error
	GetArticle(id int) (*api.Article, error)
}

// LinkPhase names the step of the link protocol that failed.
type LinkPhase string

const (
	// PhaseAssociate is the linkage write. Nothing changed server side.
	PhaseAssociate LinkPhase = "associate"
	// PhaseFetch is the follow-up article read. The link exists server side
	// but the client has no article to show until the list is refetched.
	PhaseFetch LinkPhase = "fetch"
	// PhaseDissociate is the unlink write.
	PhaseDissociate LinkPhase = "dissociate"
)

// LinkageError is a failed linkage protocol step.
type LinkageError struct {
	Phase     LinkPhase
	ArticleID int
	Err       error
}

func (e *LinkageError) Error() string {
	switch e.Phase {
	case PhaseFetch:
		return fmt.Sprintf("article %d linked but could not be loaded: %v", e.ArticleID, e.Err)
	case PhaseDissociate:
		return fmt.Sprintf("unlink article %d: %v", e.ArticleID, e.Err)
	default:
		return fmt.Sprintf("link article %d: %v", e.ArticleID, e.Err)
	}
}

func (e *LinkageError) Unwrap() error { return e.Err }

// IsPartialLink reports whether err is a link whose write succeeded but whose
// article fetch failed.
func IsPartialLink(err error) bool {
	var le *LinkageError
	return errors.As(err, &le) && le.Phase == PhaseFetch
}

// Link associates the article with the author, then fetches the full article
// because the linkage acknowledgement carries no article data. The fetch is
// only issued after the write succeeds.
func Link(c LinkageAPI, slug string, articleID int) (*api.Article, error) {
	if err := c.UpdateLinkage(slug, []api.LinkageUpdate{{Article: articleID, Linked: true}}); err != nil {
		return nil, &LinkageError{Phase: PhaseAssociate, ArticleID: articleID, Err: err}
	}
	article, err := c.GetArticle(articleID)
	if err != nil {
		return nil, &LinkageError{Phase: PhaseFetch, ArticleID: articleID, Err: err}
	}
	return article, nil
}

// Unlink dissociates the article from the author. No follow-up read is needed.
func Unlink(c LinkageAPI, slug string, articleID int) error {
	if err := c.UpdateLinkage(slug, []api.LinkageUpdate{{Article: articleID, Linked: false}}); err != nil {
		return &LinkageError{Phase: PhaseDissociate, ArticleID: articleID, Err: err}
	}
	return nil
}
