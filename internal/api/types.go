package api

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var entityValidate = validator.New()

// validateEntity checks a decoded payload against its struct tags.
func validateEntity(v any) error {
	if err := entityValidate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// --- Article Types ---

const (
	ArticleTypeOriginal        = "ORIGINAL"
	ArticleTypeCommentary      = "COMMENTARY"
	ArticleTypeReplication     = "REPLICATION"
	ArticleTypeReproducibility = "REPRODUCIBILITY"
	ArticleTypeMetaAnalysis    = "META_ANALYSIS"
	ArticleTypeOther           = "OTHER"
)

// ArticleTypes lists every article type in display order.
var ArticleTypes = []string{
	ArticleTypeOriginal,
	ArticleTypeCommentary,
	ArticleTypeReplication,
	ArticleTypeReproducibility,
	ArticleTypeMetaAnalysis,
	ArticleTypeOther,
}

// --- Author ---

// Author is a researcher profile. Slug is the URL-stable identifier and may
// differ from ID.
type Author struct {
	ID            int      `json:"id" validate:"required"`
	Slug          string   `json:"slug" validate:"required"`
	Name          string   `json:"name"`
	PositionTitle string   `json:"position_title"`
	Affiliations  *string  `json:"affiliations"`
	ProfileURLs   []string `json:"profile_urls" validate:"dive,required"`
	IsActivated   bool     `json:"is_activated"`
}

// AuthorPatch carries a partial author update. Nil fields are left unchanged.
type AuthorPatch struct {
	Name          *string   `json:"name,omitempty"`
	PositionTitle *string   `json:"position_title,omitempty"`
	Affiliations  *string   `json:"affiliations,omitempty"`
	ProfileURLs   *[]string `json:"profile_urls,omitempty"`
}

// --- Article ---

// Article is a publication. Authors holds author ids.
type Article struct {
	ID           int               `json:"id" validate:"required"`
	Title        string            `json:"title" validate:"required"`
	Authors      []int             `json:"authors" validate:"dive,gt=0"`
	ArticleType  string            `json:"article_type" validate:"required"`
	Year         int               `json:"year" validate:"gte=0"`
	InPress      bool              `json:"in_press"`
	IsLive       bool              `json:"is_live"`
	KeyFigures   []json.RawMessage `json:"key_figures"`
	Commentaries []json.RawMessage `json:"commentaries"`
}

// HasAuthor reports whether authorID is a member of the article's authors.
func (a Article) HasAuthor(authorID int) bool {
	for _, id := range a.Authors {
		if id == authorID {
			return true
		}
	}
	return false
}

// CreateArticleInput defines the fields sent when creating an article.
type CreateArticleInput struct {
	Title        string            `json:"title"`
	Authors      []int             `json:"authors"`
	ArticleType  string            `json:"article_type"`
	Year         int               `json:"year"`
	KeyFigures   []json.RawMessage `json:"key_figures"`
	Commentaries []json.RawMessage `json:"commentaries"`
	IsLive       bool              `json:"is_live"`
}

// --- Linkage ---

// LinkageUpdate associates (Linked=true) or dissociates an article from an
// author.
type LinkageUpdate struct {
	Article int  `json:"article"`
	Linked  bool `json:"linked"`
}
