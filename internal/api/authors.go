package api

import (
	"fmt"
	"net/url"
	"strings"
)

// --- Author Methods ---

// authorPath escapes each slug segment; slugs may contain slashes.
func authorPath(slug string) string {
	parts := strings.Split(strings.Trim(slug, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/api/authors/" + strings.Join(parts, "/")
}

// GetAuthor fetches an author by slug. A missing author returns an error for
// which IsNotFound is true.
func (c *Client) GetAuthor(slug string) (*Author, error) {
	data, err := c.get(authorPath(slug))
	if err != nil {
		return nil, err
	}
	return decodeOne[Author](data)
}

// ListAuthorArticles returns the articles linked to the author, in server order.
func (c *Client) ListAuthorArticles(slug string) ([]Article, error) {
	data, err := c.get(authorPath(slug) + "/articles/")
	if err != nil {
		return nil, err
	}
	return decodeList[Article](data)
}

// UpdateLinkage links or unlinks articles. The acknowledgement carries no
// article data.
func (c *Client) UpdateLinkage(slug string, updates []LinkageUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("no linkage updates")
	}
	_, err := c.post(authorPath(slug)+"/articles/linkage/", updates)
	return err
}

// UpdateAuthor applies a partial update and returns the stored author.
func (c *Client) UpdateAuthor(slug string, patch AuthorPatch) (*Author, error) {
	data, err := c.patch(authorPath(slug)+"/", patch)
	if err != nil {
		return nil, err
	}
	return decodeOne[Author](data)
}
