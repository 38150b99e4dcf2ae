package api

import "fmt"

// --- Article Methods ---

func (c *Client) GetArticle(id int) (*Article, error) {
	data, err := c.get(fmt.Sprintf("/api/articles/%d/", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Article](data)
}

func (c *Client) CreateArticle(input CreateArticleInput) (*Article, error) {
	data, err := c.post("/api/articles/create/", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Article](data)
}

func (c *Client) UpdateArticle(article Article) (*Article, error) {
	data, err := c.put(fmt.Sprintf("/api/articles/%d/", article.ID), article)
	if err != nil {
		return nil, err
	}
	return decodeOne[Article](data)
}

func (c *Client) SearchArticles(query string) ([]Article, error) {
	data, err := c.get(buildQuery("/api/articles/", map[string]string{"search": query}))
	if err != nil {
		return nil, err
	}
	return decodeList[Article](data)
}
