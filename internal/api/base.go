package api

import "time"

// DefaultBaseURL is used when neither config nor environment names a server.
const DefaultBaseURL = "https://curatescience.org"

// NewDefaultClient builds a client pointed at the default curate URL.
func NewDefaultClient(csrfToken string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, csrfToken, timeout...)
}
