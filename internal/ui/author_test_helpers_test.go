package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
)

const testSlug = "jane-doe"

var (
	ownerSession   = profile.Session{AuthorID: 7}
	visitorSession = profile.Session{AuthorID: 99}
)

// fakeSite records every request and serves the author page endpoints.
// Individual routes can be overridden per test.
type fakeSite struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string

	author    map[string]any
	articles  []map[string]any
	overrides map[string]http.HandlerFunc
}

func newFakeSite() *fakeSite {
	return &fakeSite{
		bodies: map[string]string{},
		author: authorJSON(7, testSlug, true),
		articles: []map[string]any{
			articleJSON(1, "Replication of X", 2020, false, true, 7),
			articleJSON(2, "Draft notes", 2021, false, false, 7),
			articleJSON(3, "Meta-analysis of Y", 2022, true, true, 7, 8),
			articleJSON(4, "Commentary on Z", 2019, false, true, 7),
		},
		overrides: map[string]http.HandlerFunc{},
	}
}

func (s *fakeSite) handle(key string, h http.HandlerFunc) {
	s.overrides[key] = h
}

func (s *fakeSite) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *fakeSite) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, k := range s.requests {
		if k == key {
			n++
		}
	}
	return n
}

func (s *fakeSite) body(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[key]
}

func (s *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, key)
	s.bodies[key] = string(body)
	s.mu.Unlock()

	if h, ok := s.overrides[key]; ok {
		h(w, r)
		return
	}

	switch {
	case key == "GET /api/authors/"+testSlug:
		writeJSON(w, s.author)
	case key == "GET /api/authors/"+testSlug+"/articles/":
		writeJSON(w, s.articles)
	case key == "POST /api/authors/"+testSlug+"/articles/linkage/":
		writeJSON(w, map[string]any{"status": "ok"})
	case key == "POST /api/articles/create/":
		var in map[string]any
		_ = json.Unmarshal(body, &in)
		in["id"] = 500
		writeJSON(w, in)
	case key == "GET /api/articles/42/":
		writeJSON(w, articleJSON(42, "Linked study", 2018, false, true, 7, 12))
	case key == "PATCH /api/authors/"+testSlug+"/":
		stored := map[string]any{}
		for k, v := range s.author {
			stored[k] = v
		}
		_ = json.Unmarshal(body, &stored)
		writeJSON(w, stored)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/articles/"):
		w.Write(body)
	case key == "GET /api/articles/":
		writeJSON(w, []map[string]any{
			articleJSON(1, "Replication of X", 2020, false, true, 7),
			articleJSON(42, "Linked study", 2018, false, true, 12),
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"detail": "Not found."})
	}
}

func (s *fakeSite) client(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, "csrf-test")
}

func fail(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		writeJSON(w, map[string]any{"detail": "boom"})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	b, _ := json.Marshal(v)
	w.Write(b)
}

func authorJSON(id int, slug string, activated bool) map[string]any {
	return map[string]any{
		"id":             id,
		"slug":           slug,
		"name":           "Jane Doe",
		"position_title": "Professor",
		"affiliations":   "University of Somewhere",
		"profile_urls":   []string{"https://example.org/jane"},
		"is_activated":   activated,
	}
}

func articleJSON(id int, title string, year int, inPress, live bool, authors ...int) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        title,
		"authors":      authors,
		"article_type": api.ArticleTypeOriginal,
		"year":         year,
		"in_press":     inPress,
		"is_live":      live,
		"key_figures":  []any{},
		"commentaries": []any{},
	}
}

// execCmd runs cmd and returns the messages it produces, flattening batches
// and skipping spinner ticks. Never call it on a command that carries a timer.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, execCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	}
	return []tea.Msg{msg}
}

// execOne runs cmd and requires exactly one message.
func execOne(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := execCmd(cmd)
	require.Len(t, msgs, 1)
	return msgs[0]
}

func newTestPage(client *api.Client, session profile.Session) AuthorModel {
	m := NewAuthorModel(client, session, zerolog.Nop(), testSlug, 0)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

// loadPage drives the mount flow: author fetch, then article fetch.
func loadPage(t *testing.T, m AuthorModel) AuthorModel {
	t.Helper()
	m, cmd := m.Update(execOne(t, m.Init()))
	m, _ = m.Update(execOne(t, cmd))
	return m
}

func displayIDs(m AuthorModel) []int {
	display := m.displayList()
	out := make([]int, len(display))
	for i, a := range display {
		out[i] = a.ID
	}
	return out
}

func typeText(m AuthorModel, text string) AuthorModel {
	for _, r := range text {
		m, _ = m.Update(runeKey(r))
	}
	return m
}
