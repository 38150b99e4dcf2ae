package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/config"
	"github.com/curatescience/curate/cli/internal/profile"
)

type recorder struct {
	mu     sync.Mutex
	bodies map[string]string
}

func (r *recorder) body(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bodies[key]
}

// startSite serves a small curate API and points the environment at it.
func startSite(t *testing.T, routes map[string]any) (*recorder, string) {
	t.Helper()
	rec := &recorder{bodies: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.bodies[key] = string(body)
		rec.mu.Unlock()

		v, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Not found."}`)
			return
		}
		if status, ok := v.(int); ok {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"detail":"boom"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CURATE_BASE_URL", srv.URL)
	return rec, srv.URL
}

func article(id int, title string, year int, inPress, live bool) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        title,
		"authors":      []int{7},
		"article_type": api.ArticleTypeOriginal,
		"year":         year,
		"in_press":     inPress,
		"is_live":      live,
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginCmdRejectsEmptyUsername(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := LoginCmd()
	cmd.SetIn(strings.NewReader("\n\n"))
	_, err := run(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestLoginCmdResolvesAuthorAndSaves(t *testing.T) {
	_, base := startSite(t, map[string]any{
		"GET /api/authors/jane-doe": map[string]any{"id": 7, "slug": "jane-doe", "name": "Jane", "profile_urls": []string{}},
	})
	require.NoError(t, os.Unsetenv("CURATE_BASE_URL"))

	cmd := LoginCmd()
	cmd.SetIn(strings.NewReader(base + "\njane\ntok\nsess\n/jane-doe/\n"))
	out, err := run(t, cmd, "--admin")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as jane")
	assert.Contains(t, out, "id 7")

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, base, loaded.BaseURL)
	assert.Equal(t, "tok", loaded.CSRFToken)
	assert.Equal(t, "sess", loaded.SessionID)
	assert.Equal(t, "jane-doe", loaded.AuthorSlug)
	assert.Equal(t, 7, loaded.AuthorID)
	assert.True(t, loaded.Admin)
}

func TestLoginCmdUnknownAuthor(t *testing.T) {
	_, base := startSite(t, map[string]any{})

	cmd := LoginCmd()
	cmd.SetIn(strings.NewReader(base + "\njane\n\n\nnobody\n"))
	_, err := run(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no author profile "nobody"`)
}

func TestArticlesCmdPrintsDisplayOrder(t *testing.T) {
	startSite(t, map[string]any{
		"GET /api/authors/jane-doe/articles/": []map[string]any{
			article(1, "Old study", 2015, false, true),
			article(2, "Hidden draft", 2024, false, false),
			article(3, "Forthcoming", 2023, true, true),
			article(4, profile.PlaceholderTitlePrefix+"abc123", 2024, false, false),
		},
	})

	out, err := run(t, ArticlesCmd(), "jane-doe")
	require.NoError(t, err)
	assert.NotContains(t, out, "Hidden draft")
	assert.Less(t, strings.Index(out, "Forthcoming"), strings.Index(out, "Old study"))
	assert.Contains(t, out, "in press")

	out, err = run(t, ArticlesCmd(), "jane-doe", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Hidden draft  (draft)")
	assert.Contains(t, out, "(new, untitled)")
	assert.NotContains(t, out, "abc123  (draft)")
}

func TestArticlesCmdUnknownAuthor(t *testing.T) {
	startSite(t, map[string]any{})

	_, err := run(t, ArticlesCmd(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no author "ghost"`)
}

func TestLinkCmdWritesThenFetches(t *testing.T) {
	rec, _ := startSite(t, map[string]any{
		"POST /api/authors/jane-doe/articles/linkage/": map[string]any{"status": "ok"},
		"GET /api/articles/42/":                        article(42, "Linked study", 2018, false, true),
	})

	out, err := run(t, LinkCmd(), "jane-doe", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "linked article 42: Linked study")
	assert.JSONEq(t, `[{"article":42,"linked":true}]`, rec.body("POST /api/authors/jane-doe/articles/linkage/"))
}

func TestLinkCmdPartialLinkReportsBoth(t *testing.T) {
	startSite(t, map[string]any{
		"POST /api/authors/jane-doe/articles/linkage/": map[string]any{"status": "ok"},
		"GET /api/articles/42/":                        http.StatusInternalServerError,
	})

	out, err := run(t, LinkCmd(), "jane-doe", "42")
	require.Error(t, err)
	assert.Contains(t, out, "linked article 42")
	assert.Contains(t, err.Error(), "could not be loaded")
}

func TestUnlinkCmd(t *testing.T) {
	rec, _ := startSite(t, map[string]any{
		"POST /api/authors/jane-doe/articles/linkage/": map[string]any{"status": "ok"},
	})

	out, err := run(t, UnlinkCmd(), "jane-doe", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "unlinked article 9")
	assert.JSONEq(t, `[{"article":9,"linked":false}]`, rec.body("POST /api/authors/jane-doe/articles/linkage/"))
}

func TestLinkCmdRejectsBadID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, raw := range []string{"abc", "0", "1.5"} {
		_, err := run(t, LinkCmd(), "jane-doe", raw)
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "invalid article id")
	}
}

func TestClientFromConfigDefaults(t *testing.T) {
	assert.Equal(t, api.DefaultBaseURL, ClientFromConfig(nil).BaseURL())
	assert.Equal(t, api.DefaultBaseURL, ClientFromConfig(&config.Config{}).BaseURL())
	assert.Equal(t, "http://local", ClientFromConfig(&config.Config{BaseURL: "http://local"}).BaseURL())
}

func TestLoadConfigFallsBackToEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CURATE_BASE_URL", "http://env.test/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.BaseURL)
}
