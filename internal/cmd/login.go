package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/config"
)

// RunInteractiveLogin prompts for the server and session credentials, resolves
// the user's author profile, and persists config.
func RunInteractiveLogin(in io.Reader, out io.Writer, admin bool) error {
	reader := bufio.NewReader(in)
	prompt := func(label string) string {
		fmt.Fprint(out, label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	baseURL := prompt(fmt.Sprintf("server [%s]: ", api.DefaultBaseURL))
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	username := prompt("username: ")
	if username == "" {
		return fmt.Errorf("username is required")
	}
	csrf := prompt("csrf token: ")
	session := prompt("session id: ")
	slug := strings.Trim(prompt("author slug (blank if none): "), "/")

	cfg := &config.Config{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		CSRFToken:  csrf,
		SessionID:  session,
		Username:   username,
		AuthorSlug: slug,
		Admin:      admin,
	}

	if slug != "" {
		author, err := ClientFromConfig(cfg).GetAuthor(slug)
		if err != nil {
			if api.IsNotFound(err) {
				return fmt.Errorf("no author profile %q on %s", slug, cfg.BaseURL)
			}
			return fmt.Errorf("resolve author: %w", err)
		}
		cfg.AuthorID = author.ID
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s\n", username)
	if cfg.AuthorID != 0 {
		fmt.Fprintf(out, "author profile: %s (id %d)\n", slug, cfg.AuthorID)
	}
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `curate login` command.
func LoginCmd() *cobra.Command {
	var admin bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for a curate server",
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveLogin(c.InOrStdin(), c.OutOrStdout(), admin)
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "session belongs to a site administrator")
	return cmd
}
