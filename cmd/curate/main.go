package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/curatescience/curate/cli/internal/cmd"
	"github.com/curatescience/curate/cli/internal/config"
	"github.com/curatescience/curate/cli/internal/logging"
	"github.com/curatescience/curate/cli/internal/ui"
)

var errNoSlug = errors.New("no author given. pass a slug or run 'curate login' with an author slug")

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var anchor int
	root := &cobra.Command{
		Use:   "curate [slug]",
		Short: "Curate Science author pages",
		Long:  "curate: browse an author's articles, link and unlink them, and edit the profile.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			slug := ""
			if len(args) == 1 {
				slug = args[0]
			}
			return runTUI(slug, anchor)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().IntVar(&anchor, "article", 0, "article id to place the cursor on")

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ArticlesCmd())
	root.AddCommand(cmd.LinkCmd())
	root.AddCommand(cmd.UnlinkCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func resolveSlug(arg string, cfg *config.Config) (string, error) {
	slug := strings.Trim(strings.TrimSpace(arg), "/")
	if slug == "" && cfg != nil {
		slug = cfg.AuthorSlug
	}
	if slug == "" {
		return "", errNoSlug
	}
	return slug, nil
}

func runTUI(arg string, anchor int) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	slug, err := resolveSlug(arg, cfg)
	if err != nil {
		return err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = filepath.Join(config.Dir(), logging.DefaultFile)
	}
	log, closer, err := logging.Open(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().Str("slug", slug).Int("anchor", anchor).Str("base_url", cfg.BaseURL).Msg("starting")

	app := ui.NewApp(cmd.ClientFromConfig(cfg), cfg.Session(), log, slug, anchor)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
