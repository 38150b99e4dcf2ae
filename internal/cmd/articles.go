package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
)

// ArticlesCmd returns the `curate articles` command.
func ArticlesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "articles <slug>",
		Short: "List an author's articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, client, err := loadClient()
			if err != nil {
				return err
			}
			articles, err := client.ListAuthorArticles(args[0])
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("no author %q", args[0])
				}
				return fmt.Errorf("list articles: %w", err)
			}
			if !all {
				articles = profile.DisplayList(articles)
			}
			printArticles(c.OutOrStdout(), articles)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include articles that are not live")
	return cmd
}

func printArticles(out io.Writer, articles []api.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(out, "no articles found")
		return
	}
	for _, a := range articles {
		year := strconv.Itoa(a.Year)
		if a.InPress {
			year = "in press"
		}
		draft := ""
		switch {
		case profile.IsPlaceholderTitle(a.Title):
			draft = "  (new, untitled)"
		case !a.IsLive:
			draft = "  (draft)"
		}
		fmt.Fprintf(out, "  %6d  %-8s  %-15s  %s%s\n", a.ID, year, a.ArticleType, a.Title, draft)
	}
}

// LinkCmd returns the `curate link` command.
func LinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <slug> <article-id>",
		Short: "Link an existing article to an author",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseArticleID(args[1])
			if err != nil {
				return err
			}
			_, client, err := loadClient()
			if err != nil {
				return err
			}
			article, err := profile.Link(client, args[0], id)
			if err != nil {
				if profile.IsPartialLink(err) {
					fmt.Fprintf(c.OutOrStdout(), "linked article %d\n", id)
				}
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "linked article %d: %s\n", article.ID, article.Title)
			return nil
		},
	}
}

// UnlinkCmd returns the `curate unlink` command.
func UnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <slug> <article-id>",
		Short: "Remove an article from an author",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseArticleID(args[1])
			if err != nil {
				return err
			}
			_, client, err := loadClient()
			if err != nil {
				return err
			}
			if err := profile.Unlink(client, args[0], id); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "unlinked article %d\n", id)
			return nil
		},
	}
}

func parseArticleID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid article id %q", raw)
	}
	return id, nil
}
