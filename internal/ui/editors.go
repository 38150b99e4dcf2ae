package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/curatescience/curate/cli/internal/api"
	"github.com/curatescience/curate/cli/internal/profile"
)

// --- Author Editor ---

type authorDraft struct {
	Name          string
	PositionTitle string
	Affiliations  string
	ProfileURLs   string // one per line
}

// AuthorEditor edits the name, position, affiliations and links of an author.
type AuthorEditor struct {
	seq   int // which opening of the editor this is
	base  api.Author
	draft *authorDraft
	form  *huh.Form
	width int
}

func newAuthorEditor(a api.Author, width int) *AuthorEditor {
	affiliations := ""
	if a.Affiliations != nil {
		affiliations = *a.Affiliations
	}
	e := &AuthorEditor{
		base: a,
		draft: &authorDraft{
			Name:          a.Name,
			PositionTitle: a.PositionTitle,
			Affiliations:  affiliations,
			ProfileURLs:   strings.Join(a.ProfileURLs, "\n"),
		},
		width: width,
	}
	e.rebuild()
	return e
}

// rebuild makes a fresh form over the current draft, e.g. after a failed save.
func (e *AuthorEditor) rebuild() {
	e.form = embedForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&e.draft.Name).
				Validate(requiredField("name")),
			huh.NewInput().
				Title("Position").
				Placeholder("e.g. Associate Professor").
				Value(&e.draft.PositionTitle),
			huh.NewInput().
				Title("Affiliations").
				Value(&e.draft.Affiliations),
			huh.NewText().
				Title("Profile links").
				Description("One URL per line").
				Lines(4).
				Value(&e.draft.ProfileURLs).
				Validate(validURLLines),
		),
	), e.width)
}

// edited returns the base author with the draft applied.
func (e *AuthorEditor) edited() api.Author {
	out := e.base
	out.Name = strings.TrimSpace(e.draft.Name)
	out.PositionTitle = strings.TrimSpace(e.draft.PositionTitle)
	if aff := strings.TrimSpace(e.draft.Affiliations); aff != "" {
		out.Affiliations = &aff
	} else if e.base.Affiliations != nil {
		empty := ""
		out.Affiliations = &empty
	}
	out.ProfileURLs = splitURLLines(e.draft.ProfileURLs)
	return out
}

// patch is the partial update to send, empty when nothing changed.
func (e *AuthorEditor) patch() api.AuthorPatch {
	return profile.DiffAuthor(e.base, e.edited())
}

// --- Article Editor ---

type articleDraft struct {
	Title       string
	ArticleType string
	Year        string
	Authors     string // comma separated author ids
	InPress     bool
	IsLive      bool
}

// ArticleEditor edits the bibliographic fields of a single article.
type ArticleEditor struct {
	base  api.Article
	draft *articleDraft
	form  *huh.Form
	width int
}

func newArticleEditor(a api.Article, width int) *ArticleEditor {
	ids := make([]string, len(a.Authors))
	for i, id := range a.Authors {
		ids[i] = strconv.Itoa(id)
	}
	articleType := a.ArticleType
	if articleType == "" {
		articleType = api.ArticleTypeOriginal
	}
	e := &ArticleEditor{
		base: a,
		draft: &articleDraft{
			Title:       a.Title,
			ArticleType: articleType,
			Year:        strconv.Itoa(a.Year),
			Authors:     strings.Join(ids, ", "),
			InPress:     a.InPress,
			IsLive:      a.IsLive,
		},
		width: width,
	}
	e.rebuild()
	return e
}

func (e *ArticleEditor) rebuild() {
	e.form = embedForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&e.draft.Title).
				Validate(requiredField("title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(api.ArticleTypes...)...).
				Value(&e.draft.ArticleType),
			huh.NewInput().
				Title("Year").
				Value(&e.draft.Year).
				Validate(validYear),
			huh.NewInput().
				Title("Author ids").
				Description("Comma separated").
				Value(&e.draft.Authors).
				Validate(func(s string) error {
					_, err := parseAuthorIDs(s)
					return err
				}),
			huh.NewConfirm().
				Title("In press?").
				Value(&e.draft.InPress),
			huh.NewConfirm().
				Title("Published?").
				Description("Only published articles are listed on author pages").
				Value(&e.draft.IsLive),
		),
	), e.width)
}

// edited returns the base article with the draft applied. The form validates
// every field before completing, so errors here mean a programming mistake.
func (e *ArticleEditor) edited() (api.Article, error) {
	out := e.base
	out.Title = strings.TrimSpace(e.draft.Title)
	out.ArticleType = e.draft.ArticleType
	year, err := strconv.Atoi(strings.TrimSpace(e.draft.Year))
	if err != nil {
		return api.Article{}, fmt.Errorf("year: %w", err)
	}
	out.Year = year
	authors, err := parseAuthorIDs(e.draft.Authors)
	if err != nil {
		return api.Article{}, err
	}
	out.Authors = authors
	out.InPress = e.draft.InPress
	out.IsLive = e.draft.IsLive
	return out, nil
}

// --- Form Helpers ---

// embedForm prepares a form to run inside the page instead of as its own
// program.
func embedForm(form *huh.Form, width int) *huh.Form {
	form.SubmitCmd = nil
	form.CancelCmd = nil
	form = form.WithShowHelp(false).WithTheme(huh.ThemeDracula())
	if width > 0 {
		form = form.WithWidth(editorWidth(width))
	}
	return form
}

func editorWidth(width int) int {
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 90 {
		w = 90
	}
	return w
}

// updateForm forwards msg to the form and returns the updated form.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validYear(s string) error {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 0 {
		return errors.New("year must be a positive number")
	}
	return nil
}

func validURLLines(s string) error {
	for _, line := range splitURLLines(s) {
		if !strings.HasPrefix(line, "http://") && !strings.HasPrefix(line, "https://") {
			return fmt.Errorf("not a link: %s", line)
		}
	}
	return nil
}

func splitURLLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func parseAuthorIDs(s string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid author id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("at least one author is required")
	}
	return ids, nil
}
