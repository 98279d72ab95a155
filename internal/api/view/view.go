// Package view renders the site's HTML pages from templates embedded in the
// binary. Every page shares the "base" layout.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pagecraft/blog/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layout = "templates/base.html"

// Page is the data handed to every template.
type Page struct {
	Title   string
	User    *domain.User
	Flashes []string

	// Heading and Message are free-form page texts ("New Post", "Contact Me").
	Heading string
	Message string

	Posts    []*domain.Post
	Post     *domain.Post
	Comments []*domain.Comment

	// Form holds the submitted or prefilled form values; never nil on form pages.
	Form      any
	Errors    map[string]string
	FormError string

	// Status is set on error pages.
	Status int
}

func (p *Page) LoggedIn() bool { return p.User != nil }

func (p *Page) IsAdmin() bool { return p.User.IsAdmin() }

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template together with the base layout.
func New() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	funcs := Funcs()
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layout {
			continue
		}
		t, err := template.New("").Funcs(funcs).ParseFS(templateFS, layout, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[strings.TrimPrefix(name, "templates/")] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Funcs returns the helpers available to templates.
func Funcs() template.FuncMap {
	policy := bluemonday.UGCPolicy()
	return template.FuncMap{
		// richText lets admin-authored post bodies through as HTML after
		// stripping scripts and event handlers.
		"richText": func(s string) template.HTML {
			return template.HTML(policy.Sanitize(s))
		},
		"gravatar": func(u *domain.User) string {
			if u == nil {
				return Gravatar("", AvatarSize)
			}
			return Gravatar(u.Email, AvatarSize)
		},
		"year": func() int { return time.Now().Year() },
	}
}
