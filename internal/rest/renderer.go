package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"home.html",
	"detail.html",
	"comment_edit.html",
	"comment_delete.html",
	"login.html",
	"signup.html",
	"logged_out.html",
}

// Renderer implements echo.Renderer over the embedded page templates.
// Every page is parsed together with base.html and executed through "base".
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"canModify": func(u *newsportal.User, c newsportal.Comment) bool {
		return newsportal.CanModify(u, &c)
	},
	"fieldErrors": func(ve *newsportal.ValidationError, field string) []string {
		if ve == nil {
			return nil
		}
		return ve.Fields[field]
	},
	"date": func(t time.Time) string {
		return t.Format("02.01.2006")
	},
	"datetime": func(t time.Time) string {
		return t.Format("02.01.2006 15:04")
	},
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// MustRenderer is like NewRenderer but panics on a broken template.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	return t.ExecuteTemplate(w, "base", data)
}
