/*
Package fragments renders the HTML pieces swapped into pages by htmx:
gallery rows, anime cards, the section detail panel and the prediction
modal. Full pages embed the same markup so a fragment looks identical
whether it was rendered with the page or loaded afterwards.
*/
package fragments

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
)

//go:embed templates
var templateFS embed.FS

type FragmentRenderer interface {
	Render(w io.Writer, name string, data any) error
	RenderHTML(name string, data any) (template.HTML, error)
	Write(w http.ResponseWriter, status int, name string, data any)
}

type TemplateFragmentRenderer struct {
	templates *template.Template
}

func NewFragmentRenderer() (TemplateFragmentRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")

	if err != nil {
		return TemplateFragmentRenderer{}, fmt.Errorf("error parsing fragment templates: %w", err)
	}

	return TemplateFragmentRenderer{
		templates: t,
	}, nil
}

func (r TemplateFragmentRenderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("error rendering fragment '%s': %w", name, err)
	}

	return nil
}

func (r TemplateFragmentRenderer) RenderHTML(name string, data any) (template.HTML, error) {
	buf := &bytes.Buffer{}

	if err := r.Render(buf, name, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

/*
Write renders the fragment fully before anything is sent, so a template
error still produces a clean 500 response.
*/
func (r TemplateFragmentRenderer) Write(w http.ResponseWriter, status int, name string, data any) {
	markup, err := r.RenderHTML(name, data)

	if err != nil {
		slog.Error("error rendering fragment", "fragment", name, "error", err)
		httphelpers.TextInternalServerError(w, "Error rendering page")
		return
	}

	httphelpers.WriteHtml(w, status, string(markup))
}
