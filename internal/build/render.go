package build

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/steppi/scribe/internal/domain"
)

// NavLink is one entry in the shared page navigation.
type NavLink struct {
	Title string
	Href  string
}

// PageData feeds the page shell template.
type PageData struct {
	SiteName string
	Version  string
	Title    string
	CSSFiles []string
	Nav      []NavLink
	Body     string // Already-rendered HTML.
}

// Renderer converts markdown fragments and assembled pages to HTML.
type Renderer struct {
	md   goldmark.Markdown
	page *template.Template
	idx  *template.Template
}

// NewRenderer creates a renderer with the default goldmark pipeline.
func NewRenderer() *Renderer {
	return &Renderer{
		md:   goldmark.New(),
		page: template.Must(template.New("page").Parse(pageTemplate)),
		idx:  template.Must(template.New("index").Parse(indexTemplate)),
	}
}

// RenderMarkdown converts a markdown fragment to HTML.
func (r *Renderer) RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderLink renders a resolved cross-reference as an anchor element.
func (r *Renderer) RenderLink(link *domain.Link) string {
	return fmt.Sprintf("<a href=\"%s.html#%s\">%s</a>",
		link.Document, link.Anchor, html.EscapeString(link.Text))
}

// unresolvedMarker is the degraded output for a reference that could not
// be resolved.
func unresolvedMarker(target string) string {
	return fmt.Sprintf("<span class=\"unresolved-xref\">%s</span>", html.EscapeString(target))
}

// RenderPage wraps a rendered body in the page shell.
func (r *Renderer) RenderPage(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, struct {
		PageData
		BodyHTML template.HTML
	}{data, template.HTML(data.Body)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderIndexBody renders the grouped listing of one index as a page
// body.
func (r *Renderer) RenderIndexBody(localName string, groups []domain.IndexGroup) (string, error) {
	var buf bytes.Buffer
	err := r.idx.Execute(&buf, struct {
		LocalName string
		Groups    []domain.IndexGroup
	}{localName, groups})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} &mdash; {{.SiteName}}{{with .Version}} v{{.}}{{end}}</title>
{{- range .CSSFiles}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
<nav>
{{- range .Nav}}
<a href="{{.Href}}">{{.Title}}</a>
{{- end}}
</nav>
<main>
{{.BodyHTML}}
</main>
</body>
</html>
`

const indexTemplate = `<h1>{{.LocalName}}</h1>
{{- range .Groups}}
<h2>{{.Key}}</h2>
<ul>
{{- range .Entries}}
<li><a href="{{.Document}}.html#{{.Anchor}}">{{.DispName}}</a> <em>{{.TypeTag}}</em> ({{.Extra}})</li>
{{- end}}
</ul>
{{- end}}
`
