package svg

import (
	"fmt"
	"html"
	"strings"
	"text/template"
)

const documentTemplate = `<svg width="{{num .Width}}" height="{{num .Height}}" xmlns="http://www.w3.org/2000/svg">
{{- if .Title}}
	<title>{{escape .Title}}</title>
{{- end}}
{{range .Fragments}}{{.}}{{end}}</svg>
`

var documentTmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"num":    num,
	"escape": html.EscapeString,
}).Parse(documentTemplate))

// Document collects fragments in drawing order and wraps them in an <svg>
// root element. Later fragments paint over earlier ones.
type Document struct {
	Width     float64
	Height    float64
	Title     string
	Fragments []string
}

// NewDocument creates an empty document of the given size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// SetTitle sets the accessible title of the document.
func (d *Document) SetTitle(title string) *Document {
	d.Title = title
	return d
}

// Add appends fragments in order.
func (d *Document) Add(fragments ...string) *Document {
	d.Fragments = append(d.Fragments, fragments...)
	return d
}

// Len returns the number of fragments added so far.
func (d *Document) Len() int {
	return len(d.Fragments)
}

// Render writes the complete document.
func (d *Document) Render() (string, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return "", fmt.Errorf("invalid document size: %vx%v", d.Width, d.Height)
	}
	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, d); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return sb.String(), nil
}
