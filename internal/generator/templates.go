package generator

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const (
	collectionTemplate = "collection.html.tmpl"
	entryTemplate      = "entry.html.tmpl"
	htmlContentType    = "text/html; charset=utf-8"
	defaultBackLink    = "../../index.html"
)

func renderTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("generator: render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
