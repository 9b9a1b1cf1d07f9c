// Package markdown parses entry sources made of YAML front matter and a
// Markdown body and renders the body to HTML.
package markdown
