package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ParseOptions selects goldmark extensions and renderer behaviour.
type ParseOptions struct {
	// Extensions names goldmark extensions; empty means gfm, linkify and tasklist.
	Extensions []string
	HardWraps  bool
	// SafeMode drops raw HTML from the output.
	SafeMode bool
}

// GoldmarkParser renders Markdown with goldmark. It holds no mutable state.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

// NewGoldmarkParser builds a parser for opts.
func NewGoldmarkParser(opts ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{engine: newGoldmarkEngine(opts)}
}

// Parse renders markdown into HTML.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

func newGoldmarkEngine(opts ParseOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
