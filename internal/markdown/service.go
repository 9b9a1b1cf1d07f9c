package markdown

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Document is a parsed and rendered entry source.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	HTML        []byte
}

// Parser renders Markdown to HTML.
type Parser interface {
	Parse(markdown []byte) ([]byte, error)
}

// Service loads entry sources from a filesystem.
type Service struct {
	parser Parser
	logger interfaces.Logger
}

// NewService returns a Service. A nil parser means goldmark with default options.
func NewService(parser Parser, logger interfaces.Logger) *Service {
	if parser == nil {
		parser = NewGoldmarkParser(ParseOptions{})
	}
	return &Service{
		parser: parser,
		logger: logging.EnsureLogger(logger),
	}
}

// Load reads path from fsys, splits the front matter and renders the body.
// Errors from the filesystem are wrapped so fs.ErrNotExist can be matched.
func (s *Service) Load(ctx context.Context, fsys fs.FS, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("markdown: read %s: %w", path, err)
	}

	frontMatter, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown: %s: %w", path, err)
	}

	html, err := s.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("markdown: %s: %w", path, err)
	}

	s.logger.Debug("markdown.document.rendered", "path", path, "bytes", len(html))
	return &Document{
		Path:        path,
		FrontMatter: frontMatter,
		HTML:        html,
	}, nil
}
