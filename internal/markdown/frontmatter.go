package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block at the top of an entry source.
type FrontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Draft   bool   `yaml:"draft"`
}

// ParseFrontMatter splits source into front matter and Markdown body. A
// source without front matter yields an empty FrontMatter and the full body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
