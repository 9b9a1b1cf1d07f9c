package markdown

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

const entrySource = `---
title: Sample Entry
summary: A short summary
tags:
  - go
  - blog
mood: sunny
---
# Heading

Some **bold** text and a link to https://example.com.

- [x] done
`

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(entrySource))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "Sample Entry" {
		t.Fatalf("title mismatch, got %q", fm.Title)
	}
	if fm.Summary != "A short summary" {
		t.Fatalf("summary mismatch, got %q", fm.Summary)
	}
	if fm.Draft {
		t.Fatal("expected draft to default to false")
	}
	if !strings.Contains(string(body), "# Heading") {
		t.Fatalf("body not returned: %q", body)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("just text\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Fatalf("expected empty title, got %q", fm.Title)
	}
	if string(body) != "just text\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestGoldmarkParserDefaults(t *testing.T) {
	html, err := NewGoldmarkParser(ParseOptions{}).Parse([]byte("Visit https://example.com\n\n<span>raw</span>\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, `<a href="https://example.com">`) {
		t.Fatalf("expected linkified URL, got %q", out)
	}
	if !strings.Contains(out, "<span>raw</span>") {
		t.Fatalf("expected raw HTML to pass through, got %q", out)
	}
}

func TestGoldmarkParserSafeMode(t *testing.T) {
	html, err := NewGoldmarkParser(ParseOptions{SafeMode: true}).Parse([]byte("<span>raw</span>\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(string(html), "<span>") {
		t.Fatalf("expected raw HTML to be omitted, got %q", html)
	}
}

func TestServiceLoad(t *testing.T) {
	fsys := fstest.MapFS{"hello/index.md": {Data: []byte(entrySource)}}

	doc, err := NewService(nil, nil).Load(context.Background(), fsys, "hello/index.md")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.FrontMatter.Title != "Sample Entry" {
		t.Fatalf("title mismatch, got %q", doc.FrontMatter.Title)
	}
	html := string(doc.HTML)
	if !strings.Contains(html, `<h1 id="heading">Heading</h1>`) {
		t.Fatalf("expected heading with id, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold text, got %q", html)
	}
}

func TestServiceLoadMissing(t *testing.T) {
	_, err := NewService(nil, nil).Load(context.Background(), fstest.MapFS{}, "absent/index.md")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
