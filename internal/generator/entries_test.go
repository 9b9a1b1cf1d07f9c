package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-sitegen/internal/blog"
)

func TestBuildEntriesRendersMarkdown(t *testing.T) {
	root := t.TempDir()
	source := fstest.MapFS{
		"hello/index.md": {Data: []byte("---\ntitle: Front Title\n---\n# Hi\n\nBody text.\n")},
		"plain/index.md": {Data: []byte("No front matter here.\n")},
		"draft/index.md": {Data: []byte("---\ndraft: true\n---\nhidden\n")},
	}
	entries := []blog.Entry{
		entry("hello", "2024-02-03"),
		entry("plain", "2024-01-01"),
		entry("draft", "2024-01-01"),
		entry("nosource", "2024-01-01"),
	}

	result, err := NewService(testConfig(), Dependencies{}).BuildEntries(context.Background(), source, entries, EntryOptions{Root: root})
	if err != nil {
		t.Fatalf("build entries: %v", err)
	}
	if result.Items != 2 || result.Written != 2 {
		t.Fatalf("expected 2 rendered pages, got %+v", result)
	}

	hello := readDocument(t, filepath.Join(root, "hello", "index.html"))
	if got := hello.Find("article h1").First().Text(); got != "Front Title" {
		t.Fatalf("expected front matter title, got %q", got)
	}
	if got := hello.Find("article p").First().Text(); got != "Body text." {
		t.Fatalf("expected rendered body, got %q", got)
	}
	if got, _ := hello.Find("time").Attr("datetime"); got != "2024-02-03T00:00:00Z" {
		t.Fatalf("unexpected datetime %q", got)
	}

	plain := readDocument(t, filepath.Join(root, "plain", "index.html"))
	if got := plain.Find("article h1").First().Text(); got != "Title plain" {
		t.Fatalf("expected metadata title fallback, got %q", got)
	}

	for _, slug := range []string{"draft", "nosource"} {
		if _, err := os.Stat(filepath.Join(root, slug, "index.html")); !os.IsNotExist(err) {
			t.Fatalf("expected no page for %s", slug)
		}
	}
}

func TestBuildEntriesCustomFileNames(t *testing.T) {
	root := t.TempDir()
	source := fstest.MapFS{"post/body.md": {Data: []byte("text\n")}}

	_, err := NewService(testConfig(), Dependencies{}).BuildEntries(context.Background(), source,
		[]blog.Entry{entry("post", "2024-01-01")},
		EntryOptions{Root: root, Source: "body.md", Output: "page.html"})
	if err != nil {
		t.Fatalf("build entries: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "post", "page.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(data), "<p>text</p>") {
		t.Fatalf("unexpected page:\n%s", data)
	}
}

func readDocument(t *testing.T, path string) *goquery.Document {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()
	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc
}
