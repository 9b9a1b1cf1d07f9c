package sitegen_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/internal/di"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestModuleBuildBlog(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "first", "meta.json"),
		`{"id":"1","title":"First","description":"One","date":"2023-01-01","kind":"note"}`)
	writeFile(t, filepath.Join(root, "second", "meta.json"),
		`{"id":"2","title":"Second","description":"Two","date":"2024-01-01T10:00:00Z"}`)

	cfg := sitegen.DefaultConfig()
	cfg.BlogRoot = root
	cfg.Color = false

	var report bytes.Buffer
	module, err := sitegen.New(cfg, di.WithLogWriter(&bytes.Buffer{}), di.WithReportWriter(&report))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if module.Blog() == nil || module.Generator() == nil || module.LoggerProvider() == nil {
		t.Fatal("expected services to be wired")
	}

	if err := module.BuildBlog(context.Background()); err != nil {
		t.Fatalf("build blog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "rss.xml"))
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	feed := string(data)
	if strings.Index(feed, "<id>2</id>") > strings.Index(feed, "<id>1</id>") {
		t.Fatalf("expected newest entry first:\n%s", feed)
	}
	if !strings.Contains(report.String(), "note first") {
		t.Fatalf("expected entry listing in report, got %q", report.String())
	}
}

func TestModuleBuildCollection(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "discogs.csv")
	output := filepath.Join(dir, "index.html")
	writeFile(t, source, "Catalog#,Artist,Title,Label,Format,Rating,Released\n"+
		"X1,Artist A,Album A,L,LP,5,1999\n"+
		"short,row\n")

	cfg := sitegen.DefaultConfig()
	cfg.CollectionSource = source
	cfg.CollectionOutput = output
	cfg.Color = false

	var report bytes.Buffer
	module, err := sitegen.New(cfg, di.WithLogWriter(&bytes.Buffer{}), di.WithReportWriter(&report))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if err := module.BuildCollection(context.Background()); err != nil {
		t.Fatalf("build collection: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<td>Artist A</td>") {
		t.Fatalf("expected row in output:\n%s", data)
	}
	if !strings.Contains(report.String(), "with 1 albums!") {
		t.Fatalf("expected album count in report, got %q", report.String())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := sitegen.DefaultConfig()
	cfg.SiteLink = "not-a-url"

	if _, err := sitegen.New(cfg); !errors.Is(err, sitegen.ErrSiteLinkInvalid) {
		t.Fatalf("expected ErrSiteLinkInvalid, got %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := sitegen.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FeedPath() != filepath.Join("blog", "rss.xml") {
		t.Fatalf("unexpected feed path %q", cfg.FeedPath())
	}
}
