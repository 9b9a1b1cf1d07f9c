package di

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
)

func TestNewContainerDefaults(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.BlogService() == nil || container.GeneratorService() == nil {
		t.Fatal("expected services to be configured")
	}
	if container.BlogHandler() == nil || container.CollectionHandler() == nil {
		t.Fatal("expected handlers to be configured")
	}

	cmd := container.BlogCommand()
	if cmd.FeedOutput != filepath.Join("blog", "rss.xml") {
		t.Fatalf("unexpected feed output %q", cmd.FeedOutput)
	}
	if cmd.RenderEntries {
		t.Fatal("entry pages must be off by default")
	}
	coll := container.CollectionCommand()
	if coll.Source != "discogs.csv" || coll.Output != "index.html" {
		t.Fatalf("unexpected collection paths %+v", coll)
	}
}

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.LogProvider = "gologger"
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
	if provider.GetLogger("sitegen.test") == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.BlogRoot = ""
	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrBlogRootRequired) {
		t.Fatalf("expected ErrBlogRootRequired, got %v", err)
	}
}

func TestContainerRunsBlogPipeline(t *testing.T) {
	root := t.TempDir()
	for slug, meta := range map[string]string{
		"older": `{"id":"1","title":"Older","description":"old","date":"2023-01-01","kind":"note"}`,
		"newer": `{"id":"2","title":"Newer","description":"new","date":"2024-01-01","kind":"post"}`,
	} {
		if err := os.MkdirAll(filepath.Join(root, slug), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(root, slug, "meta.json"), []byte(meta), 0o644); err != nil {
			t.Fatalf("write meta: %v", err)
		}
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.BlogRoot = root
	cfg.Color = false

	var report bytes.Buffer
	container, err := NewContainer(cfg, WithLogWriter(&bytes.Buffer{}), WithReportWriter(&report))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if err := container.BlogHandler().Execute(context.Background(), container.BlogCommand()); err != nil {
		t.Fatalf("execute: %v", err)
	}

	feed, err := os.ReadFile(filepath.Join(root, "rss.xml"))
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	if strings.Index(string(feed), "Newer") > strings.Index(string(feed), "Older") {
		t.Fatalf("expected newest entry first:\n%s", feed)
	}
	for _, line := range []string{"CI Helper 9000 :: Listing blog entries", "post newer", "note older", "[Done]"} {
		if !strings.Contains(report.String(), line) {
			t.Fatalf("expected %q in report:\n%s", line, report.String())
		}
	}
}

func TestWithBlogFSReadsInjectedTree(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	fsys := fstest.MapFS{
		"hello/meta.json": {Data: []byte(`{"id":"1","title":"Hello","description":"d","date":"2024-01-01"}`)},
	}
	container, err := NewContainer(cfg, WithBlogFS(fsys), WithLogWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	entries, err := container.BlogService().Discover(context.Background())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "hello" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}
