package generator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/pkg/generator"
)

func TestNewServiceBuildsFeed(t *testing.T) {
	svc := generator.NewService(generator.Config{
		SiteTitle: "Blog",
		SiteLink:  "https://example.com/blog/",
	}, generator.Dependencies{})

	output := filepath.Join(t.TempDir(), "rss.xml")
	result, err := svc.BuildFeed(context.Background(), []generator.Entry{{
		Slug: "first",
		Meta: generator.Meta{ID: "1", Title: "First", Description: "One", Date: "2024-02-01"},
	}}, generator.FeedOptions{Output: output})
	if err != nil {
		t.Fatalf("build feed: %v", err)
	}
	if result.Items != 1 {
		t.Fatalf("expected 1 item, got %d", result.Items)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	if !strings.Contains(string(data), "<generator>"+generator.DefaultGeneratorName+"</generator>") {
		t.Fatalf("expected generator element in feed:\n%s", data)
	}
}

func TestNewServiceRejectsEmptyFeed(t *testing.T) {
	svc := generator.NewService(generator.Config{SiteLink: "https://example.com/"}, generator.Dependencies{})
	_, err := svc.BuildFeed(context.Background(), nil, generator.FeedOptions{Output: filepath.Join(t.TempDir(), "rss.xml")})
	if !errors.Is(err, generator.ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}
