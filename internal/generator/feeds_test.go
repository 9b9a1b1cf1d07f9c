package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/goliatone/go-sitegen/internal/blog"
)

func testConfig() Config {
	return Config{
		SiteTitle:       "Dave's Blog",
		SiteLink:        "https://www.aizenberg.co.uk/blog/",
		SiteDescription: "My Blog Description",
		VerifyFeed:      true,
	}
}

func entry(slug, date string) blog.Entry {
	return blog.Entry{
		Slug: slug,
		Meta: blog.Meta{
			ID:          "id-" + slug,
			Title:       "Title " + slug,
			Description: "About " + slug,
			Date:        date,
		},
	}
}

func TestBuildFeedOrdersNewestFirst(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rss.xml")
	svc := NewService(testConfig(), Dependencies{})

	result, err := svc.BuildFeed(context.Background(), []blog.Entry{
		entry("a", "2023-01-01"),
		entry("b", "2024-01-01T00:00:00Z"),
	}, FeedOptions{Output: output})
	if err != nil {
		t.Fatalf("build feed: %v", err)
	}
	if result.Items != 2 || result.Written != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatalf("parse feed: %v", err)
	}
	if feed.Title != "Dave's Blog" {
		t.Fatalf("expected site title, got %q", feed.Title)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(feed.Items))
	}
	if feed.Items[0].Title != "Title b" || feed.Items[1].Title != "Title a" {
		t.Fatalf("expected b before a, got %q then %q", feed.Items[0].Title, feed.Items[1].Title)
	}
	if feed.Items[0].Link != "https://www.aizenberg.co.uk/blog/b" {
		t.Fatalf("unexpected entry link %q", feed.Items[0].Link)
	}
	if feed.Items[0].GUID != "id-b" {
		t.Fatalf("unexpected entry id %q", feed.Items[0].GUID)
	}
	if feed.Items[1].Description != "About a" {
		t.Fatalf("unexpected summary %q", feed.Items[1].Description)
	}
	if feed.UpdatedParsed == nil || !feed.UpdatedParsed.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected feed updated to match newest entry, got %v", feed.UpdatedParsed)
	}
}

func TestBuildFeedBreaksTiesBySlug(t *testing.T) {
	svc := NewService(testConfig(), Dependencies{}).(*service)
	doc, err := svc.buildFeedDocument([]blog.Entry{
		entry("zeta", "2024-05-01"),
		entry("alpha", "2024-05-01"),
		entry("mid", "1717200000"),
	})
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	got := []string{doc.Items[0].Slug, doc.Items[1].Slug, doc.Items[2].Slug}
	want := []string{"mid", "alpha", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestBuildFeedRejectsEmptyInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rss.xml")
	_, err := NewService(testConfig(), Dependencies{}).BuildFeed(context.Background(), nil, FeedOptions{Output: output})
	if !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no feed file, stat returned %v", statErr)
	}
}

func TestBuildFeedRejectsBadDate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rss.xml")
	_, err := NewService(testConfig(), Dependencies{}).BuildFeed(context.Background(), []blog.Entry{
		entry("ok", "2024-01-01"),
		entry("bad", "someday"),
	}, FeedOptions{Output: output})

	var dateErr *blog.DateParseError
	if !errors.As(err, &dateErr) {
		t.Fatalf("expected DateParseError, got %v", err)
	}
	if dateErr.Slug != "bad" {
		t.Fatalf("expected slug bad, got %q", dateErr.Slug)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatal("expected no feed to be written")
	}
}

func TestBuildFeedEscapesText(t *testing.T) {
	e := entry("amp", "2024-01-01")
	e.Meta.Title = "Fish & <Chips>"
	svc := NewService(testConfig(), Dependencies{}).(*service)
	doc, err := svc.buildFeedDocument([]blog.Entry{e})
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	content := buildAtomFeed(doc)
	if !strings.Contains(content, "<title>Fish &amp; &lt;Chips&gt;</title>") {
		t.Fatalf("expected escaped title, got:\n%s", content)
	}
	if err := verifyFeed(content, 1); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestBuildFeedIsIdempotent(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rss.xml")
	svc := NewService(testConfig(), Dependencies{})
	entries := []blog.Entry{entry("a", "2023-01-01"), entry("b", "2023-06-01")}

	if _, err := svc.BuildFeed(context.Background(), entries, FeedOptions{Output: output}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	first, _ := os.ReadFile(output)

	result, err := svc.BuildFeed(context.Background(), entries, FeedOptions{Output: output})
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if result.Skipped != 1 || result.Written != 0 {
		t.Fatalf("expected unchanged feed to be skipped, got %+v", result)
	}
	second, _ := os.ReadFile(output)
	if string(first) != string(second) {
		t.Fatal("expected byte-identical output across runs")
	}
}

func TestBuildFeedDryRunWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rss.xml")
	result, err := NewService(testConfig(), Dependencies{}).BuildFeed(context.Background(),
		[]blog.Entry{entry("a", "2023-01-01")}, FeedOptions{Output: output, DryRun: true})
	if err != nil {
		t.Fatalf("build feed: %v", err)
	}
	if !result.DryRun || result.Written != 1 {
		t.Fatalf("unexpected dry run result %+v", result)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatal("dry run must not create the feed")
	}
}

func TestVerifyFeedCountMismatch(t *testing.T) {
	content := buildAtomFeed(feedDocument{Title: "t", Link: "https://example.com/", UpdatedAt: time.Unix(0, 0)})
	if err := verifyFeed(content, 1); !errors.Is(err, ErrFeedVerification) {
		t.Fatalf("expected ErrFeedVerification, got %v", err)
	}
}
