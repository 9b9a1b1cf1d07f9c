package generator

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/logging"
)

const atomContentType = "application/atom+xml"

type feedItem struct {
	Slug        string
	ID          string
	Title       string
	Summary     string
	Link        string
	PublishedAt time.Time
}

type feedDocument struct {
	Title     string
	Subtitle  string
	Link      string
	Generator string
	UpdatedAt time.Time
	Items     []feedItem
}

func (s *service) BuildFeed(ctx context.Context, entries []blog.Entry, opts FeedOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	start := s.now()
	doc, err := s.buildFeedDocument(entries)
	if err != nil {
		return nil, err
	}
	content := buildAtomFeed(doc)

	if s.cfg.VerifyFeed {
		if err := verifyFeed(content, len(doc.Items)); err != nil {
			return nil, err
		}
	}

	result := &BuildResult{Items: len(doc.Items), DryRun: opts.DryRun}
	req := newWriteRequest(opts.Output, categoryFeed, atomContentType, []byte(content))
	if err := s.writeArtifact(ctx, s.writerFor(opts.DryRun), result, req); err != nil {
		return nil, err
	}
	result.Duration = s.now().Sub(start)

	logging.WithEntryContext(s.logger, "", opts.Output, "feed").Info("generator.feed.complete",
		"entries", result.Items,
		"written", result.Written,
		"skipped", result.Skipped,
	)
	return result, nil
}

// buildFeedDocument parses entry dates and orders items newest first. Equal
// dates fall back to slug order so the output does not depend on discovery
// order.
func (s *service) buildFeedDocument(entries []blog.Entry) (feedDocument, error) {
	items := make([]feedItem, 0, len(entries))
	for _, entry := range entries {
		publishedAt, err := blog.ParseDate(entry.Meta.Date)
		if err != nil {
			return feedDocument{}, &blog.DateParseError{Slug: entry.Slug, Value: entry.Meta.Date, Err: err}
		}
		items = append(items, feedItem{
			Slug:        entry.Slug,
			ID:          strings.TrimSpace(entry.Meta.ID),
			Title:       normalizeWhitespace(entry.Meta.Title),
			Summary:     normalizeWhitespace(entry.Meta.Description),
			Link:        entryLink(s.cfg.SiteLink, entry.Slug),
			PublishedAt: publishedAt.UTC(),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].PublishedAt, items[j].PublishedAt
		if left.Equal(right) {
			return items[i].Slug < items[j].Slug
		}
		return left.After(right)
	})

	return feedDocument{
		Title:     s.cfg.SiteTitle,
		Subtitle:  s.cfg.SiteDescription,
		Link:      strings.TrimSpace(s.cfg.SiteLink),
		Generator: s.cfg.Generator,
		UpdatedAt: items[0].PublishedAt,
		Items:     items,
	}, nil
}

func buildAtomFeed(doc feedDocument) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString(fmt.Sprintf("  <id>%s</id>\n", escapeXML(doc.Link)))
	builder.WriteString(fmt.Sprintf("  <title>%s</title>\n", escapeXML(doc.Title)))
	builder.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", formatAtomTime(doc.UpdatedAt)))
	builder.WriteString(fmt.Sprintf(`  <link href="%s" rel="alternate" />`+"\n", escapeXMLAttr(doc.Link)))
	if doc.Generator != "" {
		builder.WriteString(fmt.Sprintf("  <generator>%s</generator>\n", escapeXML(doc.Generator)))
	}
	if doc.Subtitle != "" {
		builder.WriteString(fmt.Sprintf("  <subtitle>%s</subtitle>\n", escapeXML(doc.Subtitle)))
	}
	for _, item := range doc.Items {
		builder.WriteString("  <entry>\n")
		builder.WriteString(fmt.Sprintf("    <id>%s</id>\n", escapeXML(item.ID)))
		builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", formatAtomTime(item.PublishedAt)))
		builder.WriteString(fmt.Sprintf(`    <link href="%s" />`+"\n", escapeXMLAttr(item.Link)))
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", escapeXML(item.Summary)))
		}
		builder.WriteString(fmt.Sprintf("    <published>%s</published>\n", formatAtomTime(item.PublishedAt)))
		builder.WriteString("  </entry>\n")
	}
	builder.WriteString(`</feed>` + "\n")
	return builder.String()
}

func formatAtomTime(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}

func normalizeWhitespace(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return strings.Join(strings.Fields(input), " ")
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}

func escapeXMLAttr(value string) string {
	return html.EscapeString(value)
}
