package generator

import (
	"context"
	"errors"
	"html/template"
	"io/fs"
	"strings"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/logging"
)

type entryPage struct {
	SiteTitle      string
	FeedLink       string
	Title          string
	Description    string
	Kind           string
	Published      string
	PublishedLabel string
	Body           template.HTML
	BackLink       string
}

// BuildEntries renders an HTML page for every entry that has a Markdown
// source. Entries without one are skipped.
func (s *service) BuildEntries(ctx context.Context, source fs.FS, entries []blog.Entry, opts EntryOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("generator: entry source filesystem is required")
	}

	start := s.now()
	result := &BuildResult{DryRun: opts.DryRun}
	writer := s.writerFor(opts.DryRun)

	for _, entry := range entries {
		sourcePath := entrySourcePath(entry.Slug, opts.Source)
		logger := logging.WithEntryContext(s.logger, entry.Slug, sourcePath, "entry")

		doc, err := s.deps.Markdown.Load(ctx, source, sourcePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("generator.entry.no_source")
				continue
			}
			return nil, err
		}
		if doc.FrontMatter.Draft {
			logger.Info("generator.entry.draft")
			continue
		}

		page := entryPage{
			SiteTitle:   s.cfg.SiteTitle,
			FeedLink:    entryLink(s.cfg.SiteLink, "rss.xml"),
			Title:       firstNonBlank(doc.FrontMatter.Title, entry.Meta.Title, entry.Slug),
			Description: firstNonBlank(doc.FrontMatter.Summary, entry.Meta.Description),
			Kind:        entry.Meta.Kind,
			Body:        template.HTML(doc.HTML),
			BackLink:    defaultBackLink,
		}
		if published, err := blog.ParseDate(entry.Meta.Date); err == nil {
			page.Published = formatAtomTime(published)
			page.PublishedLabel = published.UTC().Format("2 January 2006")
		} else {
			logger.Warn("generator.entry.date_invalid", "date", entry.Meta.Date)
		}

		content, err := renderTemplate(entryTemplate, page)
		if err != nil {
			return nil, err
		}
		req := newWriteRequest(entryOutputPath(opts.Root, entry.Slug, opts.Output), categoryEntry, htmlContentType, content)
		if err := s.writeArtifact(ctx, writer, result, req); err != nil {
			return nil, err
		}
		result.Items++
	}
	result.Duration = s.now().Sub(start)

	s.logger.Info("generator.entries.complete",
		"rendered", result.Items,
		"written", result.Written,
		"skipped", result.Skipped,
	)
	return result, nil
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
