package generator

import (
	"context"

	"github.com/goliatone/go-sitegen/internal/collection"
	"github.com/goliatone/go-sitegen/internal/logging"
)

type collectionPage struct {
	Rows     []collection.Row
	BackLink string
}

func (s *service) BuildCollection(ctx context.Context, rows []collection.Row, opts CollectionOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	content, err := renderTemplate(collectionTemplate, collectionPage{
		Rows:     rows,
		BackLink: defaultBackLink,
	})
	if err != nil {
		return nil, err
	}

	result := &BuildResult{Items: len(rows), DryRun: opts.DryRun}
	req := newWriteRequest(opts.Output, categoryCollection, htmlContentType, content)
	if err := s.writeArtifact(ctx, s.writerFor(opts.DryRun), result, req); err != nil {
		return nil, err
	}
	result.Duration = s.now().Sub(start)

	logging.WithEntryContext(s.logger, "", opts.Output, "collection").Info("generator.collection.complete",
		"rows", result.Items,
		"written", result.Written,
		"skipped", result.Skipped,
	)
	return result, nil
}
