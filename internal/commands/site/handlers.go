package sitecmd

import (
	"context"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/collection"
	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// CollectionReader loads collection rows from a file.
type CollectionReader interface {
	ReadFile(path string) ([]collection.Row, error)
}

// BuildBlogHandler runs the blog pipeline through the shared command handler.
type BuildBlogHandler struct {
	inner *commands.Handler[BuildBlogCommand]
}

// NewBuildBlogHandler wires discovery and generation services.
func NewBuildBlogHandler(blogs blog.Service, gen generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildBlogCommand]) *BuildBlogHandler {
	baseLogger := logging.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildBlogCommand) error {
		entries, err := blogs.Discover(ctx)
		if err != nil {
			return classify(err)
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Operation: OperationDiscover,
			Entries:   entries,
			Metadata:  map[string]any{"entries": len(entries)},
		})

		if msg.RenderEntries {
			result, err := gen.BuildEntries(ctx, blogs.FS(), entries, generator.EntryOptions{
				Root:   msg.EntryRoot,
				Source: msg.EntrySource,
				Output: msg.EntryOutput,
				DryRun: msg.DryRun,
			})
			if err != nil {
				return classify(err)
			}
			invokeCallback(msg.ResultCallback, ResultEnvelope{Operation: OperationEntries, Result: result})
		} else {
			invokeCallback(msg.ResultCallback, ResultEnvelope{Operation: OperationEntries, Skipped: true})
		}

		result, err := gen.BuildFeed(ctx, entries, generator.FeedOptions{
			Output: msg.FeedOutput,
			DryRun: msg.DryRun,
		})
		if err != nil {
			return classify(err)
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Operation: OperationFeed,
			Result:    result,
			Metadata:  map[string]any{"output": msg.FeedOutput},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildBlogCommand]{
		commands.WithLogger[BuildBlogCommand](baseLogger),
		commands.WithOperation[BuildBlogCommand]("blog.build"),
		commands.WithMessageFields(func(msg BuildBlogCommand) map[string]any {
			fields := map[string]any{"feed_output": msg.FeedOutput}
			if msg.RenderEntries {
				fields["render_entries"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildBlogCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildBlogHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildBlogCommand].
func (h *BuildBlogHandler) Execute(ctx context.Context, msg BuildBlogCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildCollectionHandler runs the collection pipeline.
type BuildCollectionHandler struct {
	inner *commands.Handler[BuildCollectionCommand]
}

// NewBuildCollectionHandler wires the CSV reader and the generator.
func NewBuildCollectionHandler(reader CollectionReader, gen generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildCollectionCommand]) *BuildCollectionHandler {
	baseLogger := logging.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildCollectionCommand) error {
		rows, err := reader.ReadFile(msg.Source)
		if err != nil {
			return classify(err)
		}
		result, err := gen.BuildCollection(ctx, rows, generator.CollectionOptions{
			Output: msg.Output,
			DryRun: msg.DryRun,
		})
		if err != nil {
			return classify(err)
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Operation: OperationCollection,
			Result:    result,
			Metadata:  map[string]any{"output": msg.Output, "source": msg.Source},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildCollectionCommand]{
		commands.WithLogger[BuildCollectionCommand](baseLogger),
		commands.WithOperation[BuildCollectionCommand]("collection.build"),
		commands.WithMessageFields(func(msg BuildCollectionCommand) map[string]any {
			fields := map[string]any{"source": msg.Source, "output": msg.Output}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildCollectionCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildCollectionHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildCollectionCommand].
func (h *BuildCollectionHandler) Execute(ctx context.Context, msg BuildCollectionCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
