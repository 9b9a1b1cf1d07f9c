package generator

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/collection"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var (
	// ErrNoEntries is returned when a feed is requested for zero entries.
	ErrNoEntries = errors.New("generator: no blog entries to publish")
	// ErrFeedVerification is returned when the rendered feed does not parse
	// back into the expected number of items.
	ErrFeedVerification = errors.New("generator: feed verification failed")
	errOutputRequired   = errors.New("generator: output path is required")
)

// DefaultGeneratorName is written to the feed's generator element.
const DefaultGeneratorName = "go-sitegen"

// Service builds the site artifacts.
type Service interface {
	BuildFeed(ctx context.Context, entries []blog.Entry, opts FeedOptions) (*BuildResult, error)
	BuildEntries(ctx context.Context, source fs.FS, entries []blog.Entry, opts EntryOptions) (*BuildResult, error)
	BuildCollection(ctx context.Context, rows []collection.Row, opts CollectionOptions) (*BuildResult, error)
}

// Config describes the site the feed belongs to.
type Config struct {
	SiteTitle       string
	SiteLink        string
	SiteDescription string
	Generator       string
	// VerifyFeed parses every rendered feed back before writing it.
	VerifyFeed bool
}

// Dependencies lists collaborators. Nil values get defaults.
type Dependencies struct {
	Markdown *markdown.Service
	Logger   interfaces.Logger
}

// FeedOptions narrows a feed build.
type FeedOptions struct {
	Output string
	DryRun bool
}

// EntryOptions narrows an entry page build. Root is the directory entry
// pages are written under; Source and Output are file names inside each
// entry directory.
type EntryOptions struct {
	Root   string
	Source string
	Output string
	DryRun bool
}

// CollectionOptions narrows a collection page build.
type CollectionOptions struct {
	Output string
	DryRun bool
}

// Artifact describes one output file.
type Artifact struct {
	Path     string
	Category writeCategory
	Checksum string
	Size     int64
	// Skipped is set when the file on disk already had the same checksum.
	Skipped bool
}

// BuildResult reports what a build produced.
type BuildResult struct {
	// Items counts feed entries, rendered entry pages or collection rows.
	Items     int
	Written   int
	Skipped   int
	Artifacts []Artifact
	Duration  time.Duration
	DryRun    bool
}

// NewService wires a generator.
func NewService(cfg Config, deps Dependencies) Service {
	if strings.TrimSpace(cfg.Generator) == "" {
		cfg.Generator = DefaultGeneratorName
	}
	if deps.Markdown == nil {
		deps.Markdown = markdown.NewService(nil, deps.Logger)
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		writer: fileWriter{},
		logger: logging.EnsureLogger(deps.Logger),
		now:    time.Now,
	}
}

type service struct {
	cfg    Config
	deps   Dependencies
	writer artifactWriter
	logger interfaces.Logger
	now    func() time.Time
}

func (s *service) writerFor(dryRun bool) artifactWriter {
	if dryRun {
		return noopWriter{}
	}
	return s.writer
}

// writeArtifact writes req unless the existing file already carries the
// same checksum. Checksums are always read from the real writer so dry runs
// report the same skip decisions as a real build.
func (s *service) writeArtifact(ctx context.Context, writer artifactWriter, result *BuildResult, req writeFileRequest) error {
	if strings.TrimSpace(req.Path) == "" {
		return errOutputRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	artifact := Artifact{
		Path:     req.Path,
		Category: req.Category,
		Checksum: req.Checksum,
		Size:     req.Size,
	}
	logger := logging.WithEntryContext(s.logger, "", req.Path, string(req.Category))

	existing, found, err := s.writer.Checksum(ctx, req.Path)
	if err != nil {
		return err
	}
	if found && existing == req.Checksum {
		artifact.Skipped = true
		result.Skipped++
		result.Artifacts = append(result.Artifacts, artifact)
		logger.Debug("generator.artifact.unchanged", "checksum", req.Checksum)
		return nil
	}

	if err := writer.EnsureDir(ctx, parentDir(req.Path)); err != nil {
		return err
	}
	if err := writer.WriteFile(ctx, req); err != nil {
		return err
	}
	result.Written++
	result.Artifacts = append(result.Artifacts, artifact)
	logger.Debug("generator.artifact.written", "bytes", req.Size, "dry_run", result.DryRun)
	return nil
}
