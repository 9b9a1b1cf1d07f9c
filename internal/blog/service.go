package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/samber/lo"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// DefaultMetaFile is the metadata file name looked up in every entry directory.
const DefaultMetaFile = "meta.json"

// Config locates the blog on disk.
type Config struct {
	Root     string
	MetaFile string
}

// Service discovers entries and loads their metadata.
type Service interface {
	Discover(ctx context.Context) ([]Entry, error)
	LoadMeta(ctx context.Context, slug string) (Meta, error)
	// FS exposes the blog root so other stages can read entry sources.
	FS() fs.FS
}

// Option customises the service.
type Option func(*service)

// WithFS reads entries from fsys instead of the operating system directory
// named by Config.Root.
func WithFS(fsys fs.FS) Option {
	return func(s *service) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	root     string
	metaFile string
	fsys     fs.FS
	logger   interfaces.Logger
}

// NewService builds a Service rooted at cfg.Root.
func NewService(cfg Config, opts ...Option) Service {
	s := &service{
		root:     cfg.Root,
		metaFile: strings.TrimSpace(cfg.MetaFile),
		logger:   logging.NoOp(),
	}
	if s.metaFile == "" {
		s.metaFile = DefaultMetaFile
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.fsys == nil {
		s.fsys = os.DirFS(s.root)
	}
	s.logger = logging.WithFields(s.logger, map[string]any{"root": s.root})
	return s
}

func (s *service) FS() fs.FS {
	return s.fsys
}

func (s *service) Discover(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := fs.Stat(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, s.root)
		}
		return nil, fmt.Errorf("blog: stat root %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, s.root)
	}

	dirents, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("blog: list root %s: %w", s.root, err)
	}
	candidates := lo.FilterMap(dirents, func(d fs.DirEntry, _ int) (string, bool) {
		return d.Name(), s.isDir(d)
	})

	entries := make([]Entry, 0, len(candidates))
	for _, name := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		metaPath := path.Join(name, s.metaFile)
		if _, err := fs.Stat(s.fsys, metaPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logging.WithEntryContext(s.logger, name, metaPath, "discover").Debug("blog.discover.skip")
				continue
			}
			return nil, fmt.Errorf("blog: stat %s: %w", metaPath, err)
		}

		if !slug.IsValid(name) {
			suggested, _ := slug.Normalize(name)
			logging.WithEntryContext(s.logger, name, "", "discover").Warn("blog.discover.slug_invalid",
				"suggested", suggested)
		}

		meta, err := s.LoadMeta(ctx, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Slug: name, Meta: meta})
	}

	if len(entries) == 0 {
		s.logger.Warn("blog.discover.empty", "entries", 0)
		return entries, nil
	}
	s.logger.Info("blog.discover.complete", "entries", len(entries))
	return entries, nil
}

func (s *service) LoadMeta(ctx context.Context, slug string) (Meta, error) {
	if err := ctx.Err(); err != nil {
		return Meta{}, err
	}
	metaPath := path.Join(slug, s.metaFile)
	data, err := fs.ReadFile(s.fsys, metaPath)
	if err != nil {
		return Meta{}, fmt.Errorf("blog: read %s: %w", metaPath, err)
	}
	meta, err := DecodeMeta(slug, metaPath, data)
	if err != nil {
		logging.WithEntryContext(s.logger, slug, metaPath, "load").Error("blog.meta.invalid", "error", err)
		return Meta{}, err
	}
	return meta, nil
}

func (s *service) isDir(d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(s.fsys, d.Name())
	return err == nil && info.IsDir()
}
