// Package di wires the sitegen services from a runtime configuration.
package di

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/collection"
	"github.com/goliatone/go-sitegen/internal/commands"
	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/console"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/internal/reporter"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Container holds the configured services.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	reportWriter   io.Writer
	blogFS         fs.FS

	blogSvc      blog.Service
	generatorSvc generator.Service
	markdownSvc  *markdown.Service
	reader       *collection.Reader
	reporter     *reporter.Reporter

	blogHandler       *sitecmd.BuildBlogHandler
	collectionHandler *sitecmd.BuildCollectionHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider replaces the provider selected by Config.LogProvider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter sets where the console provider writes. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithReportWriter sets where progress lines go. Defaults to stdout.
func WithReportWriter(w io.Writer) Option {
	return func(c *Container) {
		c.reportWriter = w
	}
}

// WithBlogFS reads the blog from fsys instead of Config.BlogRoot on disk.
func WithBlogFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.blogFS = fsys
	}
}

// WithBlogService overrides entry discovery.
func WithBlogService(svc blog.Service) Option {
	return func(c *Container) {
		c.blogSvc = svc
	}
}

// WithGeneratorService overrides artifact generation.
func WithGeneratorService(svc generator.Service) Option {
	return func(c *Container) {
		c.generatorSvc = svc
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureServices()
	c.configureHandlers()

	logging.ModuleLogger(c.loggerProvider, "sitegen.di").Debug("container.configured",
		"blog_root", cfg.BlogRoot,
		"log_provider", cfg.LogProvider,
		"render_entries", cfg.RenderEntries,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.LogProvider)) {
	case "", "console":
		opts := console.Options{Writer: c.logWriter}
		if level, ok := console.ParseLevel(c.Config.LogLevel); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  c.Config.LogLevel,
			Format: c.Config.LogFormat,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		return fmt.Errorf("%w: %q", runtimeconfig.ErrLoggingProviderUnknown, c.Config.LogProvider)
	}
	return nil
}

func (c *Container) configureServices() {
	if c.blogSvc == nil {
		blogOpts := []blog.Option{blog.WithLogger(logging.BlogLogger(c.loggerProvider))}
		if c.blogFS != nil {
			blogOpts = append(blogOpts, blog.WithFS(c.blogFS))
		}
		c.blogSvc = blog.NewService(blog.Config{
			Root:     c.Config.BlogRoot,
			MetaFile: c.Config.MetaFile,
		}, blogOpts...)
	}

	c.markdownSvc = markdown.NewService(nil, logging.MarkdownLogger(c.loggerProvider))

	if c.generatorSvc == nil {
		c.generatorSvc = generator.NewService(generator.Config{
			SiteTitle:       c.Config.SiteTitle,
			SiteLink:        c.Config.SiteLink,
			SiteDescription: c.Config.SiteDescription,
			VerifyFeed:      c.Config.VerifyFeed,
		}, generator.Dependencies{
			Markdown: c.markdownSvc,
			Logger:   logging.GeneratorLogger(c.loggerProvider),
		})
	}

	c.reader = collection.NewReader(logging.CollectionLogger(c.loggerProvider))
	c.reporter = reporter.New(c.reportWriter, reporter.Options{Color: c.Config.Color})
}

func (c *Container) configureHandlers() {
	timeout := c.Config.CommandTimeout

	c.blogHandler = sitecmd.NewBuildBlogHandler(
		c.blogSvc,
		c.generatorSvc,
		commands.CommandLogger(c.loggerProvider, "blog"),
		commands.WithTimeout[sitecmd.BuildBlogCommand](timeout),
	)
	c.collectionHandler = sitecmd.NewBuildCollectionHandler(
		c.reader,
		c.generatorSvc,
		commands.CommandLogger(c.loggerProvider, "collection"),
		commands.WithTimeout[sitecmd.BuildCollectionCommand](timeout),
	)
}

// LoggerProvider returns the active logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BlogService returns entry discovery.
func (c *Container) BlogService() blog.Service {
	return c.blogSvc
}

// GeneratorService returns artifact generation.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

// Reporter returns the console reporter.
func (c *Container) Reporter() *reporter.Reporter {
	return c.reporter
}

// BlogHandler returns the blog build command handler.
func (c *Container) BlogHandler() *sitecmd.BuildBlogHandler {
	return c.blogHandler
}

// CollectionHandler returns the collection build command handler.
func (c *Container) CollectionHandler() *sitecmd.BuildCollectionHandler {
	return c.collectionHandler
}

// BlogCommand returns the blog build message described by the config.
func (c *Container) BlogCommand() sitecmd.BuildBlogCommand {
	return sitecmd.BuildBlogCommand{
		FeedOutput:     c.Config.FeedPath(),
		RenderEntries:  c.Config.RenderEntries,
		EntryRoot:      c.Config.BlogRoot,
		EntrySource:    c.Config.EntrySource,
		EntryOutput:    c.Config.EntryOutput,
		DryRun:         c.Config.DryRun,
		ResultCallback: c.reporter.Observe,
	}
}

// CollectionCommand returns the collection build message described by the config.
func (c *Container) CollectionCommand() sitecmd.BuildCollectionCommand {
	return sitecmd.BuildCollectionCommand{
		Source:         c.Config.CollectionSource,
		Output:         c.Config.CollectionOutput,
		DryRun:         c.Config.DryRun,
		ResultCallback: c.reporter.Observe,
	}
}
