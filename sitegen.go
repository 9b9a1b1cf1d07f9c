package sitegen

import (
	"context"

	"github.com/goliatone/go-sitegen/internal/blog"
	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/di"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// BlogService exports the blog discovery contract.
type BlogService = blog.Service

// GeneratorService exports the artifact generator contract.
type GeneratorService = generator.Service

// BuildBlogCommand exports the blog build message.
type BuildBlogCommand = sitecmd.BuildBlogCommand

// BuildCollectionCommand exports the collection build message.
type BuildCollectionCommand = sitecmd.BuildCollectionCommand

// ResultEnvelope exports the per-stage result passed to callbacks.
type ResultEnvelope = sitecmd.ResultEnvelope

// Module represents the top level sitegen runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.container.Config
}

// Blog returns the configured blog service.
func (m *Module) Blog() BlogService {
	return m.container.BlogService()
}

// Generator returns the configured generator service.
func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

// LoggerProvider returns the provider the module logs through.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// BuildBlog runs the blog build described by the config.
func (m *Module) BuildBlog(ctx context.Context) error {
	return m.container.BlogHandler().Execute(ctx, m.container.BlogCommand())
}

// BuildCollection runs the collection build described by the config.
func (m *Module) BuildCollection(ctx context.Context) error {
	return m.container.CollectionHandler().Execute(ctx, m.container.CollectionCommand())
}
