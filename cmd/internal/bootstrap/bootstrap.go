// Package bootstrap builds the module shared by the sitegen CLIs.
package bootstrap

import (
	"fmt"
	"io"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitegen"
	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/di"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Options captures overrides for CLI bootstraps. Zero values load the
// default config files and write to the standard streams.
type Options struct {
	ConfigFiles    []string
	LogWriter      io.Writer
	ReportWriter   io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// Module exposes the handlers and the messages built from the config.
type Module struct {
	Config            runtimeconfig.Config
	Container         *di.Container
	BlogHandler       command.Commander[sitecmd.BuildBlogCommand]
	CollectionHandler command.Commander[sitecmd.BuildCollectionCommand]
	BlogCommand       sitecmd.BuildBlogCommand
	CollectionCommand sitecmd.BuildCollectionCommand
}

// BuildModule loads the runtime config and wires the container.
func BuildModule(opts Options) (*Module, error) {
	files := opts.ConfigFiles
	if files == nil {
		files = runtimeconfig.DefaultFiles
	}
	cfg, err := sitegen.LoadConfig(files...)
	if err != nil {
		return nil, err
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}
	if opts.LogWriter != nil {
		diOpts = append(diOpts, di.WithLogWriter(opts.LogWriter))
	}
	if opts.ReportWriter != nil {
		diOpts = append(diOpts, di.WithReportWriter(opts.ReportWriter))
	}

	site, err := sitegen.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise container: %w", err)
	}
	container := site.Container()

	return &Module{
		Config:            cfg,
		Container:         container,
		BlogHandler:       container.BlogHandler(),
		CollectionHandler: container.CollectionHandler(),
		BlogCommand:       container.BlogCommand(),
		CollectionCommand: container.CollectionCommand(),
	}, nil
}
